package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectApplicationColumns = `
	id, user_id, email, first_name, last_name, personal, employment, rental, documents,
	status, payment_status, notes, version, created_at, updated_at
`

// Expected column order matches selectApplicationColumns.
func scanApplication(s scanner) (*application.Application, error) {
	var (
		app                                     application.Application
		personal, employment, rental, documents []byte
		status, paymentStatus                   string
		notes                                   sql.NullString
	)

	if err := s.Scan(
		&app.ID, &app.UserID, &app.Email, &app.FirstName, &app.LastName,
		&personal, &employment, &rental, &documents,
		&status, &paymentStatus, &notes, &app.Version, &app.CreatedAt, &app.UpdatedAt,
	); err != nil {
		return nil, err
	}

	app.Status = application.Status(status)
	app.PaymentStatus = application.PaymentStatus(paymentStatus)

	if notes.Valid {
		app.Notes = &notes.String
	}

	if err := unmarshalColumn(personal, &app.Personal); err != nil {
		return nil, fmt.Errorf("decoding personal: %w", err)
	}

	if err := unmarshalColumn(employment, &app.Employment); err != nil {
		return nil, fmt.Errorf("decoding employment: %w", err)
	}

	if len(rental) > 0 {
		var r draft.RentalInfo
		if err := json.Unmarshal(rental, &r); err != nil {
			return nil, fmt.Errorf("decoding rental: %w", err)
		}

		app.Rental = &r
	}

	if err := unmarshalColumn(documents, &app.Documents); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}

	return &app, nil
}

func unmarshalColumn(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, v)
}

func (s *Store) GetApplication(ctx context.Context, id uuid.UUID) (*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + `
		FROM applications
		WHERE id = $1`

	app, err := scanApplication(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting application: %w", err)
	}

	return app, nil
}

func (s *Store) GetActiveByUser(ctx context.Context, userID string) (*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + `
		FROM applications
		WHERE user_id = $1 AND status <> 'closed'`

	app, err := scanApplication(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting active application: %w", err)
	}

	return app, nil
}

func (s *Store) ListApplications(ctx context.Context, filter application.ListFilter) ([]*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + `
		FROM applications`

	var (
		conds []string
		args  []any
	)

	argIdx := 1

	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.UserID != "" {
		conds = append(conds, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, filter.UserID)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*application.Application

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}

		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application rows: %w", err)
	}

	return apps, nil
}

func (s *Store) UpdateStatus(ctx context.Context, app *application.Application) error {
	docs, err := encodeDocuments(app.Documents)
	if err != nil {
		return err
	}

	query := `
		UPDATE applications
		SET status = $1, notes = $2, documents = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING version, updated_at
	`

	err = s.db.QueryRowContext(ctx, query, app.Status, app.Notes, docs, app.ID, app.Version).
		Scan(&app.Version, &app.UpdatedAt)

	return casError("updating status", err)
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, app *application.Application, from application.PaymentStatus) error {
	query := `
		UPDATE applications
		SET payment_status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND payment_status = $3
		RETURNING version, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, app.PaymentStatus, app.ID, from).
		Scan(&app.Version, &app.UpdatedAt)

	return casError("updating payment status", err)
}

func (s *Store) UpdateDocuments(ctx context.Context, app *application.Application) error {
	docs, err := encodeDocuments(app.Documents)
	if err != nil {
		return err
	}

	query := `
		UPDATE applications
		SET documents = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3 AND status = 'submitted'
		RETURNING version, updated_at
	`

	err = s.db.QueryRowContext(ctx, query, docs, app.ID, app.Version).
		Scan(&app.Version, &app.UpdatedAt)

	return casError("updating documents", err)
}

func encodeDocuments(hs document.Handles) ([]byte, error) {
	if hs == nil {
		hs = document.Handles{}
	}

	raw, err := json.Marshal(hs)
	if err != nil {
		return nil, fmt.Errorf("encoding documents: %w", err)
	}

	return raw, nil
}

// casError maps a compare-and-swap that matched no row to ErrVersionConflict.
func casError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return application.ErrVersionConflict
	}

	return fmt.Errorf("%s: %w", op, err)
}

func submitLockKey(userID string) int64 {
	h := fnv.New64a()
	h.Write([]byte("submit"))
	h.Write([]byte{0})
	h.Write([]byte(userID))

	return int64(h.Sum64())
}

type submitTx struct {
	tx *sql.Tx
}

func (s *Store) BeginSubmit(ctx context.Context, userID string) (application.SubmitTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning submit tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", submitLockKey(userID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring submit lock: %w", err)
	}

	return &submitTx{tx: dbTx}, nil
}

func (stx *submitTx) Commit() error   { return stx.tx.Commit() }
func (stx *submitTx) Rollback() error { return stx.tx.Rollback() }

func (stx *submitTx) HasActiveApplication(ctx context.Context, userID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE user_id = $1 AND status <> 'closed')`
	if err := stx.tx.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking active application: %w", err)
	}

	return exists, nil
}

func (stx *submitTx) CreateApplication(ctx context.Context, app *application.Application) error {
	personal, err := json.Marshal(app.Personal)
	if err != nil {
		return fmt.Errorf("encoding personal: %w", err)
	}

	employment, err := json.Marshal(app.Employment)
	if err != nil {
		return fmt.Errorf("encoding employment: %w", err)
	}

	var rental []byte
	if app.Rental != nil {
		if rental, err = json.Marshal(app.Rental); err != nil {
			return fmt.Errorf("encoding rental: %w", err)
		}
	}

	documents, err := json.Marshal(app.Documents)
	if err != nil {
		return fmt.Errorf("encoding documents: %w", err)
	}

	query := `
		INSERT INTO applications (
			id, user_id, email, first_name, last_name, personal, employment, rental, documents,
			status, payment_status, notes, version, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if _, err := stx.tx.ExecContext(ctx, query,
		app.ID,
		app.UserID,
		app.Email,
		app.FirstName,
		app.LastName,
		personal,
		employment,
		rental,
		documents,
		app.Status,
		app.PaymentStatus,
		app.Notes,
		app.Version,
		app.CreatedAt,
		app.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating application: %w", err)
	}

	return nil
}

func (stx *submitTx) SupersedeDraft(ctx context.Context, userID string) error {
	query := `
		UPDATE application_drafts
		SET superseded_at = NOW()
		WHERE user_id = $1 AND superseded_at IS NULL
	`

	if _, err := stx.tx.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("superseding draft: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: user_id, category, handle, filename, url, size, mime_type, scanned, uploaded_at
func scanHandle(s scanner) (*document.Handle, error) {
	var h document.Handle

	var category string

	if err := s.Scan(
		&h.UserID, &category, &h.ProviderID, &h.Filename, &h.URL,
		&h.Size, &h.MimeType, &h.Scanned, &h.UploadedAt,
	); err != nil {
		return nil, err
	}

	h.Category = document.Category(category)

	return &h, nil
}

const selectHandleColumns = `user_id, category, handle, filename, url, size, mime_type, scanned, uploaded_at`

// UpsertHandle replaces the category's handle inside one transaction so the previous row can be returned.
func (s *Store) UpsertHandle(ctx context.Context, h *document.Handle) (*document.Handle, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	prevQuery := `SELECT ` + selectHandleColumns + `
		FROM document_handles
		WHERE user_id = $1 AND category = $2
		FOR UPDATE`

	prev, err := scanHandle(dbTx.QueryRowContext(ctx, prevQuery, h.UserID, h.Category))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loading previous handle: %w", err)
	}

	upsertQuery := `
		INSERT INTO document_handles (user_id, category, handle, filename, url, size, mime_type, scanned, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, category) DO UPDATE SET
			handle = EXCLUDED.handle,
			filename = EXCLUDED.filename,
			url = EXCLUDED.url,
			size = EXCLUDED.size,
			mime_type = EXCLUDED.mime_type,
			scanned = EXCLUDED.scanned,
			uploaded_at = EXCLUDED.uploaded_at
	`

	if _, err := dbTx.ExecContext(ctx, upsertQuery,
		h.UserID,
		h.Category,
		h.ProviderID,
		h.Filename,
		h.URL,
		h.Size,
		h.MimeType,
		h.Scanned,
		h.UploadedAt,
	); err != nil {
		return nil, fmt.Errorf("upserting handle: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return prev, nil
}

func (s *Store) DeleteHandle(ctx context.Context, userID string, category document.Category) (*document.Handle, error) {
	query := `DELETE FROM document_handles
		WHERE user_id = $1 AND category = $2
		RETURNING ` + selectHandleColumns

	h, err := scanHandle(s.db.QueryRowContext(ctx, query, userID, category))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("deleting handle: %w", err)
	}

	return h, nil
}

func (s *Store) ListHandles(ctx context.Context, userID string) ([]*document.Handle, error) {
	query := `SELECT ` + selectHandleColumns + `
		FROM document_handles
		WHERE user_id = $1
		ORDER BY category ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing handles: %w", err)
	}
	defer rows.Close()

	var hs []*document.Handle

	for rows.Next() {
		h, err := scanHandle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning handle: %w", err)
		}

		hs = append(hs, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating handle rows: %w", err)
	}

	return hs, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/matching"
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

const selectRecommendationColumns = `id, application_id, cosigner_name, outcome, details, recorded_by, created_at`

func scanRecommendation(s scanner) (*matching.Recommendation, error) {
	var r matching.Recommendation

	if err := s.Scan(&r.ID, &r.ApplicationID, &r.CosignerName, &r.Outcome, &r.Details, &r.RecordedBy, &r.CreatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Store) CreateRecommendation(ctx context.Context, r *matching.Recommendation) error {
	query := `
		INSERT INTO recommendations (id, application_id, cosigner_name, outcome, details, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query, r.ID, r.ApplicationID, r.CosignerName, r.Outcome, r.Details, r.RecordedBy, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating recommendation: %w", err)
	}

	return nil
}

func (s *Store) LatestRecommendation(ctx context.Context, applicationID uuid.UUID) (*matching.Recommendation, error) {
	query := `SELECT ` + selectRecommendationColumns + `
		FROM recommendations
		WHERE application_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	r, err := scanRecommendation(s.db.QueryRowContext(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matching.ErrNotFound
		}

		return nil, fmt.Errorf("finding latest recommendation: %w", err)
	}

	return r, nil
}

func (s *Store) ListRecommendations(ctx context.Context, applicationID uuid.UUID) ([]*matching.Recommendation, error) {
	query := `SELECT ` + selectRecommendationColumns + `
		FROM recommendations
		WHERE application_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var out []*matching.Recommendation

	for rows.Next() {
		r, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendation rows: %w", err)
	}

	return out, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/cosigner/internal/draft"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertStep writes the payload for the user's active draft. Superseded rows are left untouched.
func (s *Store) UpsertStep(ctx context.Context, userID string, step draft.Step, payload []byte) error {
	query := `
		INSERT INTO application_drafts (user_id, step, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, step) WHERE superseded_at IS NULL
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, userID, step, payload); err != nil {
		return fmt.Errorf("upserting draft step: %w", err)
	}

	return nil
}

func (s *Store) LoadSteps(ctx context.Context, userID string) ([]draft.Entry, error) {
	query := `
		SELECT step, payload, updated_at
		FROM application_drafts
		WHERE user_id = $1 AND superseded_at IS NULL
		ORDER BY step ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("loading draft steps: %w", err)
	}
	defer rows.Close()

	var entries []draft.Entry

	for rows.Next() {
		var (
			e    draft.Entry
			step string
		)

		if err := rows.Scan(&step, &e.Payload, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft step: %w", err)
		}

		e.Step = draft.Step(step)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating draft rows: %w", err)
	}

	return entries, nil
}

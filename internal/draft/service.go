package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/metrics"
)

// Entry is one stored step payload.
type Entry struct {
	Step      Step
	Payload   []byte
	UpdatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=draft
type Repository interface {
	UpsertStep(ctx context.Context, userID string, step Step, payload []byte) error
	// LoadSteps returns the active (not superseded) entries for the user.
	LoadSteps(ctx context.Context, userID string) ([]Entry, error)
}

// Cache is the fast mirror in front of the Repository. It is never the source of truth.
type Cache interface {
	Put(ctx context.Context, userID string, step Step, payload []byte) error
	Get(ctx context.Context, userID string) (map[Step][]byte, error)
	MarkUnsynced(ctx context.Context, userID string, step Step) error
	ClearUnsynced(ctx context.Context, userID string, step Step) error
	Unsynced(ctx context.Context, userID string) ([]Step, error)
	Drop(ctx context.Context, userID string) error
}

type Service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// SaveStep upserts the payload for step. It never validates content; partial answers are expected.
// When the durable write fails the cached copy is kept, flagged unsynced, and a Transient error is returned.
func (s *Service) SaveStep(ctx context.Context, userID string, step Step, payload Payload) error {
	if userID == "" {
		return auth.ErrUnauthenticated
	}

	if !step.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}

	if payload == nil || payload.Step() != step {
		return fmt.Errorf("%w: %s", ErrStepMismatch, step)
	}

	raw, err := encode(payload)
	if err != nil {
		return err
	}

	if err := s.cache.Put(ctx, userID, step, raw); err != nil {
		slog.Warn("draft cache write failed", "user_id", userID, "step", step, "error", err)
	}

	if err := s.repo.UpsertStep(ctx, userID, step, raw); err != nil {
		metrics.RecordStepSave(string(step), "unsynced")

		if cerr := s.cache.MarkUnsynced(ctx, userID, step); cerr != nil {
			slog.Error("draft step lost: durable and cache writes failed", "user_id", userID, "step", step, "error", cerr)
		}

		return apperror.NewTransient("saving step", err)
	}

	if err := s.cache.ClearUnsynced(ctx, userID, step); err != nil {
		slog.Warn("draft cache unsynced flag not cleared", "user_id", userID, "step", step, "error", err)
	}

	metrics.RecordStepSave(string(step), "ok")

	return nil
}

// LoadDraft returns the user's active draft. An unknown user gets an empty draft.
// Unsynced cached steps are retried first; the durable store wins every conflict and
// steps that still cannot be synced come back in Draft.Unsynced.
func (s *Service) LoadDraft(ctx context.Context, userID string) (*Draft, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	d := newDraft(userID)

	pending := s.flush(ctx, userID)

	entries, err := s.repo.LoadSteps(ctx, userID)
	if err != nil {
		return nil, apperror.NewTransient("loading draft", err)
	}

	for _, e := range entries {
		p, err := Decode(e.Step, e.Payload)
		if err != nil {
			return nil, err
		}

		d.Steps[e.Step] = p

		if e.UpdatedAt.After(d.UpdatedAt) {
			d.UpdatedAt = e.UpdatedAt
		}

		if _, stillPending := pending[e.Step]; !stillPending {
			if err := s.cache.Put(ctx, userID, e.Step, e.Payload); err != nil {
				slog.Warn("draft cache refresh failed", "user_id", userID, "step", e.Step, "error", err)
			}
		}
	}

	for step, raw := range pending {
		p, err := Decode(step, raw)
		if err != nil {
			slog.Warn("dropping undecodable cached step", "user_id", userID, "step", step, "error", err)
			continue
		}

		d.Unsynced[step] = p
	}

	return d, nil
}

// flush retries durable writes for cached steps flagged unsynced and returns those that still failed.
func (s *Service) flush(ctx context.Context, userID string) map[Step][]byte {
	pending := map[Step][]byte{}

	steps, err := s.cache.Unsynced(ctx, userID)
	if err != nil {
		slog.Warn("reading unsynced draft steps failed", "user_id", userID, "error", err)
		return pending
	}

	if len(steps) == 0 {
		return pending
	}

	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		slog.Warn("reading cached draft failed", "user_id", userID, "error", err)
		return pending
	}

	for _, step := range steps {
		raw, ok := cached[step]
		if !ok {
			slog.Warn("unsynced draft step has no cached payload, answer lost", "user_id", userID, "step", step)

			if err := s.cache.ClearUnsynced(ctx, userID, step); err != nil {
				slog.Warn("draft cache unsynced flag not cleared", "user_id", userID, "step", step, "error", err)
			}

			continue
		}

		if err := s.repo.UpsertStep(ctx, userID, step, raw); err != nil {
			pending[step] = raw
			continue
		}

		if err := s.cache.ClearUnsynced(ctx, userID, step); err != nil {
			slog.Warn("draft cache unsynced flag not cleared", "user_id", userID, "step", step, "error", err)
		}
	}

	return pending
}

// Discard forgets the cached copy of a draft that a submission has superseded.
func (s *Service) Discard(ctx context.Context, userID string) error {
	if err := s.cache.Drop(ctx, userID); err != nil {
		return fmt.Errorf("dropping draft cache: %w", err)
	}

	return nil
}

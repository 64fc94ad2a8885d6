package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=matching
type Repository interface {
	CreateRecommendation(ctx context.Context, r *Recommendation) error
	// LatestRecommendation returns ErrNotFound when the application has none.
	LatestRecommendation(ctx context.Context, applicationID uuid.UUID) (*Recommendation, error)
	ListRecommendations(ctx context.Context, applicationID uuid.UUID) ([]*Recommendation, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores a recommendation for the application. An empty outcome is refused.
func (s *Service) Record(ctx context.Context, applicationID uuid.UUID, params RecordParams) (*Recommendation, error) {
	r := &Recommendation{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		CosignerName:  strings.TrimSpace(params.CosignerName),
		Outcome:       strings.TrimSpace(params.Outcome),
		Details:       params.Details,
		RecordedBy:    params.RecordedBy,
		CreatedAt:     time.Now().UTC(),
	}

	if r.Empty() {
		return nil, ErrEmptyRecommendation
	}

	if err := s.repo.CreateRecommendation(ctx, r); err != nil {
		return nil, fmt.Errorf("recording recommendation: %w", err)
	}

	return r, nil
}

// Latest returns the most recent recommendation, or ErrNotFound.
func (s *Service) Latest(ctx context.Context, applicationID uuid.UUID) (*Recommendation, error) {
	return s.repo.LatestRecommendation(ctx, applicationID)
}

func (s *Service) List(ctx context.Context, applicationID uuid.UUID) ([]*Recommendation, error) {
	return s.repo.ListRecommendations(ctx, applicationID)
}

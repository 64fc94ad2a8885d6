package application

import (
	"context"
	"errors"

	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
)

// DocumentGate locks an applicant's uploads once review of their open application has begun.
type DocumentGate struct {
	repo Repository
}

func NewDocumentGate(repo Repository) *DocumentGate {
	return &DocumentGate{repo: repo}
}

// CheckDocumentsEditable allows changes when the applicant has no open application or it is still submitted.
func (g *DocumentGate) CheckDocumentsEditable(ctx context.Context, userID string) error {
	app, err := g.repo.GetActiveByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}

	if err != nil {
		return apperror.NewTransient("checking open application", err)
	}

	if app.Status != StatusSubmitted {
		return ErrDocumentsLocked
	}

	return nil
}

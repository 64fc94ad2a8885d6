package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
	"github.com/MrJamesThe3rd/cosigner/internal/metrics"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=application
type Repository interface {
	GetApplication(ctx context.Context, id uuid.UUID) (*Application, error)
	// GetActiveByUser returns the applicant's non-closed application, or ErrNotFound.
	GetActiveByUser(ctx context.Context, userID string) (*Application, error)
	ListApplications(ctx context.Context, filter ListFilter) ([]*Application, error)

	// The Update methods write only their own columns, compare-and-swap on app.Version,
	// and on success store the new Version and UpdatedAt back into app.
	// UpdateStatus also writes documents, which review start refreshes.
	UpdateStatus(ctx context.Context, app *Application) error
	UpdatePaymentStatus(ctx context.Context, app *Application, from PaymentStatus) error
	UpdateDocuments(ctx context.Context, app *Application) error

	// BeginSubmit opens a transaction serialized per applicant.
	BeginSubmit(ctx context.Context, userID string) (SubmitTx, error)
}

type SubmitTx interface {
	HasActiveApplication(ctx context.Context, userID string) (bool, error)
	CreateApplication(ctx context.Context, app *Application) error
	SupersedeDraft(ctx context.Context, userID string) error
	Commit() error
	Rollback() error
}

type DraftSource interface {
	LoadDraft(ctx context.Context, userID string) (*draft.Draft, error)
	Discard(ctx context.Context, userID string) error
}

type DocumentSource interface {
	List(ctx context.Context, userID string) (document.Handles, error)
}

type RecommendationSource interface {
	Latest(ctx context.Context, applicationID uuid.UUID) (*matching.Recommendation, error)
}

type Service struct {
	repo   Repository
	drafts DraftSource
	docs   DocumentSource
	recs   RecommendationSource
	now    func() time.Time
}

func NewService(repo Repository, drafts DraftSource, docs DocumentSource, recs RecommendationSource) *Service {
	return &Service{
		repo:   repo,
		drafts: drafts,
		docs:   docs,
		recs:   recs,
		now:    time.Now,
	}
}

// Readiness runs the submission gate against the applicant's current draft and documents without writing anything.
func (s *Service) Readiness(ctx context.Context, userID string) (validation.Result, *draft.Draft, document.Handles, error) {
	if userID == "" {
		return validation.Result{}, nil, nil, auth.ErrUnauthenticated
	}

	d, err := s.drafts.LoadDraft(ctx, userID)
	if err != nil {
		return validation.Result{}, nil, nil, fmt.Errorf("loading draft: %w", err)
	}

	handles, err := s.docs.List(ctx, userID)
	if err != nil {
		return validation.Result{}, nil, nil, fmt.Errorf("loading documents: %w", err)
	}

	return validation.ValidateSubmission(d, handles), d, handles, nil
}

// Submit turns the applicant's draft into an Application. Either every gate passes and the
// application is created with its draft superseded, or nothing changes.
func (s *Service) Submit(ctx context.Context, user auth.User) (*Application, error) {
	res, d, handles, err := s.Readiness(ctx, user.ID)
	if err != nil {
		metrics.RecordSubmission("error")
		return nil, err
	}

	if len(d.Unsynced) > 0 {
		metrics.RecordSubmission("unsynced")
		return nil, apperror.NewTransient("submitting application", ErrDraftUnsynced)
	}

	if err := res.Err(); err != nil {
		metrics.RecordSubmission("invalid")
		return nil, err
	}

	app := s.newApplication(user, d, handles)

	tx, err := s.repo.BeginSubmit(ctx, user.ID)
	if err != nil {
		metrics.RecordSubmission("error")
		return nil, apperror.NewTransient("begin submit", err)
	}
	defer tx.Rollback()

	active, err := tx.HasActiveApplication(ctx, user.ID)
	if err != nil {
		metrics.RecordSubmission("error")
		return nil, apperror.NewTransient("checking open applications", err)
	}

	if active {
		metrics.RecordSubmission("duplicate")
		return nil, ErrActiveApplication
	}

	if err := tx.CreateApplication(ctx, app); err != nil {
		metrics.RecordSubmission("error")
		return nil, apperror.NewTransient("create application", err)
	}

	if err := tx.SupersedeDraft(ctx, user.ID); err != nil {
		metrics.RecordSubmission("error")
		return nil, apperror.NewTransient("supersede draft", err)
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordSubmission("error")
		return nil, apperror.NewTransient("commit submit", err)
	}

	if err := s.drafts.Discard(ctx, user.ID); err != nil {
		slog.Warn("failed to discard submitted draft cache", "user_id", user.ID, "error", err)
	}

	metrics.RecordSubmission("ok")

	return app, nil
}

func (s *Service) newApplication(user auth.User, d *draft.Draft, handles document.Handles) *Application {
	personal, _ := d.Personal()
	employment, _ := d.Employment()
	now := s.now().UTC()

	app := &Application{
		ID:            uuid.New(),
		UserID:        user.ID,
		FirstName:     personal.FirstName,
		LastName:      personal.LastName,
		Email:         user.Email,
		Personal:      personal,
		Employment:    employment,
		Documents:     handles.Finalized(),
		Status:        StatusSubmitted,
		PaymentStatus: PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if rental, ok := d.Rental(); ok {
		app.Rental = &rental
	}

	return app
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return s.repo.GetApplication(ctx, id)
}

// Current returns the applicant's open application, or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string) (*Application, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	return s.repo.GetActiveByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Application, error) {
	return s.repo.ListApplications(ctx, filter)
}

// SyncDocuments copies the applicant's current handles onto their open application.
// Only a submitted application accepts new documents.
func (s *Service) SyncDocuments(ctx context.Context, userID string, expectedVersion *int) (*Application, error) {
	app, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	if app.Status != StatusSubmitted {
		return nil, ErrDocumentsLocked
	}

	if expectedVersion != nil && *expectedVersion != app.Version {
		return nil, ErrVersionConflict
	}

	handles, err := s.docs.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	next := *app
	next.Documents = handles.Finalized()

	if err := s.repo.UpdateDocuments(ctx, &next); err != nil {
		return nil, storeError("updating documents", err)
	}

	return &next, nil
}

// Transition moves the application along the status graph on behalf of a reviewer.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, params TransitionParams) (*Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.ExpectedVersion != nil && *params.ExpectedVersion != app.Version {
		metrics.RecordTransition(string(AxisStatus), string(params.To), "conflict")
		return nil, ErrVersionConflict
	}

	hasRecommendation := false

	if params.To == StatusRecommendationsSent && CanTransition(app.Status, params.To) {
		rec, err := s.recs.Latest(ctx, app.ID)
		if err != nil && !errors.Is(err, matching.ErrNotFound) {
			return nil, apperror.NewTransient("loading recommendation", err)
		}

		hasRecommendation = !rec.Empty()
	}

	next := *app

	// review starts from the handles the applicant holds now, not the copy taken at submission
	if params.To == StatusInReview && CanTransition(app.Status, params.To) {
		handles, err := s.docs.List(ctx, app.UserID)
		if err != nil {
			return nil, fmt.Errorf("loading documents: %w", err)
		}

		next.Documents = handles.Finalized()
	}

	if err := checkTransition(&next, params.To, hasRecommendation); err != nil {
		metrics.RecordTransition(string(AxisStatus), string(params.To), "rejected")
		return nil, err
	}

	next.Status = params.To

	if params.Notes != nil {
		next.Notes = params.Notes
	}

	if err := s.repo.UpdateStatus(ctx, &next); err != nil {
		metrics.RecordTransition(string(AxisStatus), string(params.To), "error")
		return nil, storeError("updating status", err)
	}

	slog.Info("application status changed",
		"application_id", app.ID,
		"from", app.Status,
		"to", next.Status,
		"reviewer_id", params.ReviewerID,
	)
	metrics.RecordTransition(string(AxisStatus), string(params.To), "ok")

	return &next, nil
}

// RecordPayment applies a payment provider callback. A callback for the state the
// application is already in is a redelivery and changes nothing.
func (s *Service) RecordPayment(ctx context.Context, id uuid.UUID, to PaymentStatus) (*Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if app.PaymentStatus == to {
		metrics.RecordTransition(string(AxisPayment), string(to), "duplicate")
		return app, nil
	}

	if err := checkPaymentTransition(app.PaymentStatus, to); err != nil {
		metrics.RecordTransition(string(AxisPayment), string(to), "rejected")
		return nil, err
	}

	next := *app
	next.PaymentStatus = to

	if err := s.repo.UpdatePaymentStatus(ctx, &next, app.PaymentStatus); err != nil {
		metrics.RecordTransition(string(AxisPayment), string(to), "error")
		return nil, storeError("updating payment status", err)
	}

	metrics.RecordTransition(string(AxisPayment), string(to), "ok")

	return &next, nil
}

// storeError keeps the domain sentinels visible and marks everything else retryable.
func storeError(op string, err error) error {
	if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrNotFound) {
		return err
	}

	return apperror.NewTransient(op, err)
}

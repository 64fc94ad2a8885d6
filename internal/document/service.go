package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=document
type Repository interface {
	// UpsertHandle stores h as the only handle for its category and returns the one it replaced, if any.
	UpsertHandle(ctx context.Context, h *Handle) (*Handle, error)
	// DeleteHandle removes the category's handle and returns it, or ErrNotFound.
	DeleteHandle(ctx context.Context, userID string, category Category) (*Handle, error)
	ListHandles(ctx context.Context, userID string) ([]*Handle, error)
}

type Provider interface {
	Upload(ctx context.Context, category Category, file File) (*Receipt, error)
	Delete(ctx context.Context, handle string) error
}

// EditGuard decides whether the applicant may still change their documents.
// It returns nil while they may, and the refusal otherwise.
type EditGuard interface {
	CheckDocumentsEditable(ctx context.Context, userID string) error
}

// Limits caps upload sizes per category group.
type Limits struct {
	IdentityMaxBytes int64
	IncomeMaxBytes   int64
}

func DefaultLimits() Limits {
	return Limits{
		IdentityMaxBytes: 5 << 20,
		IncomeMaxBytes:   10 << 20,
	}
}

// MaxBytes returns the ceiling for c. Income documents are often multi-page scans.
func (l Limits) MaxBytes(c Category) int64 {
	if c == CategoryIncomeVerification {
		return l.IncomeMaxBytes
	}

	return l.IdentityMaxBytes
}

var allowedTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/heic",
}

// sniffLen is how many leading bytes are inspected to detect the content type.
const sniffLen = 3072

type Service struct {
	repo     Repository
	provider Provider
	guard    EditGuard
	limits   Limits
	now      func() time.Time
}

func NewService(repo Repository, provider Provider, guard EditGuard, limits Limits) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		guard:    guard,
		limits:   limits,
		now:      time.Now,
	}
}

// Upload checks the file, sends it to the provider and records the resulting handle.
// Nothing is recorded if the provider refuses the file or ctx is cancelled before it answers.
func (s *Service) Upload(ctx context.Context, userID string, category Category, file File) (*Handle, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	if !category.Valid() {
		return nil, ErrUnknownCategory
	}

	if err := s.guard.CheckDocumentsEditable(ctx, userID); err != nil {
		metrics.RecordUpload(string(category), "locked")
		return nil, err
	}

	checked, err := s.check(category, file)
	if err != nil {
		metrics.RecordUpload(string(category), "invalid")
		return nil, err
	}

	receipt, err := s.provider.Upload(ctx, category, checked)
	if ctxErr := ctx.Err(); ctxErr != nil {
		metrics.RecordUpload(string(category), "abandoned")
		return nil, fmt.Errorf("upload abandoned: %w", ctxErr)
	}

	if err != nil {
		metrics.RecordUpload(string(category), "provider_error")
		return nil, classifyProviderError(category, err)
	}

	h := &Handle{
		UserID:     userID,
		Category:   category,
		ProviderID: receipt.Handle,
		Filename:   receipt.Filename,
		URL:        receipt.URL,
		Size:       receipt.Size,
		MimeType:   receipt.MimeType,
		UploadedAt: s.now().UTC(),
		Scanned:    true,
	}

	if h.Filename == "" {
		h.Filename = file.Filename
	}

	if err := s.record(ctx, h); err != nil {
		metrics.RecordUpload(string(category), "record_error")
		return nil, err
	}

	metrics.RecordUpload(string(category), "ok")

	return h, nil
}

func (s *Service) check(category Category, file File) (File, error) {
	if file.Size == 0 || file.Content == nil {
		return File{}, ErrEmptyFile
	}

	if limit := s.limits.MaxBytes(category); file.Size > limit {
		return File{}, fmt.Errorf("%w: %d bytes, limit for %s is %d", ErrFileTooLarge, file.Size, category, limit)
	}

	head := make([]byte, sniffLen)

	n, err := io.ReadFull(file.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("reading file: %w", err)
	}

	head = head[:n]
	if n == 0 {
		return File{}, ErrEmptyFile
	}

	detected := mimetype.Detect(head)
	if !mimetype.EqualsAny(detected.String(), allowedTypes...) {
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedType, detected.String())
	}

	return File{
		Filename: file.Filename,
		Size:     file.Size,
		Content:  io.MultiReader(bytes.NewReader(head), file.Content),
	}, nil
}

func classifyProviderError(category Category, err error) error {
	var perr *ProviderError
	if !errors.As(err, &perr) {
		return apperror.NewTransient("uploading document", err)
	}

	switch perr.Type {
	case ProviderSecurityThreat:
		return &SecurityRejection{Kind: RejectionThreat, Category: category, Reason: perr.Message}
	case ProviderContentRejected:
		return &SecurityRejection{Kind: RejectionContent, Category: category, Reason: perr.Message}
	default:
		return apperror.NewTransient("uploading document", perr)
	}
}

// RecordUpload makes h the active handle for category. A replaced file is deleted from the provider on a best-effort basis.
func (s *Service) RecordUpload(ctx context.Context, userID string, category Category, h *Handle) error {
	if userID == "" {
		return auth.ErrUnauthenticated
	}

	if !category.Valid() {
		return ErrUnknownCategory
	}

	if err := s.guard.CheckDocumentsEditable(ctx, userID); err != nil {
		return err
	}

	h.UserID = userID
	h.Category = category

	return s.record(ctx, h)
}

func (s *Service) record(ctx context.Context, h *Handle) error {
	prev, err := s.repo.UpsertHandle(ctx, h)
	if err != nil {
		return apperror.NewTransient("recording document", err)
	}

	if prev != nil && prev.ProviderID != "" && prev.ProviderID != h.ProviderID {
		s.deleteRemote(ctx, prev)
	}

	return nil
}

// RemoveUpload drops the local handle and then asks the provider to delete the file.
// The local removal stands even if the provider call fails; that failure is logged for reconciliation.
func (s *Service) RemoveUpload(ctx context.Context, userID string, category Category) error {
	if userID == "" {
		return auth.ErrUnauthenticated
	}

	if !category.Valid() {
		return ErrUnknownCategory
	}

	if err := s.guard.CheckDocumentsEditable(ctx, userID); err != nil {
		return err
	}

	removed, err := s.repo.DeleteHandle(ctx, userID, category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}

		return apperror.NewTransient("removing document", err)
	}

	if removed.ProviderID != "" {
		s.deleteRemote(ctx, removed)
	}

	return nil
}

func (s *Service) deleteRemote(ctx context.Context, h *Handle) {
	// The applicant's request already succeeded locally; do not let their cancellation skip the remote delete.
	ctx = context.WithoutCancel(ctx)

	if err := s.provider.Delete(ctx, h.ProviderID); err != nil {
		metrics.RecordProviderDeleteFailure()
		slog.Error("provider delete failed, needs reconciliation",
			"user_id", h.UserID,
			"category", h.Category,
			"handle", h.ProviderID,
			"error", err,
		)
	}
}

// List returns the applicant's current handles keyed by category.
func (s *Service) List(ctx context.Context, userID string) (Handles, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	hs, err := s.repo.ListHandles(ctx, userID)
	if err != nil {
		return nil, apperror.NewTransient("listing documents", err)
	}

	out := make(Handles, len(hs))
	for _, h := range hs {
		out[h.Category] = *h
	}

	return out, nil
}

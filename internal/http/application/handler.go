package application

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/http/respond"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

// Service is the applicant-facing side of the application workflow.
type Service interface {
	Readiness(ctx context.Context, userID string) (validation.Result, *draft.Draft, document.Handles, error)
	Submit(ctx context.Context, user auth.User) (*application.Application, error)
	Current(ctx context.Context, userID string) (*application.Application, error)
	SyncDocuments(ctx context.Context, userID string, expectedVersion *int) (*application.Application, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/validation", h.readiness)
	r.Post("/", h.submit)
	r.Get("/current", h.current)
	r.Put("/current/documents", h.syncDocuments)
}

type readinessResponse struct {
	validation.Result
	RequiredDocuments []document.Category `json:"requiredDocuments"`
}

func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, d, _, err := h.svc.Readiness(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	personal, _ := d.Personal()
	employment, _ := d.Employment()

	respond.JSON(w, http.StatusOK, readinessResponse{
		Result:            res,
		RequiredDocuments: validation.RequiredDocuments(employment, personal),
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	app, err := h.svc.Submit(r.Context(), user)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.ETag(w, app.Version)
	respond.JSON(w, http.StatusCreated, app)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	app, err := h.svc.Current(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.ETag(w, app.Version)
	respond.JSON(w, http.StatusOK, app)
}

func (h *Handler) syncDocuments(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	expected, err := respond.IfMatch(r)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	app, err := h.svc.SyncDocuments(r.Context(), user.ID, expected)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.ETag(w, app.Version)
	respond.JSON(w, http.StatusOK, app)
}

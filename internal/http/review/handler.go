package review

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/http/respond"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
)

type Applications interface {
	List(ctx context.Context, filter application.ListFilter) ([]*application.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*application.Application, error)
	Transition(ctx context.Context, id uuid.UUID, params application.TransitionParams) (*application.Application, error)
}

type Recommendations interface {
	Record(ctx context.Context, applicationID uuid.UUID, params matching.RecordParams) (*matching.Recommendation, error)
	List(ctx context.Context, applicationID uuid.UUID) ([]*matching.Recommendation, error)
}

// Handler serves the reviewer routes. The router restricts it to the reviewer role.
type Handler struct {
	apps Applications
	recs Recommendations
}

func NewHandler(apps Applications, recs Recommendations) *Handler {
	return &Handler{apps: apps, recs: recs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/transitions", h.transition)
	r.Post("/{id}/recommendations", h.recommend)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := application.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := application.Status(s)
		if !status.Valid() {
			respond.BadRequest(w, "unknown status")
			return
		}

		filter.Status = &status
	}

	apps, err := h.apps.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if apps == nil {
		apps = []*application.Application{}
	}

	respond.JSON(w, http.StatusOK, apps)
}

type detailResponse struct {
	*application.Application
	NextStatuses    []application.Status       `json:"nextStatuses"`
	Recommendations []*matching.Recommendation `json:"recommendations"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	app, err := h.apps.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	recs, err := h.recs.List(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if recs == nil {
		recs = []*matching.Recommendation{}
	}

	respond.ETag(w, app.Version)
	respond.JSON(w, http.StatusOK, detailResponse{
		Application:     app,
		NextStatuses:    application.NextStatuses(app.Status),
		Recommendations: recs,
	})
}

type transitionRequest struct {
	To    application.Status `json:"to"`
	Notes *string            `json:"notes,omitempty"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	reviewer, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid body")
		return
	}

	expected, err := respond.IfMatch(r)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	app, err := h.apps.Transition(r.Context(), id, application.TransitionParams{
		To:              req.To,
		Notes:           req.Notes,
		ExpectedVersion: expected,
		ReviewerID:      reviewer.ID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.ETag(w, app.Version)
	respond.JSON(w, http.StatusOK, app)
}

type recommendRequest struct {
	CosignerName string `json:"cosignerName"`
	Outcome      string `json:"outcome"`
	Details      string `json:"details"`
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	reviewer, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid body")
		return
	}

	if _, err := h.apps.Get(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	rec, err := h.recs.Record(r.Context(), id, matching.RecordParams{
		CosignerName: req.CosignerName,
		Outcome:      req.Outcome,
		Details:      req.Details,
		RecordedBy:   reviewer.ID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, rec)
}

package draft

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/http/respond"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

const maxStepBody = 1 << 20

type Service interface {
	SaveStep(ctx context.Context, userID string, step draft.Step, payload draft.Payload) error
	LoadDraft(ctx context.Context, userID string) (*draft.Draft, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/steps/{step}", h.saveStep)
	r.Get("/steps/{step}/validation", h.validateStep)
}

type draftResponse struct {
	UserID    string                       `json:"userId"`
	Steps     map[draft.Step]draft.Payload `json:"steps"`
	Unsynced  []draft.Step                 `json:"unsynced"`
	UpdatedAt *time.Time                   `json:"updatedAt,omitempty"`
}

func toResponse(d *draft.Draft) draftResponse {
	resp := draftResponse{
		UserID:   d.UserID,
		Steps:    make(map[draft.Step]draft.Payload, len(d.Steps)+len(d.Unsynced)),
		Unsynced: []draft.Step{},
	}

	for step, p := range d.Steps {
		resp.Steps[step] = p
	}

	// answers the durable store has not confirmed are still shown, and flagged
	for _, step := range draft.Steps {
		if p, ok := d.Unsynced[step]; ok {
			resp.Steps[step] = p
			resp.Unsynced = append(resp.Unsynced, step)
		}
	}

	if !d.UpdatedAt.IsZero() {
		updatedAt := d.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.LoadDraft(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(d))
}

type saveStepResponse struct {
	Step       draft.Step        `json:"step"`
	Validation validation.Result `json:"validation"`
}

func (h *Handler) saveStep(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	step := draft.Step(chi.URLParam(r, "step"))
	if !step.Valid() {
		respond.BadRequest(w, "unknown step")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStepBody))
	if err != nil {
		respond.BadRequest(w, "could not read body")
		return
	}

	payload, err := draft.Decode(step, body)
	if err != nil {
		respond.BadRequest(w, "invalid step payload")
		return
	}

	if err := h.svc.SaveStep(r.Context(), user.ID, step, payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, saveStepResponse{
		Step:       step,
		Validation: validation.ValidateStep(step, payload),
	})
}

func (h *Handler) validateStep(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	step := draft.Step(chi.URLParam(r, "step"))
	if !step.Valid() {
		respond.BadRequest(w, "unknown step")
		return
	}

	d, err := h.svc.LoadDraft(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	payload, ok := d.Unsynced[step]
	if !ok {
		payload = d.Steps[step]
	}

	respond.JSON(w, http.StatusOK, validation.ValidateStep(step, payload))
}

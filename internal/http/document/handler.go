package document

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/http/respond"
)

// multipartMemory is how much of an upload is buffered in memory before spilling to a temp file.
const multipartMemory = 1 << 20

type Service interface {
	Upload(ctx context.Context, userID string, category document.Category, file document.File) (*document.Handle, error)
	RemoveUpload(ctx context.Context, userID string, category document.Category) error
	List(ctx context.Context, userID string) (document.Handles, error)
}

type Handler struct {
	svc      Service
	maxBytes int64
}

// NewHandler builds the documents handler. maxBytes caps the request body and should be
// at least the largest per-category limit.
func NewHandler(svc Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{category}", h.upload)
	r.Delete("/{category}", h.remove)
}

type listResponse struct {
	Documents []document.Handle `json:"documents"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hs, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := listResponse{Documents: []document.Handle{}}

	for _, c := range document.Categories {
		if hd, ok := hs[c]; ok && hd.Finalized() {
			resp.Documents = append(resp.Documents, hd)
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	category := document.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		respond.Error(w, r, document.ErrUnknownCategory)
		return
	}

	// headroom for the multipart envelope
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartMemory)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, r, document.ErrFileTooLarge)
			return
		}

		respond.BadRequest(w, "expected a multipart form with a file field")

		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	hd, err := h.svc.Upload(r.Context(), user.ID, category, document.File{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, hd)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	user, err := auth.FromContext(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	category := document.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		respond.Error(w, r, document.ErrUnknownCategory)
		return
	}

	if err := h.svc.RemoveUpload(r.Context(), user.ID, category); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

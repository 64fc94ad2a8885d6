// Package respond writes JSON bodies and maps workflow errors onto HTTP statuses.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Type          string   `json:"type"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
	Code          string   `json:"code,omitempty"`
	Retryable     bool     `json:"retryable,omitempty"`
	From          string   `json:"from,omitempty"`
	To            string   `json:"to,omitempty"`
}

// BadRequest reports a malformed request the service never saw.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorDetail{Type: "bad_request", Message: message}})
}

// Error writes the status and body for err. Unrecognized errors become a 500 and are logged.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}

	JSON(w, status, ErrorBody{Error: detail})
}

func classify(err error) (int, ErrorDetail) {
	var (
		verr *validation.Error
		srej *document.SecurityRejection
		terr *application.InvalidTransitionError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, ErrorDetail{
			Type:          "validation_error",
			Message:       "some required information is missing",
			MissingFields: verr.MissingFields,
		}
	case errors.As(err, &srej):
		return http.StatusUnprocessableEntity, ErrorDetail{
			Type:    "security_rejection",
			Code:    string(srej.Kind),
			Message: srej.UserMessage(),
		}
	case errors.As(err, &terr):
		return http.StatusConflict, ErrorDetail{
			Type:    "invalid_transition",
			Message: terr.Reason,
			From:    terr.From,
			To:      terr.To,
		}
	case apperror.IsTransient(err):
		return http.StatusServiceUnavailable, ErrorDetail{
			Type:      "transient",
			Message:   "a backing service is unavailable, your input was kept; please retry",
			Retryable: true,
		}
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorDetail{Type: "unauthenticated", Message: err.Error()}
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, matching.ErrNotFound),
		errors.Is(err, document.ErrNotFound):
		return http.StatusNotFound, ErrorDetail{Type: "not_found", Message: err.Error()}
	case errors.Is(err, application.ErrVersionConflict):
		return http.StatusPreconditionFailed, ErrorDetail{Type: "version_conflict", Message: err.Error()}
	case errors.Is(err, application.ErrActiveApplication):
		return http.StatusConflict, ErrorDetail{Type: "active_application", Message: err.Error()}
	case errors.Is(err, application.ErrDocumentsLocked):
		return http.StatusConflict, ErrorDetail{Type: "documents_locked", Message: err.Error()}
	case errors.Is(err, document.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorDetail{Type: "file_too_large", Message: err.Error()}
	case errors.Is(err, document.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, ErrorDetail{Type: "unsupported_type", Message: err.Error()}
	case errors.Is(err, document.ErrEmptyFile),
		errors.Is(err, document.ErrUnknownCategory),
		errors.Is(err, draft.ErrUnknownStep),
		errors.Is(err, draft.ErrStepMismatch),
		errors.Is(err, matching.ErrEmptyRecommendation):
		return http.StatusBadRequest, ErrorDetail{Type: "bad_request", Message: err.Error()}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, ErrorDetail{Type: "cancelled", Message: "request was abandoned"}
	}

	return http.StatusInternalServerError, ErrorDetail{Type: "internal", Message: "internal error"}
}

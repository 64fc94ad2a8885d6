package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/http/respond"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

func TestError(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		check      func(t *testing.T, d respond.ErrorDetail)
	}

	tests := []testCase{
		{
			name:       "Validation",
			err:        fmt.Errorf("submitting: %w", &validation.Error{MissingFields: []string{"studentId"}}),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "validation_error",
			check: func(t *testing.T, d respond.ErrorDetail) {
				assert.Equal(t, []string{"studentId"}, d.MissingFields)
			},
		},
		{
			name:       "SecurityThreat",
			err:        &document.SecurityRejection{Kind: document.RejectionThreat, Category: document.CategoryGovernmentID},
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "security_rejection",
			check: func(t *testing.T, d respond.ErrorDetail) {
				assert.Equal(t, "security_threat", d.Code)
				assert.NotEqual(t, (&document.SecurityRejection{Kind: document.RejectionContent}).UserMessage(), d.Message)
			},
		},
		{
			name:       "InvalidTransition",
			err:        &application.InvalidTransitionError{Axis: application.AxisStatus, From: "submitted", To: "closed", Reason: "application must pass through in_review first"},
			wantStatus: http.StatusConflict,
			wantType:   "invalid_transition",
			check: func(t *testing.T, d respond.ErrorDetail) {
				assert.Equal(t, "submitted", d.From)
				assert.Equal(t, "closed", d.To)
			},
		},
		{
			name:       "Transient",
			err:        apperror.NewTransient("saving step", errors.New("db down")),
			wantStatus: http.StatusServiceUnavailable,
			wantType:   "transient",
			check: func(t *testing.T, d respond.ErrorDetail) {
				assert.True(t, d.Retryable)
				assert.NotContains(t, d.Message, "db down")
			},
		},
		{name: "Unauthenticated", err: auth.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantType: "unauthenticated"},
		{name: "NotFound", err: application.ErrNotFound, wantStatus: http.StatusNotFound, wantType: "not_found"},
		{name: "VersionConflict", err: application.ErrVersionConflict, wantStatus: http.StatusPreconditionFailed, wantType: "version_conflict"},
		{name: "TooLarge", err: fmt.Errorf("%w: 9 bytes", document.ErrFileTooLarge), wantStatus: http.StatusRequestEntityTooLarge, wantType: "file_too_large"},
		{name: "Unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantType: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respond.Error(w, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body respond.ErrorBody
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantType, body.Error.Type)

			if tt.check != nil {
				tt.check(t, body.Error)
			}
		})
	}
}

func TestIfMatch(t *testing.T) {
	type testCase struct {
		name    string
		header  string
		want    *int
		wantErr bool
	}

	tests := []testCase{
		{name: "Absent"},
		{name: "Wildcard", header: "*"},
		{name: "Quoted", header: `"7"`, want: ptr(7)},
		{name: "Weak", header: `W/"3"`, want: ptr(3)},
		{name: "Garbage", header: `"abc"`, wantErr: true},
		{name: "Zero", header: `"0"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/", nil)
			if tt.header != "" {
				r.Header.Set("If-Match", tt.header)
			}

			got, err := respond.IfMatch(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, respond.ErrBadIfMatch)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestETag(t *testing.T) {
	w := httptest.NewRecorder()
	respond.ETag(w, 5)
	assert.Equal(t, `"5"`, w.Header().Get("ETag"))
}

func ptr[T any](v T) *T { return &v }

package matching

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("recommendation not found")
	ErrEmptyRecommendation = errors.New("recommendation has no outcome")
)

// Recommendation is the cosigner outcome a reviewer attaches to an application.
type Recommendation struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	CosignerName  string    `json:"cosignerName"`
	Outcome       string    `json:"outcome"`
	Details       string    `json:"details,omitempty"`
	RecordedBy    string    `json:"recordedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Empty reports whether r carries no outcome worth sending to the applicant.
func (r *Recommendation) Empty() bool {
	return r == nil || strings.TrimSpace(r.Outcome) == ""
}

type RecordParams struct {
	CosignerName string
	Outcome      string
	Details      string
	RecordedBy   string
}

package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

// Status is the review-progress axis of an Application.
type Status string

const (
	StatusSubmitted           Status = "submitted"
	StatusInReview            Status = "in_review"
	StatusRecommendationsSent Status = "recommendations_sent"
	StatusClosed              Status = "closed"
)

var Statuses = []Status{StatusSubmitted, StatusInReview, StatusRecommendationsSent, StatusClosed}

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusRecommendationsSent, StatusClosed:
		return true
	}

	return false
}

// PaymentStatus is the billing axis. It moves independently of Status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Application is the submitted record. It is never deleted, only closed.
type Application struct {
	ID            uuid.UUID            `json:"id"`
	UserID        string               `json:"userId"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Email         string               `json:"email"`
	Personal      draft.PersonalInfo   `json:"personal"`
	Employment    draft.EmploymentInfo `json:"employment"`
	Rental        *draft.RentalInfo    `json:"rental,omitempty"`
	Documents     document.Handles     `json:"documents"`
	Status        Status               `json:"status"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
	Notes         *string              `json:"notes,omitempty"`

	// Version increases on every stored mutation and backs the If-Match check.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MissingDocuments lists the required categories the application has no finalized handle for.
func (a *Application) MissingDocuments() []string {
	return validation.MissingDocuments(validation.RequiredDocuments(a.Employment, a.Personal), a.Documents)
}

type ListFilter struct {
	Status *Status
	UserID string
}

type TransitionParams struct {
	To    Status
	Notes *string
	// ExpectedVersion, when set, must equal the stored version or the call fails with ErrVersionConflict.
	ExpectedVersion *int
	ReviewerID      string
}

// Package payment maps payment provider callbacks onto the application payment axis.
package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
)

const (
	RoutingKeyCompleted = "payment.completed"
	RoutingKeyRefunded  = "payment.refunded"
)

// Event is the message body published by the payment provider.
type Event struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	EventID       string    `json:"eventId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// targetStatus maps a routing key to the payment status it drives.
func targetStatus(routingKey string) (application.PaymentStatus, bool) {
	switch routingKey {
	case RoutingKeyCompleted:
		return application.PaymentPaid, true
	case RoutingKeyRefunded:
		return application.PaymentRefunded, true
	}

	return "", false
}

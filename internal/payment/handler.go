package payment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
)

type Recorder interface {
	RecordPayment(ctx context.Context, id uuid.UUID, to application.PaymentStatus) (*application.Application, error)
}

type Handler struct {
	recorder Recorder
	timeout  time.Duration
}

func NewHandler(recorder Recorder, timeout time.Duration) *Handler {
	return &Handler{recorder: recorder, timeout: timeout}
}

// Bindings returns one handler per routing key. A handler returns false only when the
// message should be redelivered.
func (h *Handler) Bindings() map[string]func([]byte) bool {
	return map[string]func([]byte) bool{
		RoutingKeyCompleted: func(body []byte) bool { return h.handle(RoutingKeyCompleted, body) },
		RoutingKeyRefunded:  func(body []byte) bool { return h.handle(RoutingKeyRefunded, body) },
	}
}

func (h *Handler) handle(routingKey string, body []byte) bool {
	to, ok := targetStatus(routingKey)
	if !ok {
		slog.Error("dropping payment event with unknown routing key", "routing_key", routingKey)
		return true
	}

	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil || ev.ApplicationID == uuid.Nil {
		slog.Error("dropping malformed payment event", "routing_key", routingKey, "error", err)
		return true
	}

	ctx := context.Background()

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	_, err := h.recorder.RecordPayment(ctx, ev.ApplicationID, to)
	if err == nil {
		slog.Info("payment event applied", "application_id", ev.ApplicationID, "event_id", ev.EventID, "payment_status", to)
		return true
	}

	var terr *application.InvalidTransitionError

	switch {
	case errors.Is(err, application.ErrNotFound):
		slog.Error("payment event for unknown application", "application_id", ev.ApplicationID, "event_id", ev.EventID)
		return true
	case errors.As(err, &terr):
		slog.Error("payment event rejected by workflow",
			"application_id", ev.ApplicationID,
			"event_id", ev.EventID,
			"from", terr.From,
			"to", terr.To,
			"reason", terr.Reason,
		)

		return true
	}

	slog.Error("failed to apply payment event, requeueing", "application_id", ev.ApplicationID, "event_id", ev.EventID, "error", err)

	return false
}

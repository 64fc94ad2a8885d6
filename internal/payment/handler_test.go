package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/payment"
)

type recordCall struct {
	id uuid.UUID
	to application.PaymentStatus
}

type stubRecorder struct {
	calls []recordCall
	err   error
}

func (s *stubRecorder) RecordPayment(_ context.Context, id uuid.UUID, to application.PaymentStatus) (*application.Application, error) {
	s.calls = append(s.calls, recordCall{id: id, to: to})
	if s.err != nil {
		return nil, s.err
	}

	return &application.Application{ID: id, PaymentStatus: to}, nil
}

func TestHandler_Bindings(t *testing.T) {
	appID := uuid.New()
	body := []byte(`{"applicationId":"` + appID.String() + `","eventId":"evt-1","occurredAt":"2026-05-01T10:00:00Z"}`)

	type testCase struct {
		name       string
		routingKey string
		body       []byte
		err        error
		wantAck    bool
		wantCalls  []recordCall
	}

	tests := []testCase{
		{
			name:       "CompletedMarksPaid",
			routingKey: payment.RoutingKeyCompleted,
			body:       body,
			wantAck:    true,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentPaid}},
		},
		{
			name:       "RefundedMarksRefunded",
			routingKey: payment.RoutingKeyRefunded,
			body:       body,
			wantAck:    true,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentRefunded}},
		},
		{
			name:       "MalformedBodyIsDropped",
			routingKey: payment.RoutingKeyCompleted,
			body:       []byte(`{not json`),
			wantAck:    true,
		},
		{
			name:       "MissingApplicationIDIsDropped",
			routingKey: payment.RoutingKeyCompleted,
			body:       []byte(`{"eventId":"evt-2"}`),
			wantAck:    true,
		},
		{
			name:       "UnknownApplicationIsDropped",
			routingKey: payment.RoutingKeyCompleted,
			body:       body,
			err:        application.ErrNotFound,
			wantAck:    true,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentPaid}},
		},
		{
			name:       "InvalidTransitionIsDropped",
			routingKey: payment.RoutingKeyRefunded,
			body:       body,
			err:        &application.InvalidTransitionError{Axis: application.AxisPayment, From: "pending", To: "refunded"},
			wantAck:    true,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentRefunded}},
		},
		{
			name:       "TransientFailureIsRequeued",
			routingKey: payment.RoutingKeyCompleted,
			body:       body,
			err:        apperror.NewTransient("updating payment status", errors.New("db down")),
			wantAck:    false,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentPaid}},
		},
		{
			name:       "LostCASIsRequeued",
			routingKey: payment.RoutingKeyCompleted,
			body:       body,
			err:        application.ErrVersionConflict,
			wantAck:    false,
			wantCalls:  []recordCall{{id: appID, to: application.PaymentPaid}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &stubRecorder{err: tt.err}
			bindings := payment.NewHandler(rec, 0).Bindings()

			handler, ok := bindings[tt.routingKey]
			assert.True(t, ok)
			assert.Equal(t, tt.wantAck, handler(tt.body))
			assert.Equal(t, tt.wantCalls, rec.calls)
		})
	}
}

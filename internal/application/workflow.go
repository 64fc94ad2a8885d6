package application

import (
	"strings"
)

var statusEdges = map[Status][]Status{
	StatusSubmitted:           {StatusInReview},
	StatusInReview:            {StatusRecommendationsSent, StatusClosed},
	StatusRecommendationsSent: {StatusClosed},
}

var paymentEdges = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid},
	PaymentPaid:    {PaymentRefunded},
}

// CanTransition reports whether to is a direct successor of from on the status graph.
func CanTransition(from, to Status) bool {
	for _, next := range statusEdges[from] {
		if next == to {
			return true
		}
	}

	return false
}

// NextStatuses returns the statuses reachable in one step from s.
func NextStatuses(s Status) []Status {
	return append([]Status(nil), statusEdges[s]...)
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentEdges[from] {
		if next == to {
			return true
		}
	}

	return false
}

// checkTransition validates moving app to the requested status. hasRecommendation is only
// consulted for recommendations_sent.
func checkTransition(app *Application, to Status, hasRecommendation bool) error {
	from := app.Status

	if !CanTransition(from, to) {
		return &InvalidTransitionError{
			Axis:   AxisStatus,
			From:   string(from),
			To:     string(to),
			Reason: edgeReason(from, to),
		}
	}

	invalid := func(reason string) error {
		return &InvalidTransitionError{Axis: AxisStatus, From: string(from), To: string(to), Reason: reason}
	}

	switch to {
	case StatusInReview:
		if app.PaymentStatus != PaymentPaid {
			return invalid("payment is " + string(app.PaymentStatus) + ", review requires paid")
		}

		if missing := app.MissingDocuments(); len(missing) > 0 {
			return invalid("missing documents: " + strings.Join(missing, ", "))
		}
	case StatusRecommendationsSent:
		if !hasRecommendation {
			return invalid("no recommendation recorded")
		}
	}

	return nil
}

func edgeReason(from, to Status) string {
	switch {
	case !to.Valid():
		return "unknown status"
	case from == to:
		return "already " + string(from)
	case from == StatusClosed:
		return "application is closed"
	case from == StatusSubmitted:
		return "application must pass through in_review first"
	}

	return "not an allowed transition"
}

func checkPaymentTransition(from, to PaymentStatus) error {
	if CanTransitionPayment(from, to) {
		return nil
	}

	reason := "not an allowed transition"
	if to == PaymentRefunded {
		reason = "only a paid application can be refunded"
	}

	return &InvalidTransitionError{Axis: AxisPayment, From: string(from), To: string(to), Reason: reason}
}

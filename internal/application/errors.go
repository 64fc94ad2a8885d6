package application

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrActiveApplication = errors.New("applicant already has an open application")
	ErrDocumentsLocked   = errors.New("documents can no longer change once review has started")
	ErrVersionConflict   = errors.New("application was modified concurrently")
	ErrDraftUnsynced     = errors.New("draft has answers that are not saved yet")
)

// Axis names which state dimension a transition targets.
type Axis string

const (
	AxisStatus  Axis = "status"
	AxisPayment Axis = "payment"
)

// InvalidTransitionError reports a change that is not an edge of the workflow graph
// or whose precondition does not hold. Nothing is written when it is returned.
type InvalidTransitionError struct {
	Axis   Axis
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition %s -> %s: %s", e.Axis, e.From, e.To, e.Reason)
}

// Package apperror holds failure kinds shared by the workflow packages.
package apperror

import (
	"errors"
	"fmt"
)

// Transient reports that a durable store or an external provider could not be reached.
// The operation that returned it can be retried without side effects.
type Transient struct {
	Op  string
	Err error
}

func (e *Transient) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Transient) Unwrap() error {
	return e.Err
}

// NewTransient wraps err as a retryable failure of op.
func NewTransient(op string, err error) error {
	return &Transient{Op: op, Err: err}
}

// IsTransient reports whether err, or anything it wraps, is a Transient failure.
func IsTransient(err error) bool {
	var t *Transient
	return errors.As(err, &t)
}

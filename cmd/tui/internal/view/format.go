package view

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const dbTimeout = 5 * time.Second

// ShortID is the first block of an application ID, enough to tell rows apart on screen.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShortID(t *testing.T) {
	id := uuid.MustParse("3f2b8c1e-0000-4000-8000-000000000001")
	assert.Equal(t, "3f2b8c1e", ShortID(id))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-03-01", FormatDate(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)))
}

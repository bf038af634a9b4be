// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface using the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current time in UTC.
func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}

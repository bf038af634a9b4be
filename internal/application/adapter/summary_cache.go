// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SummaryCache defines a best-effort cache for rendered dashboard summaries.
// Implementations must treat failures as misses; callers never depend on it.
type SummaryCache interface {
	// Get returns the cached payload for the key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Set stores a payload under the key with a TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate removes every cached summary for a user.
	Invalidate(ctx context.Context, userID string) error
}

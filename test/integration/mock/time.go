package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock so scenarios can pin "the current month".
// While unset it follows the real time.
type Clock struct {
	mu     sync.Mutex
	frozen *time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Set freezes the clock at the given instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	frozen := t.UTC()
	c.frozen = &frozen
}

// Reset unfreezes the clock.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = nil
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return time.Now().UTC()
}

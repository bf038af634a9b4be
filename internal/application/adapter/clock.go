// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so "this month" views can be tested
// deterministically.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

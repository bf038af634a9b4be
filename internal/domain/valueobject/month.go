// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"fmt"
	"time"
)

// Month identifies one calendar month. Comparisons are always at month
// granularity; day-of-month and time-of-day never participate.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth creates a Month from a year and a month number (1-12).
func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// MonthOf truncates an instant to the calendar month that contains it.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Key returns the canonical "YYYY-MM" key used for set membership tests.
// Comparing keys avoids comparing time.Time values across timezones.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Next returns the month immediately after m.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the month immediately before m.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return other.Before(m)
}

// InRange reports whether m falls within [start, end], inclusive on both ends.
func (m Month) InRange(start, end Month) bool {
	return !m.Before(start) && !m.After(end)
}

// Bounds returns the first instant (00:00:00.000 of day 1) and the last
// instant (23:59:59.999 of the last day) of the month, in UTC. The pair is
// used for inclusive date-range queries against the store.
func (m Month) Bounds() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// FirstDay returns midnight UTC of the first day of the month, the date
// stamped on materialized recurring transactions.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String implements fmt.Stringer.
func (m Month) String() string {
	return m.Key()
}

package valueobject

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	t.Run("pads year and month", func(t *testing.T) {
		m := NewMonth(2025, time.March)
		if got := m.Key(); got != "2025-03" {
			t.Errorf("expected key 2025-03, got %s", got)
		}
	})

	t.Run("december", func(t *testing.T) {
		m := NewMonth(2024, time.December)
		if got := m.Key(); got != "2024-12" {
			t.Errorf("expected key 2024-12, got %s", got)
		}
	})
}

func TestMonthOf(t *testing.T) {
	t.Run("truncates to containing month", func(t *testing.T) {
		instant := time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC)
		m := MonthOf(instant)
		if m.Year != 2025 || m.Month != time.July {
			t.Errorf("expected 2025-07, got %v", m)
		}
	})
}

func TestMonthNextPrev(t *testing.T) {
	t.Run("next within year", func(t *testing.T) {
		m := NewMonth(2025, time.May).Next()
		if m != NewMonth(2025, time.June) {
			t.Errorf("expected 2025-06, got %v", m)
		}
	})

	t.Run("next wraps year", func(t *testing.T) {
		m := NewMonth(2025, time.December).Next()
		if m != NewMonth(2026, time.January) {
			t.Errorf("expected 2026-01, got %v", m)
		}
	})

	t.Run("prev wraps year", func(t *testing.T) {
		m := NewMonth(2025, time.January).Prev()
		if m != NewMonth(2024, time.December) {
			t.Errorf("expected 2024-12, got %v", m)
		}
	})
}

func TestMonthComparisons(t *testing.T) {
	jan := NewMonth(2025, time.January)
	mar := NewMonth(2025, time.March)
	dec24 := NewMonth(2024, time.December)

	t.Run("before within year", func(t *testing.T) {
		if !jan.Before(mar) {
			t.Error("expected January before March")
		}
		if mar.Before(jan) {
			t.Error("did not expect March before January")
		}
	})

	t.Run("before across years", func(t *testing.T) {
		if !dec24.Before(jan) {
			t.Error("expected 2024-12 before 2025-01")
		}
	})

	t.Run("after mirrors before", func(t *testing.T) {
		if !mar.After(jan) {
			t.Error("expected March after January")
		}
	})

	t.Run("not before itself", func(t *testing.T) {
		if jan.Before(jan) {
			t.Error("a month must not be before itself")
		}
	})
}

func TestMonthInRange(t *testing.T) {
	start := NewMonth(2025, time.February)
	end := NewMonth(2025, time.April)

	t.Run("inclusive on both ends", func(t *testing.T) {
		if !start.InRange(start, end) {
			t.Error("expected start month in range")
		}
		if !end.InRange(start, end) {
			t.Error("expected end month in range")
		}
	})

	t.Run("inside", func(t *testing.T) {
		if !NewMonth(2025, time.March).InRange(start, end) {
			t.Error("expected 2025-03 in range")
		}
	})

	t.Run("outside", func(t *testing.T) {
		if NewMonth(2025, time.January).InRange(start, end) {
			t.Error("did not expect 2025-01 in range")
		}
		if NewMonth(2025, time.May).InRange(start, end) {
			t.Error("did not expect 2025-05 in range")
		}
	})
}

func TestMonthBounds(t *testing.T) {
	t.Run("covers the whole month", func(t *testing.T) {
		start, end := NewMonth(2025, time.November).Bounds()

		expectedStart := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(expectedStart) {
			t.Errorf("expected start %v, got %v", expectedStart, start)
		}

		lastInstant := time.Date(2025, time.November, 30, 23, 59, 59, 0, time.UTC)
		if end.Before(lastInstant) {
			t.Errorf("expected end to include %v, got %v", lastInstant, end)
		}

		december := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		if !end.Before(december) {
			t.Errorf("expected end before December 1st, got %v", end)
		}
	})

	t.Run("february in a leap year", func(t *testing.T) {
		start, end := NewMonth(2024, time.February).Bounds()
		if start.Day() != 1 {
			t.Errorf("expected start on day 1, got %d", start.Day())
		}
		if end.Day() != 29 {
			t.Errorf("expected leap February to end on day 29, got %d", end.Day())
		}
	})
}

func TestMonthFirstDay(t *testing.T) {
	d := NewMonth(2025, time.August).FirstDay()
	expected := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, d)
	}
}

// Package report computes the admin reporting metrics: traffic, financial,
// inventory, customer, sales and product reports over a requested period.
// All computation is an in-memory batch pass over rows fetched for the
// period; nothing here mutates state.
package report

import (
	"time"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// DefaultPeriodDays is the fallback window size when the requested period
// is absent or not a positive number.
const DefaultPeriodDays = 30

// Period is a pair of contiguous, non-overlapping, equal-length half-open
// windows: Current is [now-days, now), Previous the same span before it.
type Period struct {
	Days     int
	Current  entity.TimeRange
	Previous entity.TimeRange
}

// ResolvePeriod builds the current and previous windows ending at now.
// A non-positive days falls back to DefaultPeriodDays; that is policy,
// not an error.
func ResolvePeriod(days int, now time.Time) Period {
	if days <= 0 {
		days = DefaultPeriodDays
	}
	currentStart := now.AddDate(0, 0, -days)
	return Period{
		Days: days,
		Current: entity.TimeRange{
			From: currentStart,
			To:   now,
		},
		Previous: entity.TimeRange{
			From: currentStart.AddDate(0, 0, -days),
			To:   currentStart,
		},
	}
}

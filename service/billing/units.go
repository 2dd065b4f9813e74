// Package billing computes billable periods and document settlements.
package billing

import (
	"math"
	"time"

	"equiprent.GO/model/entity"
)

const (
	weekDays       = 7
	weekGraceDays  = 2
	monthDays      = 30
	monthGraceDays = 5
)

// Units converts elapsed time into billable periods. A rental is never
// billed as zero periods, even same-day; exceeding the grace window into a
// new period rounds up to a full one. Argument order does not matter.
func Units(start, end time.Time, system entity.RentalSystem) int {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int(math.Ceil(elapsed.Hours() / 24))

	period, grace := weekDays, weekGraceDays
	if system == entity.RentalMonthly {
		period, grace = monthDays, monthGraceDays
	}

	full := days / period
	extra := days % period
	units := full
	if extra > grace || full == 0 {
		units++
	}
	return units
}

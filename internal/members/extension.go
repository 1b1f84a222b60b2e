package members

import (
	"errors"
	"time"

	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

// ErrInvalidDuration rejects extensions by fewer than one calendar month.
var ErrInvalidDuration = errors.New("duration must be at least one month")

// ExtendMembership computes a member's new active-until date for a payment of
// durationMonths. The anchor is the later of today and the current
// active-until, so a lapsed membership never receives backdated time and an
// active one stacks its remaining time.
func ExtendMembership(today dbtypes.Date, activeUntil *dbtypes.Date, durationMonths int) (dbtypes.Date, error) {
	if durationMonths < 1 {
		return dbtypes.Date{}, ErrInvalidDuration
	}

	anchor := today
	if activeUntil != nil && activeUntil.After(today) {
		anchor = *activeUntil
	}

	return addMonthsClamped(anchor, durationMonths), nil
}

// addMonthsClamped advances a date by whole calendar months, clamping the day
// of month to the last valid day of the target month. Jan 31 plus one month is
// Feb 28 (or 29 in a leap year), never Mar 3.
func addMonthsClamped(d dbtypes.Date, months int) dbtypes.Date {
	monthIndex := d.Year()*12 + int(d.Month()) - 1 + months
	year := monthIndex / 12
	month := time.Month(monthIndex%12 + 1)

	day := d.Day()
	if last := lastDayOf(year, month); day > last {
		day = last
	}
	return dbtypes.NewDate(year, month, day)
}

func lastDayOf(year int, month time.Month) int {
	// day 0 of the next month normalizes to this month's final day
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

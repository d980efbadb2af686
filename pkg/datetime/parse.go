// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/dxbflip/flipcalc/pkg/constants"
)

const (
	// DateLayout is the format expected for installment dates in deal
	// configs and is also the output date format.
	DateLayout = constants.DateLayout
)

// ParseDate parses an installment date string in the standard layout.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetMonths returns the given time offset by the given number of months.
// Used to project the deal close date from "now" plus the hold duration.
func OffsetMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

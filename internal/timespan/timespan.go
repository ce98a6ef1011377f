package timespan

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Span is an elapsed time broken into calendar units, years down to hours.
type Span struct {
	Years  int
	Months int
	Days   int
	Hours  int
}

// Between computes the span from start to end, anchored at start so that
// month and year lengths are counted on the calendar as of the start
// instant. The result is rounded to the nearest whole hour (half rounds
// up). An end before start yields the zero span. Fails when the two
// instants are so far apart that the duration arithmetic saturates.
func Between(start, end time.Time) (Span, error) {
	if end.Before(start) {
		return Span{}, nil
	}

	d := end.Sub(start)
	if d == math.MaxInt64 {
		return Span{}, fmt.Errorf("timespan: %v and %v are too far apart", start, end)
	}

	// Round the endpoint to the nearest elapsed hour up front so the
	// unit extraction below never leaves a sub-hour remainder to carry.
	if rem := d % time.Hour; rem >= 30*time.Minute {
		end = end.Add(time.Hour - rem)
	} else {
		end = end.Add(-rem)
	}

	var s Span
	anchor := start
	for !anchor.AddDate(1, 0, 0).After(end) {
		anchor = anchor.AddDate(1, 0, 0)
		s.Years++
	}
	for !anchor.AddDate(0, 1, 0).After(end) {
		anchor = anchor.AddDate(0, 1, 0)
		s.Months++
	}
	for !anchor.AddDate(0, 0, 1).After(end) {
		anchor = anchor.AddDate(0, 0, 1)
		s.Days++
	}
	s.Hours = int(end.Sub(anchor) / time.Hour)

	return s, nil
}

// String renders the span in verbose, comma-separated form, e.g.
// "1 year, 4 months, 28 days, 18 hours". Zero units are omitted; the
// all-zero span renders as "0 hours".
func (s Span) String() string {
	parts := make([]string, 0, 4)

	add := func(n int, unit string) {
		switch {
		case n == 1:
			parts = append(parts, "1 "+unit)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}

	add(s.Years, "year")
	add(s.Months, "month")
	add(s.Days, "day")
	add(s.Hours, "hour")

	if len(parts) == 0 {
		return "0 hours"
	}
	return strings.Join(parts, ", ")
}

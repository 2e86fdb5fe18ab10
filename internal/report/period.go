package report

import (
	"fmt"
	"time"
)

// Period selects how wide a feedback report's date window is.
type Period string

const (
	PeriodMonthly    Period = "monthly"
	PeriodSemiAnnual Period = "semi-annually"
	PeriodAnnual     Period = "annually"
)

// DateWindow is an inclusive [Start, End] range. When Unbounded is true
// the window places no date restriction and Start/End are zero.
type DateWindow struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	if w.Unbounded {
		return true
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow computes the inclusive date window for a period selection.
// Month is 1-12 and only consulted for monthly and semi-annual periods.
// An unrecognized period yields an unbounded window rather than an error.
func ResolveWindow(period Period, month, year int) DateWindow {
	switch period {
	case PeriodMonthly:
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		// Day 0 of the next month is the last day of this one, which
		// handles 28-31 day months and leap Februaries.
		end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999000000, time.UTC)
		return DateWindow{Start: start, End: end}
	case PeriodSemiAnnual:
		if month <= 6 {
			return DateWindow{
				Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(year, time.June, 30, 23, 59, 59, 999000000, time.UTC),
			}
		}
		return DateWindow{
			Start: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 23, 59, 59, 999000000, time.UTC),
		}
	case PeriodAnnual:
		return DateWindow{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 23, 59, 59, 999000000, time.UTC),
		}
	default:
		return DateWindow{Unbounded: true}
	}
}

// WindowLabel renders the human-readable heading for a period selection,
// e.g. "March 2024", "July - December 2024", "Year 2023".
func WindowLabel(period Period, month, year int) string {
	switch period {
	case PeriodMonthly:
		return fmt.Sprintf("%s %d", time.Month(month).String(), year)
	case PeriodSemiAnnual:
		if month <= 6 {
			return fmt.Sprintf("January - June %d", year)
		}
		return fmt.Sprintf("July - December %d", year)
	case PeriodAnnual:
		return fmt.Sprintf("Year %d", year)
	default:
		return "All Time"
	}
}

package report

import (
	"testing"
	"time"
)

func TestResolveWindowMonthly(t *testing.T) {
	cases := []struct {
		month   int
		year    int
		lastDay int
	}{
		{1, 2024, 31},
		{2, 2024, 29},
		{2, 2023, 28},
		{4, 2024, 30},
		{12, 2024, 31},
	}

	for _, tc := range cases {
		w := ResolveWindow(PeriodMonthly, tc.month, tc.year)
		if w.Unbounded {
			t.Fatalf("monthly window %d/%d unexpectedly unbounded", tc.month, tc.year)
		}
		wantStart := time.Date(tc.year, time.Month(tc.month), 1, 0, 0, 0, 0, time.UTC)
		if !w.Start.Equal(wantStart) {
			t.Errorf("month %d/%d start = %v, want %v", tc.month, tc.year, w.Start, wantStart)
		}
		if w.End.Day() != tc.lastDay || w.End.Month() != time.Month(tc.month) {
			t.Errorf("month %d/%d end = %v, want last day %d", tc.month, tc.year, w.End, tc.lastDay)
		}
		if w.End.Before(w.Start) {
			t.Errorf("month %d/%d end before start", tc.month, tc.year)
		}
		if h, m, s := w.End.Clock(); h != 23 || m != 59 || s != 59 {
			t.Errorf("month %d/%d end clock = %02d:%02d:%02d", tc.month, tc.year, h, m, s)
		}
	}
}

func TestResolveWindowSemiAnnualFirstHalf(t *testing.T) {
	w := ResolveWindow(PeriodSemiAnnual, 3, 2024)
	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.June, 30, 23, 59, 59, 999000000, time.UTC)

	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestResolveWindowSemiAnnualSecondHalf(t *testing.T) {
	w := ResolveWindow(PeriodSemiAnnual, 9, 2024)
	wantStart := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.December, 31, 23, 59, 59, 999000000, time.UTC)

	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestResolveWindowAnnual(t *testing.T) {
	w := ResolveWindow(PeriodAnnual, 6, 2023)
	wantStart := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2023, time.December, 31, 23, 59, 59, 999000000, time.UTC)

	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestResolveWindowUnknownPeriod(t *testing.T) {
	w := ResolveWindow(Period("weekly"), 3, 2024)
	if !w.Unbounded {
		t.Fatal("unknown period should resolve to an unbounded window")
	}
	if !w.Contains(time.Date(1999, time.May, 5, 0, 0, 0, 0, time.UTC)) {
		t.Error("unbounded window should contain everything")
	}
}

func TestWindowContainsBoundaries(t *testing.T) {
	w := ResolveWindow(PeriodMonthly, 6, 2024)
	if !w.Contains(w.Start) {
		t.Error("window should include its start instant")
	}
	if !w.Contains(w.End) {
		t.Error("window should include its end instant")
	}
	if w.Contains(w.Start.Add(-time.Millisecond)) {
		t.Error("window should not include an instant before start")
	}
	if w.Contains(w.End.Add(time.Millisecond)) {
		t.Error("window should not include an instant after end")
	}
}

func TestWindowLabel(t *testing.T) {
	cases := []struct {
		period Period
		month  int
		year   int
		want   string
	}{
		{PeriodMonthly, 3, 2024, "March 2024"},
		{PeriodSemiAnnual, 3, 2024, "January - June 2024"},
		{PeriodSemiAnnual, 9, 2024, "July - December 2024"},
		{PeriodAnnual, 1, 2023, "Year 2023"},
		{Period(""), 0, 0, "All Time"},
	}

	for _, tc := range cases {
		if got := WindowLabel(tc.period, tc.month, tc.year); got != tc.want {
			t.Errorf("WindowLabel(%q, %d, %d) = %q, want %q", tc.period, tc.month, tc.year, got, tc.want)
		}
	}
}

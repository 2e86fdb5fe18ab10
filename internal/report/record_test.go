package report

import (
	"testing"
	"time"
)

func TestFilterWindowExcludesUnparsedFromBoundedWindows(t *testing.T) {
	window := ResolveWindow(PeriodMonthly, 3, 2024)
	records := []Record{
		{ID: "in", CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), HasCreated: true},
		{ID: "out", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), HasCreated: true},
		{ID: "garbled", RawCreated: "not-a-date"},
	}

	got := FilterWindow(records, window)
	if len(got) != 1 || got[0].ID != "in" {
		t.Fatalf("filtered = %v, want only the in-window record", got)
	}
}

func TestFilterWindowUnboundedKeepsEverything(t *testing.T) {
	records := []Record{
		{ID: "a", HasCreated: true, CreatedAt: time.Now()},
		{ID: "b", RawCreated: "garbled"},
	}

	got := FilterWindow(records, DateWindow{Unbounded: true})
	if len(got) != 2 {
		t.Fatalf("filtered = %d records, want 2", len(got))
	}
}

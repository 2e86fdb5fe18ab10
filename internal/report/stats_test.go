package report

import (
	"reflect"
	"testing"
)

func ratedRecords(ratings ...int) []Record {
	records := make([]Record, 0, len(ratings))
	for _, rating := range ratings {
		records = append(records, Record{ServiceName: "Transcript Request", Rating: rating})
	}
	return records
}

func TestAggregateExcludesOutOfRangeRatings(t *testing.T) {
	stats := Aggregate(ratedRecords(5, 5, 4, 0, 6))

	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.AverageRating != 4.67 {
		t.Errorf("average = %v, want 4.67", stats.AverageRating)
	}
	wantHist := map[int]int{4: 1, 5: 2}
	if !reflect.DeepEqual(stats.RatingHistogram, wantHist) {
		t.Errorf("histogram = %v, want %v", stats.RatingHistogram, wantHist)
	}
	if stats.ServiceCounts["Transcript Request"] != 3 {
		t.Errorf("service count = %d, want 3", stats.ServiceCounts["Transcript Request"])
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil)

	if stats.Total != 0 {
		t.Errorf("total = %d, want 0", stats.Total)
	}
	if stats.AverageRating != 0 {
		t.Errorf("average = %v, want 0", stats.AverageRating)
	}
	if len(stats.RatingHistogram) != 0 || len(stats.ServiceCounts) != 0 {
		t.Error("maps should be empty")
	}
}

func TestAggregateUnknownServiceBucket(t *testing.T) {
	stats := Aggregate([]Record{
		{Rating: 4},
		{ServiceName: "Dorm Application", Rating: 3},
	})

	if stats.ServiceCounts[UnknownService] != 1 {
		t.Errorf("unknown bucket = %d, want 1", stats.ServiceCounts[UnknownService])
	}
	if stats.ServiceCounts["Dorm Application"] != 1 {
		t.Errorf("named bucket = %d, want 1", stats.ServiceCounts["Dorm Application"])
	}
}

func TestAggregateInvariants(t *testing.T) {
	records := []Record{
		{ServiceName: "A", Rating: 1},
		{ServiceName: "A", Rating: 5},
		{ServiceName: "B", Rating: 3},
		{Rating: 2},
		{ServiceName: "C", Rating: 9},
	}
	stats := Aggregate(records)

	histSum := 0
	for _, n := range stats.RatingHistogram {
		histSum += n
	}
	svcSum := 0
	for _, n := range stats.ServiceCounts {
		svcSum += n
	}

	if histSum != stats.Total {
		t.Errorf("histogram sum %d != total %d", histSum, stats.Total)
	}
	if svcSum != stats.Total {
		t.Errorf("service sum %d != total %d", svcSum, stats.Total)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records := ratedRecords(1, 2, 3, 4, 5, 5)

	first := Aggregate(records)
	second := Aggregate(records)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregate not idempotent: %v vs %v", first, second)
	}
}

package report

import "math"

// UnknownService buckets valid records that carry no service name.
const UnknownService = "Unknown"

// Statistics summarizes a window-filtered record set. Records whose
// rating falls outside 1-5 are invisible here even though raw listings
// still show them.
type Statistics struct {
	Total           int            `json:"total"`
	AverageRating   float64        `json:"average_rating"`
	ServiceCounts   map[string]int `json:"service_counts"`
	RatingHistogram map[int]int    `json:"rating_histogram"`
}

// Aggregate computes report statistics over an already-filtered record
// set. Pure: the input is only read, and the same input always yields
// the same output.
func Aggregate(records []Record) Statistics {
	stats := Statistics{
		ServiceCounts:   make(map[string]int),
		RatingHistogram: make(map[int]int),
	}

	sum := 0
	for _, rec := range records {
		if rec.Rating < 1 || rec.Rating > 5 {
			continue
		}
		stats.Total++
		sum += rec.Rating

		name := rec.ServiceName
		if name == "" {
			name = UnknownService
		}
		stats.ServiceCounts[name]++

		bucket := rec.Rating
		if bucket < 1 {
			bucket = 1
		} else if bucket > 5 {
			bucket = 5
		}
		stats.RatingHistogram[bucket]++
	}

	if stats.Total > 0 {
		avg := float64(sum) / float64(stats.Total)
		stats.AverageRating = math.Round(avg*100) / 100
	}
	return stats
}

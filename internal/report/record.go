package report

import (
	"time"

	feedbackdomain "github.com/uniguide/uniguide/internal/feedback/domain"
)

// Record is the reporting view of a feedback row: an immutable snapshot,
// never written back. CreatedAt holds the parsed instant when the raw
// timestamp was readable.
type Record struct {
	ID          string
	UserEmail   *string
	ServiceName string
	StepNumber  *int
	Rating      int
	Comment     string
	RawCreated  string
	CreatedAt   time.Time
	HasCreated  bool
}

// FromFeedback converts a stored feedback row, parsing its raw timestamp.
func FromFeedback(f feedbackdomain.Feedback) Record {
	rec := Record{
		ID:          f.ID.String(),
		UserEmail:   f.UserEmail,
		ServiceName: f.ServiceName,
		StepNumber:  f.StepNumber,
		Rating:      f.Rating,
		Comment:     f.Comment,
		RawCreated:  f.CreatedAt,
	}
	if t, ok := ParseTimestamp(f.CreatedAt); ok {
		rec.CreatedAt = t
		rec.HasCreated = true
	}
	return rec
}

// FilterWindow keeps records whose parsed timestamp falls inside the
// window. Records with unreadable timestamps are excluded from bounded
// windows but kept when the window is unbounded.
func FilterWindow(records []Record, window DateWindow) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if window.Unbounded {
			out = append(out, rec)
			continue
		}
		if rec.HasCreated && window.Contains(rec.CreatedAt) {
			out = append(out, rec)
		}
	}
	return out
}

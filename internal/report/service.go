package report

import (
	"context"
	"errors"
	"io"
)

// ErrBusy signals that a generation request arrived while another was
// still in flight. One report renders at a time.
var ErrBusy = errors.New("report_busy")

// Request selects the record set a stats or report operation runs over.
type Request struct {
	Period    Period
	Month     int
	Year      int
	ServiceID string
}

// StatsResult pairs aggregated statistics with the window they cover.
type StatsResult struct {
	PeriodLabel string     `json:"period_label"`
	Window      DateWindow `json:"-"`
	Statistics  Statistics `json:"statistics"`
}

// Artifact is a rendered report ready for download.
type Artifact struct {
	Filename string
	Content  []byte
}

// Service produces feedback statistics and downloadable reports.
type Service interface {
	Stats(ctx context.Context, req Request) (StatsResult, error)
	Generate(ctx context.Context, req Request) (Artifact, error)
}

// Renderer draws a computed layout into a document. Implemented by the
// PDF provider; kept as an interface so layout tests need no PDF backend.
type Renderer interface {
	Render(ctx context.Context, layout Layout) (io.Reader, error)
}

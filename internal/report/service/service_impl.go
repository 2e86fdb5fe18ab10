package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/uniguide/uniguide/internal/config"
	feedbackdomain "github.com/uniguide/uniguide/internal/feedback/domain"
	"github.com/uniguide/uniguide/internal/observability/metrics"
	"github.com/uniguide/uniguide/internal/report"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   config.Config
	Feedback feedbackdomain.Service
	Renderer report.Renderer
	Metrics  *metrics.HTTPMetrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	rowCap   int
	feedback feedbackdomain.Service
	renderer report.Renderer
	metrics  *metrics.HTTPMetrics

	// busy serializes generation: a second request while one is in
	// flight is rejected with ErrBusy rather than queued.
	busy sync.Mutex
}

func New(p Params) report.Service {
	return &Service{
		log:      p.Log.Named("report.service"),
		rowCap:   p.Config.Report.DetailRowCap,
		feedback: p.Feedback,
		renderer: p.Renderer,
		metrics:  p.Metrics,
	}
}

func (s *Service) Stats(ctx context.Context, req report.Request) (report.StatsResult, error) {
	records, window, label, err := s.snapshot(ctx, req)
	if err != nil {
		return report.StatsResult{}, err
	}

	return report.StatsResult{
		PeriodLabel: label,
		Window:      window,
		Statistics:  report.Aggregate(records),
	}, nil
}

func (s *Service) Generate(ctx context.Context, req report.Request) (artifact report.Artifact, err error) {
	if !s.busy.TryLock() {
		return report.Artifact{}, report.ErrBusy
	}
	defer s.busy.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("report generation panicked", zap.Any("panic", r))
			s.metrics.RecordReport("panic")
			err = fmt.Errorf("report generation failed: %v", r)
		}
	}()

	records, _, label, err := s.snapshot(ctx, req)
	if err != nil {
		s.metrics.RecordReport("error")
		return report.Artifact{}, err
	}

	stats := report.Aggregate(records)
	layout, err := report.BuildLayout(stats, records, label, s.rowCap)
	if err != nil {
		s.metrics.RecordReport("empty")
		return report.Artifact{}, err
	}

	reader, err := s.renderer.Render(ctx, layout)
	if err != nil {
		s.metrics.RecordReport("error")
		return report.Artifact{}, err
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		s.metrics.RecordReport("error")
		return report.Artifact{}, err
	}

	s.metrics.RecordReport("ok")
	s.log.Info("report generated",
		zap.String("period", label),
		zap.Int("records", len(records)),
		zap.Int("bytes", len(content)),
	)

	return report.Artifact{
		Filename: Filename(label, time.Now()),
		Content:  content,
	}, nil
}

// snapshot fetches the raw rows, resolves the window and returns the
// window-filtered record set.
func (s *Service) snapshot(ctx context.Context, req report.Request) ([]report.Record, report.DateWindow, string, error) {
	rows, err := s.feedback.ListAll(ctx, req.ServiceID)
	if err != nil {
		return nil, report.DateWindow{}, "", err
	}

	records := make([]report.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, report.FromFeedback(row))
	}

	window := report.ResolveWindow(req.Period, req.Month, req.Year)
	label := report.WindowLabel(req.Period, req.Month, req.Year)
	return report.FilterWindow(records, window), window, label, nil
}

// Filename builds the deterministic download name, e.g.
// "Feedback_Report_March_2024_1717171717000.pdf".
func Filename(periodLabel string, now time.Time) string {
	label := strings.ReplaceAll(periodLabel, " ", "_")
	return fmt.Sprintf("Feedback_Report_%s_%d.pdf", label, now.UnixMilli())
}

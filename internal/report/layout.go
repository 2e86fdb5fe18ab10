package report

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoRecords signals that generation was refused because the filtered
// record set is empty. Surfaced to the user as a warning, not a failure.
var ErrNoRecords = errors.New("no_records")

const (
	// Column character budgets for the detail table.
	emailColChars   = 26
	serviceMaxChars = 28
	commentMaxChars = 48

	// Line units available for detail rows on one page, after the
	// redrawn column header.
	detailPageLines = 18
	headerLines     = 2

	// DefaultDetailRowCap bounds the detail table when the caller does
	// not supply a cap.
	DefaultDetailRowCap = 25
)

// Layout is the fully computed document: the render step only draws it.
// Splitting layout from drawing keeps pagination testable without a PDF
// backend.
type Layout struct {
	Title       string
	PeriodLabel string
	Summary     SummarySection
	DetailPages []DetailPage
	OmittedNote string
}

type SummarySection struct {
	Bullets       []string
	Distribution  []string
	ServiceCounts []string
}

// DetailPage holds the rows that fit on one physical page. The column
// header is redrawn at the top of every page.
type DetailPage struct {
	Rows []DetailRow
}

type DetailRow struct {
	Index      int
	EmailLines []string
	Service    string
	Step       string
	Rating     string
	Date       string
	Comment    string
	// Height is the row's vertical advance in line units: the larger
	// of one and the wrapped-email line count.
	Height int
}

// BuildLayout computes the complete page layout for a feedback report.
// rowCap bounds the detail table; values below one fall back to
// DefaultDetailRowCap. Refuses empty input with ErrNoRecords.
func BuildLayout(stats Statistics, records []Record, periodLabel string, rowCap int) (Layout, error) {
	if len(records) == 0 {
		return Layout{}, ErrNoRecords
	}
	if rowCap < 1 {
		rowCap = DefaultDetailRowCap
	}

	layout := Layout{
		Title:       "Feedback Report",
		PeriodLabel: periodLabel,
		Summary:     buildSummary(stats, periodLabel),
	}

	capped := records
	if len(capped) > rowCap {
		capped = capped[:rowCap]
		layout.OmittedNote = fmt.Sprintf("%d additional records omitted from this report.", len(records)-rowCap)
	}

	cursor := headerLines
	page := DetailPage{}
	for i, rec := range capped {
		row := buildDetailRow(i+1, rec)
		if cursor+row.Height > detailPageLines && len(page.Rows) > 0 {
			layout.DetailPages = append(layout.DetailPages, page)
			page = DetailPage{}
			cursor = headerLines
		}
		page.Rows = append(page.Rows, row)
		cursor += row.Height
	}
	if len(page.Rows) > 0 {
		layout.DetailPages = append(layout.DetailPages, page)
	}

	return layout, nil
}

func buildSummary(stats Statistics, periodLabel string) SummarySection {
	summary := SummarySection{
		Bullets: []string{
			fmt.Sprintf("Period: %s", periodLabel),
			fmt.Sprintf("Total feedback received: %d", stats.Total),
			fmt.Sprintf("Average rating: %.2f / 5", stats.AverageRating),
		},
	}

	for rating := 5; rating >= 1; rating-- {
		count := stats.RatingHistogram[rating]
		percent := 0.0
		if stats.Total > 0 {
			percent = float64(count) / float64(stats.Total) * 100
		}
		summary.Distribution = append(summary.Distribution,
			fmt.Sprintf("%d stars: %d (%.1f%%)", rating, count, percent))
	}

	names := make([]string, 0, len(stats.ServiceCounts))
	for name := range stats.ServiceCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		summary.ServiceCounts = append(summary.ServiceCounts,
			fmt.Sprintf("%s: %d", name, stats.ServiceCounts[name]))
	}

	return summary
}

func buildDetailRow(index int, rec Record) DetailRow {
	email := "Anonymous"
	if rec.UserEmail != nil && *rec.UserEmail != "" {
		email = *rec.UserEmail
	}

	step := "-"
	if rec.StepNumber != nil {
		step = fmt.Sprintf("Step %d", *rec.StepNumber)
	}

	date := rec.RawCreated
	if rec.HasCreated {
		date = rec.CreatedAt.Format("Jan 02, 2006 15:04")
	}

	row := DetailRow{
		Index:      index,
		EmailLines: wrapHard(email, emailColChars),
		Service:    truncate(rec.ServiceName, serviceMaxChars),
		Step:       step,
		Rating:     fmt.Sprintf("%d/5", rec.Rating),
		Date:       date,
		Comment:    truncate(rec.Comment, commentMaxChars),
	}
	row.Height = len(row.EmailLines)
	if row.Height < 1 {
		row.Height = 1
	}
	return row
}

// wrapHard splits s into width-sized chunks. Emails have no natural
// break points, so the wrap is a hard character split.
func wrapHard(s string, width int) []string {
	if width < 1 || len(s) <= width {
		return []string{s}
	}
	var lines []string
	runes := []rune(s)
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

package pdf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniguide/uniguide/internal/report"
)

func sampleLayout() report.Layout {
	row := func(index int) report.DetailRow {
		return report.DetailRow{
			Index:      index,
			EmailLines: []string{"student@campus.edu"},
			Service:    "Transcript Request",
			Step:       "Step 1",
			Rating:     "4/5",
			Date:       "Mar 05, 2024 10:30",
			Comment:    "clear instructions",
			Height:     2,
		}
	}
	return report.Layout{
		Title:       "Feedback Report",
		PeriodLabel: "March 2024",
		Summary: report.SummarySection{
			Bullets:       []string{"Total feedback received: 3", "Average rating: 4.00 / 5"},
			Distribution:  []string{"4 stars: 3 (100.0%)"},
			ServiceCounts: []string{"Transcript Request: 3"},
		},
		DetailPages: []report.DetailPage{
			{Rows: []report.DetailRow{row(1), row(2)}},
			{Rows: []report.DetailRow{row(3)}},
		},
		OmittedNote: "2 additional records omitted from this report.",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	reader, err := New().Render(context.Background(), sampleLayout())
	assert.NoError(t, err)

	content, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestRenderEmitsOnePagePerLayoutPage(t *testing.T) {
	layout := sampleLayout()

	reader, err := New().Render(context.Background(), layout)
	assert.NoError(t, err)

	content, err := io.ReadAll(reader)
	assert.NoError(t, err)

	// One summary page plus one PDF page per detail page. Page objects
	// appear uncompressed in the cross-reference section, so the dictionary
	// count is stable; "/Type /Pages" is the tree node, not a page.
	doc := string(content)
	pages := strings.Count(doc, "/Type /Page") - strings.Count(doc, "/Type /Pages")
	assert.Equal(t, 1+len(layout.DetailPages), pages)
}

func TestRenderSummaryOnlyLayout(t *testing.T) {
	layout := sampleLayout()
	layout.DetailPages = nil
	layout.OmittedNote = ""

	reader, err := New().Render(context.Background(), layout)
	assert.NoError(t, err)

	content, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.NotEmpty(t, content)
}

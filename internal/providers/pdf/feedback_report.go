package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/uniguide/uniguide/internal/report"
)

type PDFRenderer struct{}

func New() report.Renderer {
	return &PDFRenderer{}
}

// Render draws a computed report layout into a landscape PDF. Page
// numbering uses maroto's two-pass "{current} of {total}" stamping so
// totals are correct once full layout is known.
func (p *PDFRenderer) Render(ctx context.Context, layout report.Layout) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(row.New(6).Add(
		text.NewCol(12, "Confidential - for internal university use only", props.Text{
			Size:  7,
			Align: align.Left,
		}),
	)); err != nil {
		return nil, err
	}

	m.AddPages(summaryPage(layout))
	for i, detail := range layout.DetailPages {
		m.AddPages(detailPage(layout, detail, i == len(layout.DetailPages)-1))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func summaryPage(layout report.Layout) core.Page {
	pg := page.New()

	pg.Add(row.New(14).Add(
		text.NewCol(12, layout.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	))
	pg.Add(row.New(8).Add(
		text.NewCol(12, layout.PeriodLabel, props.Text{
			Size:  12,
			Align: align.Left,
		}),
	))

	pg.Add(sectionHeading("Summary"))
	for _, line := range layout.Summary.Bullets {
		pg.Add(summaryLine("- " + line))
	}

	pg.Add(sectionHeading("Rating Distribution"))
	for _, line := range layout.Summary.Distribution {
		pg.Add(summaryLine(line))
	}

	pg.Add(sectionHeading("Feedback per Service"))
	for _, line := range layout.Summary.ServiceCounts {
		pg.Add(summaryLine(line))
	}

	return pg
}

func detailPage(layout report.Layout, detail report.DetailPage, last bool) core.Page {
	pg := page.New()

	pg.Add(row.New(10).Add(
		text.NewCol(12, "Detailed Records", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		}),
	))
	pg.Add(detailHeader())

	for _, rec := range detail.Rows {
		height := float64(rec.Height) * 5
		emailCol := col.New(3)
		for i, line := range rec.EmailLines {
			emailCol.Add(text.New(line, props.Text{Size: 8, Top: float64(i) * 4}))
		}
		pg.Add(row.New(height).Add(
			text.NewCol(1, fmt.Sprintf("%d", rec.Index), props.Text{Size: 8}),
			emailCol,
			text.NewCol(2, rec.Service, props.Text{Size: 8}),
			text.NewCol(1, rec.Step, props.Text{Size: 8}),
			text.NewCol(1, rec.Rating, props.Text{Size: 8, Align: align.Center}),
			text.NewCol(2, rec.Date, props.Text{Size: 8}),
			text.NewCol(2, rec.Comment, props.Text{Size: 8}),
		))
	}

	if last && layout.OmittedNote != "" {
		pg.Add(row.New(8).Add(
			text.NewCol(12, layout.OmittedNote, props.Text{
				Size:  8,
				Style: fontstyle.Italic,
			}),
		))
	}

	return pg
}

func sectionHeading(title string) core.Row {
	return row.New(9).Add(
		text.NewCol(12, title, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Top:   2,
		}),
	)
}

func summaryLine(line string) core.Row {
	return row.New(6).Add(
		text.NewCol(12, line, props.Text{Size: 9}),
	)
}

func detailHeader() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold}
	return row.New(7).Add(
		text.NewCol(1, "#", header),
		text.NewCol(3, "User", header),
		text.NewCol(2, "Service", header),
		text.NewCol(1, "Step", header),
		text.NewCol(1, "Rating", header),
		text.NewCol(2, "Date", header),
		text.NewCol(2, "Comment", header),
	)
}

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uniguide/uniguide/internal/report"
)

func (s *Server) FeedbackStats(c *gin.Context) {
	req, err := reportRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.reportSvc.Stats(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FeedbackReport streams the rendered PDF as an attachment.
func (s *Server) FeedbackReport(c *gin.Context) {
	req, err := reportRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	artifact, err := s.reportSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", artifact.Content)
}

func reportRequest(c *gin.Context) (report.Request, error) {
	period := report.Period(strings.TrimSpace(c.Query("type")))
	month := parseIntParam(c.Query("month"), 0)
	year := parseIntParam(c.Query("year"), 0)

	switch period {
	case report.PeriodMonthly, report.PeriodSemiAnnual:
		if month < 1 || month > 12 {
			return report.Request{}, newValidationError("month", "invalid_month", "month must be 1-12")
		}
		if year < 1000 || year > 9999 {
			return report.Request{}, newValidationError("year", "invalid_year", "year must be four digits")
		}
	case report.PeriodAnnual:
		if year < 1000 || year > 9999 {
			return report.Request{}, newValidationError("year", "invalid_year", "year must be four digits")
		}
	}

	return report.Request{
		Period:    period,
		Month:     month,
		Year:      year,
		ServiceID: c.Query("service_id"),
	}, nil
}

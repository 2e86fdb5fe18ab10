package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedbackdomain "github.com/uniguide/uniguide/internal/feedback/domain"
)

type SubmitFeedbackRequest struct {
	ServiceID  string `json:"service_id"`
	StepNumber *int   `json:"step_number"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Anonymous  bool   `json:"anonymous"`
}

func (s *Server) SubmitFeedback(c *gin.Context) {
	claims, ok := s.claimsFromContext(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	submit := feedbackdomain.SubmitRequest{
		ServiceID:  req.ServiceID,
		StepNumber: req.StepNumber,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if !req.Anonymous {
		submit.UserID = claims.UserID
		submit.UserEmail = claims.Email
	}

	feedback, err := s.feedbackSvc.Submit(c.Request.Context(), submit)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback is the public per-service view. It returns rows as stored,
// including out-of-range ratings.
func (s *Server) ListFeedback(c *gin.Context) {
	rows, err := s.feedbackSvc.List(c.Request.Context(), feedbackdomain.ListRequest{
		ServiceID: c.Query("service_id"),
		StepID:    c.Query("step"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": rows})
}

func (s *Server) AdminListFeedback(c *gin.Context) {
	rows, err := s.feedbackSvc.ListAll(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": rows})
}

func (s *Server) DeleteFeedback(c *gin.Context) {
	if err := s.feedbackSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

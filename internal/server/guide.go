package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	guidedomain "github.com/uniguide/uniguide/internal/guide/domain"
)

type StepInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CreateServiceRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VideoURL    string      `json:"video_url"`
	Steps       []StepInput `json:"steps"`
}

type UpdateServiceRequest struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	VideoURL    *string     `json:"video_url"`
	Steps       []StepInput `json:"steps"`
}

func (s *Server) ListServices(c *gin.Context) {
	resp, err := s.guideSvc.List(c.Request.Context(), guidedomain.ListServicesRequest{
		PageToken: c.Query("page_token"),
		PageSize:  parsePageSize(c.Query("page_size")),
		Name:      c.Query("name"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetServiceByID(c *gin.Context) {
	service, err := s.guideSvc.GetByID(c.Request.Context(), guidedomain.GetServiceRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (s *Server) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	service, err := s.guideSvc.Create(c.Request.Context(), guidedomain.CreateServiceRequest{
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Steps:       stepInputs(req.Steps),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (s *Server) UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	service, err := s.guideSvc.Update(c.Request.Context(), guidedomain.UpdateServiceRequest{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Steps:       stepInputs(req.Steps),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (s *Server) DeleteService(c *gin.Context) {
	if err := s.guideSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func stepInputs(steps []StepInput) []guidedomain.StepInput {
	if steps == nil {
		return nil
	}
	out := make([]guidedomain.StepInput, 0, len(steps))
	for _, step := range steps {
		out = append(out, guidedomain.StepInput{Title: step.Title, Body: step.Body})
	}
	return out
}

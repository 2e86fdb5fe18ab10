package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	carouseldomain "github.com/uniguide/uniguide/internal/carousel/domain"
)

type CreateCarouselImageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

type UpdateCarouselImageRequest struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"image_url"`
	Position *int    `json:"position"`
}

func (s *Server) ListCarouselImages(c *gin.Context) {
	images, err := s.carouselSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (s *Server) CreateCarouselImage(c *gin.Context) {
	var req CreateCarouselImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	image, err := s.carouselSvc.Create(c.Request.Context(), carouseldomain.CreateImageRequest{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Position: req.Position,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (s *Server) UpdateCarouselImage(c *gin.Context) {
	var req UpdateCarouselImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	image, err := s.carouselSvc.Update(c.Request.Context(), carouseldomain.UpdateImageRequest{
		ID:       c.Param("id"),
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Position: req.Position,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (s *Server) DeleteCarouselImage(c *gin.Context) {
	if err := s.carouselSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

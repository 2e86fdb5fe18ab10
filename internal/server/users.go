package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) ListUsers(c *gin.Context) {
	resp, err := s.authsvc.ListUsers(c.Request.Context(), authdomain.ListUsersRequest{
		PageToken: c.Query("page_token"),
		PageSize:  parsePageSize(c.Query("page_size")),
		Email:     c.Query("email"),
		Role:      c.Query("role"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateUserRole(c *gin.Context) {
	userID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid user id"))
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if !authdomain.ValidRole(req.Role) {
		AbortWithError(c, newValidationError("role", "invalid_role", "role must be admin or user"))
		return
	}

	if claims, ok := s.claimsFromContext(c); ok && claims.UserID == userID {
		AbortWithError(c, newValidationError("id", "own_role", "cannot change your own role"))
		return
	}

	user, err := s.authsvc.UpdateRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(user))
}

func (s *Server) DeleteUser(c *gin.Context) {
	userID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid user id"))
		return
	}

	if claims, ok := s.claimsFromContext(c); ok && claims.UserID == userID {
		AbortWithError(c, newValidationError("id", "own_account", "cannot delete your own account"))
		return
	}

	if err := s.authsvc.DeleteUser(c.Request.Context(), userID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/middleware"
)

// ownerID returns the authenticated owner's identifier, or "" when the
// request is anonymous (soft-auth routes).
func ownerID(c *gin.Context) string {
	return c.GetString(middleware.ContextOwnerID)
}

// requireOwner answers 401 and returns false when the request carries no
// owner identity. Used by write handlers on soft-auth routes.
func requireOwner(c *gin.Context) (string, bool) {
	owner := ownerID(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User must be logged in."})
		return "", false
	}
	return owner, true
}

// respondError maps service errors to HTTP responses. Unexpected failures
// become a generic 500; their detail has already been logged with owner and
// collection context by the service layer and never crosses the boundary.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
	}
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/models"
)

// SocialHandler serves the social-profiles endpoints. The platform catalog is
// static until per-platform OAuth connections are built.
type SocialHandler struct{}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler() *SocialHandler {
	return &SocialHandler{}
}

// List handles GET /social-profiles.
func (h *SocialHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.SocialPlatforms())
}

// Connect handles POST /social-profiles/connect. The OAuth flow does not
// exist yet; this acknowledges the request so clients can show progress.
func (h *SocialHandler) Connect(c *gin.Context) {
	_, ok := requireOwner(c)
	if !ok {
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ConnectResponse{
		Title:   "Coming Soon!",
		Message: fmt.Sprintf("Connecting with %s is under development.", req.Platform),
	})
}

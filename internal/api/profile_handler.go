package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/models"
)

// ProfileHandler serves the profile and users endpoints, both of which
// operate on the per-owner root document.
type ProfileHandler struct {
	service core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service core.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// UpdateProfile handles POST /profile: partial merge of name and emails.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var fields models.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	rec, err := h.service.Update(c.Request.Context(), owner, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetProfile handles GET /profile/:id. The profile is created from the
// identity provider's record when nothing is stored yet.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	rec, err := h.service.GetByID(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateContact handles POST /users: merges the phone number into the
// caller's profile document.
func (h *ProfileHandler) UpdateContact(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	rec, err := h.service.UpdateContact(c.Request.Context(), owner, req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GetUser handles GET /users/:id. Unlike GetProfile, absence is a plain 404.
func (h *ProfileHandler) GetUser(c *gin.Context) {
	rec, err := h.service.GetStored(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

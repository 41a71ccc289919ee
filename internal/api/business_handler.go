package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/models"
)

// BusinessHandler serves the businesses endpoints.
type BusinessHandler struct {
	service core.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(service core.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// List handles GET /businesses: every business created by the caller.
func (h *BusinessHandler) List(c *gin.Context) {
	records, err := h.service.ListByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Create handles POST /businesses.
func (h *BusinessHandler) Create(c *gin.Context) {
	var fields models.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	rec, err := h.service.Create(c.Request.Context(), ownerID(c), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Get handles GET /businesses/:id.
func (h *BusinessHandler) Get(c *gin.Context) {
	rec, err := h.service.GetByID(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/models"
)

// DocumentHandler serves a single-document resource with merge-update
// semantics (the profession details endpoint).
type DocumentHandler struct {
	service core.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service core.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Get handles GET /<name>. Absence and anonymous callers both yield the
// resource's default value, never an error.
func (h *DocumentHandler) Get(c *gin.Context) {
	rec, err := h.service.GetOrDefault(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Update handles POST /<name>: a partial merge of the supplied fields.
func (h *DocumentHandler) Update(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var fields models.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	rec, err := h.service.MergeUpdate(c.Request.Context(), owner, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

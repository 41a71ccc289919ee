package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/models"
)

// CollectionHandler serves one owner-scoped collection resource. The same
// handler type backs articles, educations and work experiences; the service's
// spec supplies the payload key.
type CollectionHandler struct {
	service core.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(service core.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// List handles GET /<collection>. Anonymous callers on soft-auth routes get
// an empty array.
func (h *CollectionHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Replace handles POST /<collection>. The body must carry the complete
// replacement array under the resource's payload key; the previous content of
// the collection is discarded in the same commit.
func (h *CollectionHandler) Replace(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	key := h.service.Spec().PayloadKey

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	raw, present := body[key]
	if !present {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Request body must contain an array of %s.", key)})
		return
	}
	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil || records == nil {
		// A non-array value (object, scalar, null) is rejected before any
		// database operation happens.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Request body must contain an array of %s.", key)})
		return
	}

	saved, err := h.service.ReplaceAll(c.Request.Context(), owner, records)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

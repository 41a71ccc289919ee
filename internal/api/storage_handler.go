package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiles-backend-go/internal/core"
)

// StorageHandler serves the file upload endpoint.
type StorageHandler struct {
	service core.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(service core.StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

// Upload handles POST /storage/upload: one multipart file under the "file"
// field, capped at the service's size ceiling.
func (h *StorageHandler) Upload(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	// Cap the request body so an oversized upload fails while reading the
	// form rather than after buffering it. The slack covers the multipart
	// framing around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, core.MaxUploadBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read the uploaded file."})
		return
	}
	defer f.Close()

	url, err := h.service.Upload(
		c.Request.Context(),
		owner,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message: "File uploaded successfully.",
		URL:     url,
	})
}

package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/object"
)

type UploadHandler struct {
	store       *object.ImageStore
	maxFileSize int64
}

func NewUploadHandler(store *object.ImageStore, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		store:       store,
		maxFileSize: maxFileSize,
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadImage handles POST /api/upload. Stores the image and returns
// the reference path to put on the event record.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequestError(c, "No file provided")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		response.BadRequestError(c, "File size exceeds the upload limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		response.BadRequestError(c, "File type not allowed; expected JPEG, PNG, GIF or WEBP")
		return
	}

	path, err := h.store.Put(c.Request.Context(), file, header.Size, contentType, filepath.Ext(header.Filename))
	if err != nil {
		logger.Handler("upload").Error("Image upload failed", "filename", header.Filename, "error", err)
		response.InternalServerError(c, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path})
}

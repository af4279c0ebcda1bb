package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"flowerdecor/services/storage"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 10 << 20

// StorageHandler accepts decoration photos for services and events.
type StorageHandler struct {
	Images storage.ImageStore
}

func NewStorageHandler(images storage.ImageStore) *StorageHandler {
	return &StorageHandler{Images: images}
}

// UploadImageHandler handles POST /api/upload with a multipart "image" field.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImageSize+(1<<20))

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image must be 10 MB or smaller", err)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "No image uploaded", err)
		return
	}
	if fileHeader.Size > MaxImageSize {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image must be 10 MB or smaller", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", fmt.Errorf("read upload: %w", err))
		return
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		utils.JSONError(c, http.StatusBadRequest, "Only image files are allowed", nil)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", fmt.Errorf("rewind upload: %w", err))
		return
	}

	img, err := h.Images.Upload(c.Request.Context(), file, fileHeader.Filename)
	if errors.Is(err, storage.ErrNotConfigured) {
		utils.JSONError(c, http.StatusServiceUnavailable, "Image storage is not configured", err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", fmt.Errorf("store %s: %w", fileHeader.Filename, err))
		return
	}
	c.JSON(http.StatusOK, img)
}

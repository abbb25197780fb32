package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
)

// MediaHandler handles standalone upload and retrieval of stored files.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadMedia godoc
// POST /api/v1/media/upload
// Stores an uploaded file (field "file") and returns its generated name
// and public path. Clients can then set that path on a resource body
// without re-uploading.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	name, err := h.mediaService.Store(file, header)
	if err != nil {
		writeMediaError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"name": name, "url": "/uploads/" + name})
}

// ServeUpload godoc
// GET /uploads/:filename
// Streams a stored file back to the client.
func (h *MediaHandler) ServeUpload(c *gin.Context) {
	f, err := h.mediaService.Open(c.Param("filename"))
	if err != nil {
		writeMediaError(c, err)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	http.ServeContent(c.Writer, c.Request, stat.Name(), stat.ModTime(), f)
}

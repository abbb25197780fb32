package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
	"github.com/campushub/campushub-backend/internal/validator"
)

// AnnouncementHandler handles announcement endpoints. Announcements
// reference files by value only; uploads go through the media endpoint.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

type announcementRequest struct {
	Title   *string `form:"title" json:"title"`
	Image   *string `form:"image" json:"image"`
	Content *string `form:"content" json:"content"`
	PDFName *string `form:"pdfName" json:"pdfName"`
	PDFPath *string `form:"pdfPath" json:"pdfPath"`
}

func (h *AnnouncementHandler) input(c *gin.Context) (service.AnnouncementInput, bool) {
	var req announcementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return service.AnnouncementInput{}, false
	}
	return service.AnnouncementInput{
		Title:   req.Title,
		Image:   req.Image,
		Content: req.Content,
		PDFName: req.PDFName,
		PDFPath: req.PDFPath,
	}, true
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": announcement})
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(announcements), "announcements": announcements})
}

func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deleted successfully"})
}

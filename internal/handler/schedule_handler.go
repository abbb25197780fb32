package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
	"github.com/campushub/campushub-backend/internal/validator"
)

// ScheduleHandler handles schedule endpoints.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	mediaService    *service.MediaService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, mediaService *service.MediaService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, mediaService: mediaService}
}

// Pointer fields so an omitted key binds to nil rather than "".
type scheduleRequest struct {
	Name    *string `form:"name" json:"name"`
	PDFPath *string `form:"pdfPath" json:"pdfPath"`
	PDFName *string `form:"pdfName" json:"pdfName"`
}

// input binds the body and stores the optional "file" upload before the
// document is written, so a reference never precedes its blob.
func (h *ScheduleHandler) input(c *gin.Context) (service.ScheduleInput, bool) {
	var req scheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return service.ScheduleInput{}, false
	}

	in := service.ScheduleInput{Name: req.Name, PDFPath: req.PDFPath, PDFName: req.PDFName}

	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		name, err := h.mediaService.Store(file, header)
		if err != nil {
			writeMediaError(c, err)
			return service.ScheduleInput{}, false
		}
		in.UploadedPDF = name
		in.UploadedPDFName = header.Filename
	}
	return in, true
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(schedules), "schedules": schedules})
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "schedule deleted successfully"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
	"github.com/campushub/campushub-backend/internal/validator"
)

// ContactHandler handles contact endpoints.
type ContactHandler struct {
	contactService *service.ContactService
	mediaService   *service.MediaService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService, mediaService *service.MediaService) *ContactHandler {
	return &ContactHandler{contactService: contactService, mediaService: mediaService}
}

type contactRequest struct {
	Name     *string `form:"name" json:"name"`
	Phone    *string `form:"phone" json:"phone"`
	Telegram *string `form:"telegram" json:"telegram"`
	Img      *string `form:"img" json:"img"`
}

func (h *ContactHandler) input(c *gin.Context) (service.ContactInput, bool) {
	var req contactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return service.ContactInput{}, false
	}

	in := service.ContactInput{Name: req.Name, Phone: req.Phone, Telegram: req.Telegram, Img: req.Img}

	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		name, err := h.mediaService.Store(file, header)
		if err != nil {
			writeMediaError(c, err)
			return service.ContactInput{}, false
		}
		in.UploadedImg = name
	}
	return in, true
}

func (h *ContactHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"contact": contact})
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(contacts), "contacts": contacts})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "contact deleted successfully"})
}

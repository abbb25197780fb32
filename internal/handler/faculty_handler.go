package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
	"github.com/campushub/campushub-backend/internal/validator"
)

// FacultyHandler handles faculty aggregate endpoints. Writes are
// multipart: an "img" slot (max 1 file), an ordered "pdfs" slot, the
// indexed majors[<n>][majorName] text fields, and optional explicit
// per-major file fields majors[<n>][pdf].
type FacultyHandler struct {
	facultyService *service.FacultyService
	mediaService   *service.MediaService
}

// NewFacultyHandler creates a new FacultyHandler.
func NewFacultyHandler(facultyService *service.FacultyService, mediaService *service.MediaService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService, mediaService: mediaService}
}

type facultyRequest struct {
	FacultiesName *string `form:"facultiesName" json:"facultiesName"`
	Img           *string `form:"img" json:"img"`
}

// input binds the body, stores every uploaded file, and builds the
// majors list. All file stores happen before the document write; on a
// later write failure they are not compensated.
func (h *FacultyHandler) input(c *gin.Context) (service.FacultyInput, bool) {
	var req facultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return service.FacultyInput{}, false
	}

	in := service.FacultyInput{FacultiesName: req.FacultiesName, Img: req.Img}

	var (
		files  map[string][]*multipart.FileHeader
		values map[string][]string
	)
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		files = mf.File
		values = mf.Value
	} else {
		_ = c.Request.ParseForm()
		values = c.Request.PostForm
	}

	if headers := files["img"]; len(headers) > 0 {
		name, err := h.mediaService.StoreHeader(headers[0])
		if err != nil {
			writeMediaError(c, err)
			return service.FacultyInput{}, false
		}
		in.UploadedImg = name
	}

	pdfHeaders := files["pdfs"]
	if len(pdfHeaders) > service.MaxFacultyPDFs {
		pdfHeaders = pdfHeaders[:service.MaxFacultyPDFs]
	}
	pdfs := make([]string, 0, len(pdfHeaders))
	for _, header := range pdfHeaders {
		name, err := h.mediaService.StoreHeader(header)
		if err != nil {
			writeMediaError(c, err)
			return service.FacultyInput{}, false
		}
		pdfs = append(pdfs, name)
	}

	explicit, ok := h.explicitMajorPDFs(c, files)
	if !ok {
		return service.FacultyInput{}, false
	}

	majors, err := service.BuildMajors(values, pdfs, explicit)
	if err != nil {
		writeError(c, err)
		return service.FacultyInput{}, false
	}
	in.Majors = majors

	return in, true
}

// explicitMajorPDFs stores files uploaded under majors[<n>][pdf] keys
// and maps them by major index.
func (h *FacultyHandler) explicitMajorPDFs(c *gin.Context, files map[string][]*multipart.FileHeader) (map[int]string, bool) {
	explicit := make(map[int]string)
	for key, headers := range files {
		var idx int
		if n, err := fmt.Sscanf(key, "majors[%d][pdf]", &idx); err != nil || n != 1 {
			continue
		}
		// Sscanf tolerates trailing text; require an exact key match.
		if key != fmt.Sprintf("majors[%d][pdf]", idx) || idx < 0 || len(headers) == 0 {
			continue
		}
		name, err := h.mediaService.StoreHeader(headers[0])
		if err != nil {
			writeMediaError(c, err)
			return nil, false
		}
		explicit[idx] = name
	}
	return explicit, true
}

func (h *FacultyHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	faculty, err := h.facultyService.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) List(c *gin.Context) {
	faculties, err := h.facultyService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(faculties), "faculties": faculties})
}

func (h *FacultyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	faculty, err := h.facultyService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}

	faculty, err := h.facultyService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.facultyService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "faculty deleted successfully"})
}

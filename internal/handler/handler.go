package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/repository"
	"github.com/campushub/campushub-backend/internal/response"
	"github.com/campushub/campushub-backend/internal/service"
)

// parseID reads and validates the :id route parameter. On failure it
// writes the error response and returns false.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// writeError maps a core error to its response: validation failures
// carry the offending field names, unresolved identifiers are 404, and
// everything else is a storage failure surfaced as 500.
func writeError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, ve.FieldMap())
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// writeMediaError maps attachment-store errors to their response codes.
func writeMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrFileNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/siswa/internal/app/forms"
	"github.com/yigit/siswa/internal/app/models/dto"
	"github.com/yigit/siswa/internal/pkg/apperrors"
	"github.com/yigit/siswa/internal/pkg/logger"
)

// HandleAPIError maps service errors onto JSON error responses
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *forms.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.HandleValidationError(forms.MessageValidationFailed, validationErr.Fields),
		))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Data siswa tidak ditemukan"),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// Recovery converts panics into a 500 response and logs them
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	})
}

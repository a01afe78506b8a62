package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
	"github.com/edupanel/campuscore/internal/pkg/logger"
)

// HandleAPIError classifies a service error and writes the matching error
// response. Unknown errors become a generic 500; store internals never reach
// the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, userMessage(err, "Validation failed"))))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrSchoolAlreadyExists),
		errors.Is(err, apperrors.ErrSessionAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrSchoolNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrResourceHasReferences),
		errors.Is(err, apperrors.ErrSchoolHasCourses),
		errors.Is(err, apperrors.ErrSessionHasCourses):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceInUse, err.Error())))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// userMessage prefers a CustomError's message over the fallback.
func userMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/middleware"
)

// parsePathID extracts the numeric :id path parameter. On failure it writes a
// 400 response and returns false.
func parsePathID(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+resource+" ID")
		errorDetail = errorDetail.WithDetails(resource + " ID must be a positive number")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, writing a field-aware 400 on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, middleware.BindingErrorMessage(err))
		if field := middleware.BindingErrorField(err); field != "" {
			errorDetail = errorDetail.WithField(field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response %q: %v", w.Body.String(), err)
	}
	return w, resp.Error
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"duplicate department", apperrors.ErrDepartmentAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate course code", apperrors.ErrCourseAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"not found", apperrors.ErrSchoolNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"referenced school", apperrors.ErrSchoolHasCourses, http.StatusConflict, dto.ErrorCodeResourceInUse},
		{"referenced session", apperrors.ErrSessionHasCourses, http.StatusConflict, dto.ErrorCodeResourceInUse},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"unknown error", errors.New("pgx: broken pipe"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, detail := runHandleAPIError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if detail == nil || detail.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", detail, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	_, detail := runHandleAPIError(t, errors.New("pq: connection refused at 10.0.0.3"))
	if detail.Message != "Internal server error" {
		t.Fatalf("message = %q, internals must not leak", detail.Message)
	}
}

func TestHandleAPIErrorValidationMessage(t *testing.T) {
	w, detail := runHandleAPIError(t, apperrors.NewValidationError("name cannot be empty"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if detail.Message != "name cannot be empty" {
		t.Fatalf("message = %q, want the custom validation message", detail.Message)
	}
}

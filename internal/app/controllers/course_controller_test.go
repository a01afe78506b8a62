package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
)

func TestListCoursesPassesFilters(t *testing.T) {
	env := newTestEnv(t)
	env.courses.list = func(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error) {
		if schoolID != 3 || sessionID != 7 {
			t.Errorf("filters = (%d, %d), want (3, 7)", schoolID, sessionID)
		}
		return []*models.Course{
			{ID: 1, Name: "Algorithms", Code: "CS201", SchoolID: 3, SessionID: 7,
				SchoolName: "Engineering", SessionName: "2025-2026", Status: models.StatusActive},
		}, nil
	}

	w := env.do(t, http.MethodGet, "/api/v1/courses?schoolId=3&sessionId=7", nil, false)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	_, data, _ := decodeEnvelope(t, w)
	var list []models.Course
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].SchoolName != "Engineering" {
		t.Fatalf("list = %v, want populated school name", list)
	}
}

func TestListCoursesUnfilteredByDefault(t *testing.T) {
	env := newTestEnv(t)
	env.courses.list = func(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error) {
		if schoolID != 0 || sessionID != 0 {
			t.Errorf("filters = (%d, %d), want (0, 0)", schoolID, sessionID)
		}
		return []*models.Course{}, nil
	}

	w := env.do(t, http.MethodGet, "/api/v1/courses", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCreateCourseRequiresReferences(t *testing.T) {
	env := newTestEnv(t)
	env.courses.create = func(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
		t.Fatal("service must not be called when binding fails")
		return nil, nil
	}

	// Missing schoolId/sessionId fails required binding.
	w := env.do(t, http.MethodPost, "/api/v1/courses",
		map[string]interface{}{"name": "Algorithms", "code": "CS201"}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	env := newTestEnv(t)
	env.courses.create = func(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	w := env.do(t, http.MethodPost, "/api/v1/courses",
		dto.CreateCourseRequest{Name: "Algorithms", Code: "CS201", SchoolID: 1, SessionID: 1}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	_, _, errDetail := decodeEnvelope(t, w)
	if errDetail == nil || errDetail.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Fatalf("body = %s, want RES_002", w.Body.String())
	}
}

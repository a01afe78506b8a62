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

func TestDeleteSchoolWithCoursesConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.schools.delete = func(ctx context.Context, id int64) error {
		return apperrors.ErrSchoolHasCourses
	}

	w := env.do(t, http.MethodDelete, "/api/v1/schools/3", nil, true)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	_, _, errDetail := decodeEnvelope(t, w)
	if errDetail == nil || errDetail.Code != dto.ErrorCodeResourceInUse {
		t.Fatalf("body = %s, want RES_003", w.Body.String())
	}
}

func TestCreateSchoolDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	env.schools.create = func(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
		return nil, apperrors.ErrSchoolAlreadyExists
	}

	w := env.do(t, http.MethodPost, "/api/v1/schools",
		dto.CreateSchoolRequest{Name: "North Campus"}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateSchoolReturnsPostUpdateView(t *testing.T) {
	env := newTestEnv(t)
	env.schools.update = func(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
		return &models.School{ID: id, Name: "North Campus", Address: "1 Main St", Status: models.StatusActive}, nil
	}

	w := env.do(t, http.MethodPut, "/api/v1/schools/3",
		map[string]string{"address": "1 Main St"}, true)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	_, data, _ := decodeEnvelope(t, w)
	var school models.School
	if err := json.Unmarshal(data, &school); err != nil {
		t.Fatal(err)
	}
	if school.Address != "1 Main St" {
		t.Fatalf("school = %+v", school)
	}
}

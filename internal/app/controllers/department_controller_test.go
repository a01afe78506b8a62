package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
)

func TestListDepartments(t *testing.T) {
	env := newTestEnv(t)
	env.departments.list = func(ctx context.Context) ([]*models.Department, error) {
		return []*models.Department{
			{ID: 1, Name: "Admissions", Status: models.StatusActive},
			{ID: 2, Name: "Registrar", Status: models.StatusActive},
		}, nil
	}

	w := env.do(t, http.MethodGet, "/api/v1/departments", nil, false)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	success, data, _ := decodeEnvelope(t, w)
	if !success {
		t.Fatal("success = false, want true")
	}
	var list []models.Department
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "Admissions" {
		t.Fatalf("list = %v", list)
	}
}

func TestCreateDepartmentReturnsCreatedDocument(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	env.departments.create = func(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
		return &models.Department{
			ID:          7,
			Name:        req.Name,
			Description: req.Description,
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil
	}

	w := env.do(t, http.MethodPost, "/api/v1/departments",
		dto.CreateDepartmentRequest{Name: "Science", Description: "lab visits"}, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	_, data, _ := decodeEnvelope(t, w)
	var created models.Department
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != 7 || created.CreatedAt.IsZero() {
		t.Fatalf("created = %+v, want assigned ID and createdAt", created)
	}
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	env.departments.create = func(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	w := env.do(t, http.MethodPost, "/api/v1/departments",
		dto.CreateDepartmentRequest{Name: "Science"}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	success, _, errDetail := decodeEnvelope(t, w)
	if success || errDetail == nil {
		t.Fatalf("body = %s, want error envelope", w.Body.String())
	}
	if errDetail.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Fatalf("error code = %s, want %s", errDetail.Code, dto.ErrorCodeResourceAlreadyExists)
	}
	if !strings.Contains(errDetail.Message, "already exists") {
		t.Fatalf("error message %q should mention the duplicate", errDetail.Message)
	}
}

func TestCreateDepartmentMissingName(t *testing.T) {
	env := newTestEnv(t)
	env.departments.create = func(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
		t.Fatal("service must not be called when binding fails")
		return nil, nil
	}

	w := env.do(t, http.MethodPost, "/api/v1/departments", map[string]string{"description": "no name"}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	_, _, errDetail := decodeEnvelope(t, w)
	if errDetail == nil || errDetail.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("body = %s, want VAL_001", w.Body.String())
	}
}

func TestUpdateDepartmentSparsePatch(t *testing.T) {
	env := newTestEnv(t)
	env.departments.update = func(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
		if req.Name != nil {
			t.Errorf("name present in patch: %q, want absent", *req.Name)
		}
		if req.Status == nil || *req.Status != "Inactive" {
			t.Errorf("status = %v, want Inactive", req.Status)
		}
		return &models.Department{ID: id, Name: "Science", Status: models.StatusInactive}, nil
	}

	w := env.do(t, http.MethodPut, "/api/v1/departments/7",
		map[string]string{"status": "Inactive"}, true)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	_, data, _ := decodeEnvelope(t, w)
	var updated models.Department
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Science" || updated.Status != models.StatusInactive {
		t.Fatalf("updated = %+v, want name preserved and status Inactive", updated)
	}
}

func TestUpdateDepartmentNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.departments.update = func(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
		return nil, apperrors.ErrDepartmentNotFound
	}

	w := env.do(t, http.MethodPut, "/api/v1/departments/42",
		map[string]string{"status": "Inactive"}, true)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.departments.delete = func(ctx context.Context, id int64) error {
		if id != 7 {
			t.Errorf("id = %d, want 7", id)
		}
		return nil
	}

	w := env.do(t, http.MethodDelete, "/api/v1/departments/7", nil, true)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	_, data, _ := decodeEnvelope(t, w)
	var confirmation dto.SuccessResponse
	if err := json.Unmarshal(data, &confirmation); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(confirmation.Message, "deleted") {
		t.Fatalf("message = %q, want a deletion confirmation", confirmation.Message)
	}
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.departments.delete = func(ctx context.Context, id int64) error {
		return apperrors.ErrDepartmentNotFound
	}

	w := env.do(t, http.MethodDelete, "/api/v1/departments/42", nil, true)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetDepartmentInvalidID(t *testing.T) {
	env := newTestEnv(t)
	env.departments.get = func(ctx context.Context, id int64) (*models.Department, error) {
		t.Fatal("service must not be called for a bad ID")
		return nil, nil
	}

	w := env.do(t, http.MethodGet, "/api/v1/departments/abc", nil, false)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMutationsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/departments",
		dto.CreateDepartmentRequest{Name: "Science"}, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestReadsArePublic(t *testing.T) {
	env := newTestEnv(t)
	env.departments.list = func(ctx context.Context) ([]*models.Department, error) {
		return []*models.Department{}, nil
	}

	w := env.do(t, http.MethodGet, "/api/v1/departments", nil, false)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 without a token", w.Code)
	}
}

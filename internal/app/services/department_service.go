package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/repositories"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
	"github.com/edupanel/campuscore/internal/pkg/cache"
	"github.com/edupanel/campuscore/internal/pkg/logger"
)

const departmentListCacheKey = "campuscore:departments:list"

// DepartmentService handles visit-department operations
type DepartmentService interface {
	List(ctx context.Context) ([]*models.Department, error)
	Get(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	repo  *repositories.DepartmentRepository
	cache *cache.RedisCache
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(repo *repositories.DepartmentRepository, listCache *cache.RedisCache) DepartmentService {
	return &departmentService{repo: repo, cache: listCache}
}

// List retrieves all departments sorted by name, serving from the list cache
// when possible.
func (s *departmentService) List(ctx context.Context) ([]*models.Department, error) {
	var cached []*models.Department
	if err := s.cache.GetJSON(ctx, departmentListCacheKey, &cached); err == nil {
		return cached, nil
	}

	departments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	if err := s.cache.SetJSON(ctx, departmentListCacheKey, departments, listCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache department list")
	}

	return departments, nil
}

// Get retrieves a department by ID
func (s *departmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// Create trims and defaults the payload, then inserts the department. The
// store-level unique index is the second line of defense for the name.
func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	department := &models.Department{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Status:      models.NormalizeStatus(req.Status),
	}

	if err := s.repo.Create(ctx, department); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.invalidateList(ctx)
	return department, nil
}

// Update applies a sparse patch: fields absent from the request stay untouched.
func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		updates["status"] = models.NormalizeStatus(*req.Status)
	}

	if len(updates) == 0 {
		// Nothing to change; return the current view.
		return s.Get(ctx, id)
	}

	department, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	s.invalidateList(ctx)
	return department, nil
}

// Delete permanently removes a department.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

func (s *departmentService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, departmentListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate department list cache")
	}
}

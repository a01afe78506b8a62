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

const schoolListCacheKey = "campuscore:schools:list"

// SchoolService handles school operations
type SchoolService interface {
	List(ctx context.Context) ([]*models.School, error)
	Get(ctx context.Context, id int64) (*models.School, error)
	Create(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error)
	Delete(ctx context.Context, id int64) error
}

type schoolService struct {
	repo  *repositories.SchoolRepository
	cache *cache.RedisCache
}

// NewSchoolService creates a new school service instance
func NewSchoolService(repo *repositories.SchoolRepository, listCache *cache.RedisCache) SchoolService {
	return &schoolService{repo: repo, cache: listCache}
}

// List retrieves all schools sorted by name.
func (s *schoolService) List(ctx context.Context) ([]*models.School, error) {
	var cached []*models.School
	if err := s.cache.GetJSON(ctx, schoolListCacheKey, &cached); err == nil {
		return cached, nil
	}

	schools, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}

	if err := s.cache.SetJSON(ctx, schoolListCacheKey, schools, listCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache school list")
	}

	return schools, nil
}

// Get retrieves a school by ID
func (s *schoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}
	return school, nil
}

// Create trims and defaults the payload, then inserts the school.
func (s *schoolService) Create(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	school := &models.School{
		Name:    name,
		Address: strings.TrimSpace(req.Address),
		Status:  models.NormalizeStatus(req.Status),
	}

	if err := s.repo.Create(ctx, school); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrSchoolAlreadyExists
		}
		return nil, fmt.Errorf("error creating school: %w", err)
	}

	s.invalidateList(ctx)
	return school, nil
}

// Update applies a sparse patch: fields absent from the request stay untouched.
func (s *schoolService) Update(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Status != nil {
		updates["status"] = models.NormalizeStatus(*req.Status)
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	school, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrSchoolAlreadyExists
		}
		return nil, fmt.Errorf("error updating school: %w", err)
	}

	s.invalidateList(ctx)
	return school, nil
}

// Delete permanently removes a school. Schools still referenced by courses
// are rejected rather than cascaded or left dangling.
func (s *schoolService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrSchoolNotFound
		}
		if errors.Is(err, repositories.ErrHasReferences) {
			return apperrors.ErrSchoolHasCourses
		}
		return fmt.Errorf("error deleting school: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

func (s *schoolService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, schoolListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate school list cache")
	}
}

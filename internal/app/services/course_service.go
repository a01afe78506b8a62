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

const courseListCacheKey = "campuscore:courses:list"

// CourseService handles course operations
type CourseService interface {
	// List returns courses sorted by name; schoolID/sessionID of 0 mean unfiltered.
	List(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseService struct {
	repo        *repositories.CourseRepository
	schoolRepo  *repositories.SchoolRepository
	sessionRepo *repositories.SessionRepository
	cache       *cache.RedisCache
}

// NewCourseService creates a new course service instance
func NewCourseService(repo *repositories.CourseRepository, schoolRepo *repositories.SchoolRepository,
	sessionRepo *repositories.SessionRepository, listCache *cache.RedisCache) CourseService {
	return &courseService{
		repo:        repo,
		schoolRepo:  schoolRepo,
		sessionRepo: sessionRepo,
		cache:       listCache,
	}
}

// checkReferences verifies the referenced school and session exist before a
// write, so a bad reference surfaces as a validation failure instead of a
// foreign key error.
func (s *courseService) checkReferences(ctx context.Context, schoolID, sessionID int64) error {
	if schoolID > 0 {
		if _, err := s.schoolRepo.GetByID(ctx, schoolID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewValidationError("referenced school does not exist")
			}
			return fmt.Errorf("error checking school reference: %w", err)
		}
	}
	if sessionID > 0 {
		if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewValidationError("referenced academic session does not exist")
			}
			return fmt.Errorf("error checking session reference: %w", err)
		}
	}
	return nil
}

// List retrieves courses; only the unfiltered list is cached.
func (s *courseService) List(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error) {
	unfiltered := schoolID == 0 && sessionID == 0

	if unfiltered {
		var cached []*models.Course
		if err := s.cache.GetJSON(ctx, courseListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	courses, err := s.repo.GetAll(ctx, schoolID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	if unfiltered {
		if err := s.cache.SetJSON(ctx, courseListCacheKey, courses, listCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache course list")
		}
	}

	return courses, nil
}

// Get retrieves a course by ID
func (s *courseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// Create trims and defaults the payload, verifies references and inserts.
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if code == "" {
		return nil, apperrors.NewValidationError("code cannot be empty")
	}

	if err := s.checkReferences(ctx, req.SchoolID, req.SessionID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:      name,
		Code:      code,
		SchoolID:  req.SchoolID,
		SessionID: req.SessionID,
		Status:    models.NormalizeStatus(req.Status),
	}

	if err := s.repo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.invalidateList(ctx)
	return s.Get(ctx, course.ID)
}

// Update applies a sparse patch: fields absent from the request stay untouched.
func (s *courseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, apperrors.NewValidationError("code cannot be empty")
		}
		updates["code"] = code
	}

	var schoolID, sessionID int64
	if req.SchoolID != nil {
		schoolID = *req.SchoolID
		updates["school_id"] = schoolID
	}
	if req.SessionID != nil {
		sessionID = *req.SessionID
		updates["session_id"] = sessionID
	}
	if err := s.checkReferences(ctx, schoolID, sessionID); err != nil {
		return nil, err
	}

	if req.Status != nil {
		updates["status"] = models.NormalizeStatus(*req.Status)
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	course, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	s.invalidateList(ctx)
	return course, nil
}

// Delete permanently removes a course.
func (s *courseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

func (s *courseService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, courseListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate course list cache")
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/repositories"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
	"github.com/edupanel/campuscore/internal/pkg/cache"
	"github.com/edupanel/campuscore/internal/pkg/logger"
)

const sessionListCacheKey = "campuscore:sessions:list"

// sessionDateLayout is the wire format for session start/end dates.
const sessionDateLayout = "2006-01-02"

// SessionService handles academic-session operations
type SessionService interface {
	List(ctx context.Context) ([]*models.Session, error)
	Get(ctx context.Context, id int64) (*models.Session, error)
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
}

type sessionService struct {
	repo  *repositories.SessionRepository
	cache *cache.RedisCache
}

// NewSessionService creates a new session service instance
func NewSessionService(repo *repositories.SessionRepository, listCache *cache.RedisCache) SessionService {
	return &sessionService{repo: repo, cache: listCache}
}

func parseSessionDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(sessionDateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return &t, nil
}

// List retrieves all sessions sorted by name.
func (s *sessionService) List(ctx context.Context) ([]*models.Session, error) {
	var cached []*models.Session
	if err := s.cache.GetJSON(ctx, sessionListCacheKey, &cached); err == nil {
		return cached, nil
	}

	sessions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}

	if err := s.cache.SetJSON(ctx, sessionListCacheKey, sessions, listCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache session list")
	}

	return sessions, nil
}

// Get retrieves a session by ID
func (s *sessionService) Get(ctx context.Context, id int64) (*models.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return session, nil
}

// Create trims and defaults the payload, then inserts the session.
func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	startDate, err := parseSessionDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseSessionDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.NewValidationError("endDate cannot be before startDate")
	}

	session := &models.Session{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    models.NormalizeStatus(req.Status),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrSessionAlreadyExists
		}
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	s.invalidateList(ctx)
	return session, nil
}

// Update applies a sparse patch: fields absent from the request stay untouched.
func (s *sessionService) Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		updates["name"] = name
	}
	if req.StartDate != nil {
		startDate, err := parseSessionDate("startDate", *req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseSessionDate("endDate", *req.EndDate)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = endDate
	}
	if req.Status != nil {
		updates["status"] = models.NormalizeStatus(*req.Status)
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	session, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrSessionAlreadyExists
		}
		return nil, fmt.Errorf("error updating session: %w", err)
	}

	s.invalidateList(ctx)
	return session, nil
}

// Delete permanently removes a session, refusing while courses reference it.
func (s *sessionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrSessionNotFound
		}
		if errors.Is(err, repositories.ErrHasReferences) {
			return apperrors.ErrSessionHasCourses
		}
		return fmt.Errorf("error deleting session: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

func (s *sessionService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, sessionListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate session list cache")
	}
}

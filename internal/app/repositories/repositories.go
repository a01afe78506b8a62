package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors. Entity-specific sentinels wrap or alias these so
// services can classify without knowing which repository produced the error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrHasReferences = errors.New("record is referenced by other records")
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	DepartmentRepository *DepartmentRepository
	SchoolRepository     *SchoolRepository
	SessionRepository    *SessionRepository
	CourseRepository     *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		SchoolRepository:     NewSchoolRepository(db),
		SessionRepository:    NewSessionRepository(db),
		CourseRepository:     NewCourseRepository(db),
	}
}

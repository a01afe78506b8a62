package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrResourceHasReferences = errors.New("resource is referenced by other records")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("a department with this name already exists")
)

// School errors
var (
	ErrSchoolNotFound      = errors.New("school not found")
	ErrSchoolAlreadyExists = errors.New("a school with this name already exists")
	ErrSchoolHasCourses    = errors.New("school has associated courses and cannot be deleted")
)

// Session errors
var (
	ErrSessionNotFound      = errors.New("academic session not found")
	ErrSessionAlreadyExists = errors.New("an academic session with this name already exists")
	ErrSessionHasCourses    = errors.New("academic session has associated courses and cannot be deleted")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("a course with this code already exists")
)

// CustomError wraps a sentinel error with a caller-supplied message so the
// HTTP layer can classify on the sentinel while showing the message.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure carrying a user-facing message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error carrying a user-facing message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

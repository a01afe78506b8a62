package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	SchoolID  int64  `json:"schoolId" binding:"required,gt=0"`
	SessionID int64  `json:"sessionId" binding:"required,gt=0"`
	Status    string `json:"status"`
}

// UpdateCourseRequest represents a sparse course patch
type UpdateCourseRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	SchoolID  *int64  `json:"schoolId"`
	SessionID *int64  `json:"sessionId"`
	Status    *string `json:"status"`
}

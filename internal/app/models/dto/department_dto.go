package dto

// CreateDepartmentRequest represents visit-department creation data
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateDepartmentRequest represents a sparse department patch; only fields
// present in the request body are applied.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

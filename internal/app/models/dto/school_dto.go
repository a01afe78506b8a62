package dto

// CreateSchoolRequest represents school creation data
type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// UpdateSchoolRequest represents a sparse school patch
type UpdateSchoolRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

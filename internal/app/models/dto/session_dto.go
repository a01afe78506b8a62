package dto

// CreateSessionRequest represents academic-session creation data. Dates are
// "2006-01-02" strings.
type CreateSessionRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// UpdateSessionRequest represents a sparse session patch
type UpdateSessionRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Status    *string `json:"status"`
}

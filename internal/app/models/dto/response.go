package dto

import "time"

// APIResponse is the uniform envelope every endpoint returns. Success
// responses carry Data; failures carry Error.
type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewDataResponse wraps a payload in the success envelope.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a confirmation message payload (e.g. for deletes)
type SuccessResponse struct {
	Message string `json:"message" example:"School deleted successfully"`
}

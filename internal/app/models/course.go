package models

import "time"

// Course represents a course offered by a school during a session. SchoolName
// and SessionName carry the referenced display names on read paths.
type Course struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	SchoolID    int64     `json:"schoolId"`
	SessionID   int64     `json:"sessionId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	SchoolName  string    `json:"schoolName,omitempty"`
	SessionName string    `json:"sessionName,omitempty"`
}

package models

// Status is the two-value enable flag every catalog entity carries.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// NormalizeStatus coerces any input other than the literal "Inactive" to
// Active, so nothing but the two enum values is ever persisted.
func NormalizeStatus(s string) Status {
	if s == string(StatusInactive) {
		return StatusInactive
	}
	return StatusActive
}

// Role identifies what a user is allowed to do.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

package listview

import "github.com/edupanel/campuscore/internal/app/models"

// Per-entity table constructors binding the search box to each entity's
// display fields.

// NewDepartmentTable creates a table over departments searching name,
// description and status.
func NewDepartmentTable(pageSize int) *Table[models.Department] {
	return NewTable(
		func(d models.Department) int64 { return d.ID },
		func(d models.Department) []string {
			return []string{d.Name, d.Description, string(d.Status)}
		},
		pageSize,
	)
}

// NewSchoolTable creates a table over schools searching name, address and
// status.
func NewSchoolTable(pageSize int) *Table[models.School] {
	return NewTable(
		func(s models.School) int64 { return s.ID },
		func(s models.School) []string {
			return []string{s.Name, s.Address, string(s.Status)}
		},
		pageSize,
	)
}

// NewSessionTable creates a table over sessions searching name and status.
func NewSessionTable(pageSize int) *Table[models.Session] {
	return NewTable(
		func(s models.Session) int64 { return s.ID },
		func(s models.Session) []string {
			return []string{s.Name, string(s.Status)}
		},
		pageSize,
	)
}

// NewCourseTable creates a table over courses searching name, code, the
// referenced display names and status.
func NewCourseTable(pageSize int) *Table[models.Course] {
	return NewTable(
		func(c models.Course) int64 { return c.ID },
		func(c models.Course) []string {
			return []string{c.Name, c.Code, c.SchoolName, c.SessionName, string(c.Status)}
		},
		pageSize,
	)
}

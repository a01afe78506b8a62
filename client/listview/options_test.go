package listview

import (
	"testing"

	"github.com/edupanel/campuscore/internal/app/models"
)

func fixtureOptions() Options {
	return Options{
		Schools: []models.School{
			{ID: 1, Name: "Engineering"},
			{ID: 2, Name: "Business"},
		},
		Sessions: []models.Session{
			{ID: 10, Name: "2025-2026"},
			{ID: 11, Name: "2026-2027"},
		},
		Courses: []models.Course{
			{ID: 100, Name: "Algorithms", SchoolID: 1, SessionID: 10},
			{ID: 101, Name: "Databases", SchoolID: 1, SessionID: 11},
			{ID: 102, Name: "Accounting", SchoolID: 2, SessionID: 10},
		},
	}
}

func TestDeriveAvailableOptionsNoSelection(t *testing.T) {
	available, sel := DeriveAvailableOptions(Selection{}, fixtureOptions())

	if len(available.Schools) != 2 || len(available.Sessions) != 2 || len(available.Courses) != 3 {
		t.Fatalf("no selection should leave all options available, got %d/%d/%d",
			len(available.Schools), len(available.Sessions), len(available.Courses))
	}
	if sel != (Selection{}) {
		t.Fatalf("selection changed: %+v", sel)
	}
}

func TestDeriveAvailableOptionsSchoolNarrowsCourses(t *testing.T) {
	available, _ := DeriveAvailableOptions(Selection{SchoolID: 2}, fixtureOptions())

	if len(available.Courses) != 1 || available.Courses[0].ID != 102 {
		t.Fatalf("Courses = %v, want only Accounting", available.Courses)
	}
	// Business has no course in 2026-2027, so that session drops out.
	if len(available.Sessions) != 1 || available.Sessions[0].ID != 10 {
		t.Fatalf("Sessions = %v, want only 2025-2026", available.Sessions)
	}
}

func TestDeriveAvailableOptionsSchoolAndSession(t *testing.T) {
	available, sel := DeriveAvailableOptions(Selection{SchoolID: 1, SessionID: 11}, fixtureOptions())

	if len(available.Courses) != 1 || available.Courses[0].ID != 101 {
		t.Fatalf("Courses = %v, want only Databases", available.Courses)
	}
	if sel.SessionID != 11 {
		t.Fatalf("valid session selection was cleared: %+v", sel)
	}
}

func TestDeriveAvailableOptionsClearsStaleSession(t *testing.T) {
	// 2026-2027 has no Business course, so picking Business invalidates it.
	available, sel := DeriveAvailableOptions(Selection{SchoolID: 2, SessionID: 11}, fixtureOptions())

	if sel.SessionID != 0 {
		t.Fatalf("stale session selection kept: %+v", sel)
	}
	if len(available.Courses) != 1 || available.Courses[0].ID != 102 {
		t.Fatalf("Courses = %v, want Business courses across sessions", available.Courses)
	}
}

func TestDeriveAvailableOptionsClearsUnknownSchool(t *testing.T) {
	available, sel := DeriveAvailableOptions(Selection{SchoolID: 99, SessionID: 10}, fixtureOptions())

	if sel.SchoolID != 0 || sel.SessionID != 0 {
		t.Fatalf("unknown school should clear the cascade, got %+v", sel)
	}
	if len(available.Courses) != 3 {
		t.Fatalf("Courses = %v, want all courses after reset", available.Courses)
	}
}

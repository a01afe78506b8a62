package listview

import "github.com/edupanel/campuscore/internal/app/models"

// Selection holds the dropdown picks driving the cascading course filter.
// Zero values mean "no selection".
type Selection struct {
	SchoolID  int64
	SessionID int64
}

// Options holds the full dropdown option lists fetched from the API.
type Options struct {
	Schools  []models.School
	Sessions []models.Session
	Courses  []models.Course
}

// DeriveAvailableOptions computes which dropdown options remain valid for
// the given selection. Schools are always all schools; sessions narrow to
// those with at least one course in the selected school; courses narrow to
// the selected school and session. A selection that no longer appears in
// its own option list is cleared, and the narrowing is recomputed from the
// cleared selection, so the returned selection is always consistent with
// the returned options.
func DeriveAvailableOptions(sel Selection, opts Options) (Options, Selection) {
	if sel.SchoolID != 0 && !containsSchool(opts.Schools, sel.SchoolID) {
		sel.SchoolID = 0
		sel.SessionID = 0
	}

	available := Options{Schools: opts.Schools}

	if sel.SchoolID == 0 {
		available.Sessions = opts.Sessions
	} else {
		for _, session := range opts.Sessions {
			if schoolOffersIn(opts.Courses, sel.SchoolID, session.ID) {
				available.Sessions = append(available.Sessions, session)
			}
		}
	}

	if sel.SessionID != 0 && !containsSession(available.Sessions, sel.SessionID) {
		sel.SessionID = 0
	}

	for _, course := range opts.Courses {
		if sel.SchoolID != 0 && course.SchoolID != sel.SchoolID {
			continue
		}
		if sel.SessionID != 0 && course.SessionID != sel.SessionID {
			continue
		}
		available.Courses = append(available.Courses, course)
	}

	return available, sel
}

func containsSchool(schools []models.School, id int64) bool {
	for _, s := range schools {
		if s.ID == id {
			return true
		}
	}
	return false
}

func containsSession(sessions []models.Session, id int64) bool {
	for _, s := range sessions {
		if s.ID == id {
			return true
		}
	}
	return false
}

// schoolOffersIn reports whether the school has at least one course in the
// session.
func schoolOffersIn(courses []models.Course, schoolID, sessionID int64) bool {
	for _, c := range courses {
		if c.SchoolID == schoolID && c.SessionID == sessionID {
			return true
		}
	}
	return false
}

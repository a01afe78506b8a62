package listview

import (
	"errors"
	"strings"
)

// FormMode is the modal form's position in its state machine.
type FormMode int

const (
	// FormClosed means no modal is showing.
	FormClosed FormMode = iota
	// FormCreate means the modal is open with no identifier held.
	FormCreate
	// FormEdit means the modal is open for the row whose ID it holds.
	FormEdit
)

// Form submit errors.
var (
	ErrFormClosed            = errors.New("form is not open")
	ErrSubmitInFlight        = errors.New("a submit is already in flight")
	ErrRequiredFieldsMissing = errors.New("required fields are missing")
)

// Form models the modal create/edit form: its open/closed state, the entered
// values, required-field validation and the in-flight submit guard.
type Form struct {
	mode     FormMode
	editID   int64
	required []string
	values   map[string]string
	inFlight bool
}

// NewForm creates a closed form whose listed fields must be non-empty after
// trimming before a submit is allowed.
func NewForm(requiredFields ...string) *Form {
	return &Form{required: requiredFields}
}

// Mode returns the current form mode.
func (f *Form) Mode() FormMode {
	return f.mode
}

// EditID returns the identifier being edited; meaningful only in FormEdit.
func (f *Form) EditID() int64 {
	return f.editID
}

// InFlight reports whether a submit is outstanding.
func (f *Form) InFlight() bool {
	return f.inFlight
}

// OpenCreate opens the form in create mode with empty values.
func (f *Form) OpenCreate() {
	f.mode = FormCreate
	f.editID = 0
	f.values = map[string]string{}
	f.inFlight = false
}

// OpenEdit opens the form pre-filled with the row's current values.
func (f *Form) OpenEdit(id int64, values map[string]string) {
	f.mode = FormEdit
	f.editID = id
	f.values = map[string]string{}
	for k, v := range values {
		f.values[k] = v
	}
	f.inFlight = false
}

// SetValue records one entered field value.
func (f *Form) SetValue(field, value string) {
	if f.mode == FormClosed {
		return
	}
	f.values[field] = value
}

// Value returns one entered field value.
func (f *Form) Value(field string) string {
	return f.values[field]
}

// Cancel closes the form, discarding entered values with no side effects.
func (f *Form) Cancel() {
	f.mode = FormClosed
	f.editID = 0
	f.values = nil
	f.inFlight = false
}

// Validate returns a per-field error message for every required field that
// is empty after trimming. An empty map means the form may be submitted.
func (f *Form) Validate() map[string]string {
	fieldErrors := map[string]string{}
	for _, field := range f.required {
		if strings.TrimSpace(f.values[field]) == "" {
			fieldErrors[field] = "this field is required"
		}
	}
	return fieldErrors
}

// BeginSubmit validates and marks a submit as in flight. It fails without
// side effects when the form is closed, validation fails, or another submit
// is already outstanding.
func (f *Form) BeginSubmit() error {
	if f.mode == FormClosed {
		return ErrFormClosed
	}
	if f.inFlight {
		return ErrSubmitInFlight
	}
	if len(f.Validate()) > 0 {
		return ErrRequiredFieldsMissing
	}
	f.inFlight = true
	return nil
}

// FinishSubmit records the server's verdict. Success closes the form;
// failure keeps it open with the entered values intact so the user can
// retry.
func (f *Form) FinishSubmit(success bool) {
	f.inFlight = false
	if success {
		f.Cancel()
	}
}

// TrimmedValues returns the entered values with surrounding whitespace
// removed, the payload shape sent to the API.
func (f *Form) TrimmedValues() map[string]string {
	trimmed := make(map[string]string, len(f.values))
	for k, v := range f.values {
		trimmed[k] = strings.TrimSpace(v)
	}
	return trimmed
}

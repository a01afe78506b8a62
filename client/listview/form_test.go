package listview

import (
	"errors"
	"testing"
)

func TestFormOpenCreateAndCancel(t *testing.T) {
	form := NewForm("name")

	if form.Mode() != FormClosed {
		t.Fatal("new form should start closed")
	}

	form.OpenCreate()
	if form.Mode() != FormCreate {
		t.Fatalf("Mode() = %v, want FormCreate", form.Mode())
	}

	form.SetValue("name", "Science")
	form.Cancel()

	if form.Mode() != FormClosed {
		t.Fatal("Cancel should close the form")
	}
	if form.Value("name") != "" {
		t.Fatal("Cancel should discard entered values")
	}
}

func TestFormOpenEditPrefillsValues(t *testing.T) {
	form := NewForm("name")
	form.OpenEdit(7, map[string]string{"name": "Arts", "status": "Active"})

	if form.Mode() != FormEdit {
		t.Fatalf("Mode() = %v, want FormEdit", form.Mode())
	}
	if form.EditID() != 7 {
		t.Fatalf("EditID() = %d, want 7", form.EditID())
	}
	if form.Value("name") != "Arts" {
		t.Fatalf("Value(name) = %q, want Arts", form.Value("name"))
	}
}

func TestFormValidateRequiresTrimmedNonEmpty(t *testing.T) {
	form := NewForm("name", "code")
	form.OpenCreate()
	form.SetValue("name", "   ")
	form.SetValue("code", "CS101")

	fieldErrors := form.Validate()
	if len(fieldErrors) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(fieldErrors), fieldErrors)
	}
	if _, ok := fieldErrors["name"]; !ok {
		t.Fatalf("Validate() = %v, want an error on name", fieldErrors)
	}
}

func TestFormBeginSubmitBlocksOnValidation(t *testing.T) {
	form := NewForm("name")
	form.OpenCreate()

	err := form.BeginSubmit()
	if !errors.Is(err, ErrRequiredFieldsMissing) {
		t.Fatalf("BeginSubmit() = %v, want ErrRequiredFieldsMissing", err)
	}
	if form.InFlight() {
		t.Fatal("failed validation must not mark the form in flight")
	}
}

func TestFormInFlightGuard(t *testing.T) {
	form := NewForm("name")
	form.OpenCreate()
	form.SetValue("name", "Science")

	if err := form.BeginSubmit(); err != nil {
		t.Fatalf("first BeginSubmit() = %v, want nil", err)
	}
	if err := form.BeginSubmit(); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second BeginSubmit() = %v, want ErrSubmitInFlight", err)
	}
}

func TestFormFinishSubmitSuccessCloses(t *testing.T) {
	form := NewForm("name")
	form.OpenCreate()
	form.SetValue("name", "Science")

	if err := form.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	form.FinishSubmit(true)

	if form.Mode() != FormClosed {
		t.Fatal("successful submit should close the form")
	}
}

func TestFormFinishSubmitFailureKeepsValues(t *testing.T) {
	form := NewForm("name")
	form.OpenCreate()
	form.SetValue("name", "Science")

	if err := form.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	form.FinishSubmit(false)

	if form.Mode() != FormCreate {
		t.Fatal("failed submit should keep the form open")
	}
	if form.Value("name") != "Science" {
		t.Fatal("failed submit should keep entered values")
	}
	// The user can retry immediately.
	if err := form.BeginSubmit(); err != nil {
		t.Fatalf("retry BeginSubmit() = %v, want nil", err)
	}
}

func TestFormSubmitWhenClosed(t *testing.T) {
	form := NewForm("name")
	if err := form.BeginSubmit(); !errors.Is(err, ErrFormClosed) {
		t.Fatalf("BeginSubmit() on closed form = %v, want ErrFormClosed", err)
	}
}

func TestFormTrimmedValues(t *testing.T) {
	form := NewForm("name")
	form.OpenCreate()
	form.SetValue("name", "  Foo  ")
	form.SetValue("description", " bar ")

	trimmed := form.TrimmedValues()
	if trimmed["name"] != "Foo" || trimmed["description"] != "bar" {
		t.Fatalf("TrimmedValues() = %v", trimmed)
	}
}

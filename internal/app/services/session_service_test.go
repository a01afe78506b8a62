package services

import (
	"errors"
	"testing"
	"time"

	"github.com/edupanel/campuscore/internal/pkg/apperrors"
)

func TestParseSessionDate(t *testing.T) {
	got, err := parseSessionDate("startDate", "2025-09-01")
	if err != nil {
		t.Fatalf("parseSessionDate() error = %v", err)
	}
	want := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("parseSessionDate() = %v, want %v", got, want)
	}
}

func TestParseSessionDateEmpty(t *testing.T) {
	got, err := parseSessionDate("startDate", "   ")
	if err != nil || got != nil {
		t.Fatalf("blank date should parse to nil, got %v, %v", got, err)
	}
}

func TestParseSessionDateMalformed(t *testing.T) {
	_, err := parseSessionDate("endDate", "01/09/2025")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want a validation error", err)
	}
}

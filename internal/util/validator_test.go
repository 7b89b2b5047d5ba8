package util

import (
	"strings"
	"testing"
)

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	for _, month := range []string{"2024-01", "2025-12"} {
		if err := ValidateMonth(month); err != nil {
			t.Errorf("ValidateMonth(%q) error = %v, want nil", month, err)
		}
	}
	for _, month := range []string{"", "2024-13", "2024-1", "2024-01-01"} {
		if err := ValidateMonth(month); err == nil {
			t.Errorf("ValidateMonth(%q) error = nil, want error", month)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Solve 1 DSA problem"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := ValidateTitle("   "); err == nil {
		t.Error("blank title accepted")
	}
	if err := ValidateTitle(strings.Repeat("x", 256)); err == nil {
		t.Error("overlong title accepted")
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range []int{1, 5, 99} {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%d) error = %v, want nil", p, err)
		}
	}
	for _, p := range []int{0, -3, 100} {
		if err := ValidatePriority(p); err == nil {
			t.Errorf("ValidatePriority(%d) error = nil, want error", p)
		}
	}
}

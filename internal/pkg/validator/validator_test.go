package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	cases := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParsePositiveInt(c.input)
		if got != c.want || ok != c.wantOK {
			t.Errorf("ParsePositiveInt(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.wantOK)
		}
	}
}

func TestIsInRange(t *testing.T) {
	if !IsInRange(1, 1, 5) || !IsInRange(5, 1, 5) || !IsInRange(3, 1, 5) {
		t.Error("IsInRange should accept bounds and interior values")
	}
	if IsInRange(0, 1, 5) || IsInRange(6, 1, 5) {
		t.Error("IsInRange should reject values outside the bounds")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}
	if got := errs.Error(); got != "email: email is required; password: password is required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["email"] != "email is required" || m["password"] != "password is required" {
		t.Errorf("ToMap() = %v", m)
	}
}

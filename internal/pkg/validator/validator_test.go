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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2000-12-31"}
	invalid := []string{"2024-13-01", "2024-01-32", "2024/01/01", "01-01-2024", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	year, month, ok := IsValidMonth("2024-03")
	if !ok || year != 2024 || month != 3 {
		t.Errorf("IsValidMonth(\"2024-03\") = (%d, %d, %v), want (2024, 3, true)", year, month, ok)
	}

	invalid := []string{"2024-13", "2024", "03-2024", "2024-3-01", ""}
	for _, s := range invalid {
		if _, _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abcd", "nguyenvana", "user_1"}
	invalid := []string{"abc", "ab", ""}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"123456", "longer-password"}
	invalid := []string{"12345", "", "a"}
	for _, p := range valid {
		if !IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPassword(p) {
			t.Errorf("IsValidPassword(%q) = true, want false", p)
		}
	}
}

package validate

import (
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	cases := []struct {
		Casename string
		Username string
		Valid    bool
	}{
		{"valid username", "editor_pro", true},
		{"minimum length", "abc", true},
		{"empty", "", false},
		{"too short", "ab", false},
		{"whitespace only", "   ", false},
		{"padded below minimum", " ab ", false},
		{"too long", strings.Repeat("a", MaxUsernameLen+1), false},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := Username(c.Username)
			if c.Valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if !c.Valid && err == nil {
				t.Errorf("expected %q to be rejected", c.Username)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		Casename string
		Email    string
		Valid    bool
	}{
		{"valid address", "pro@editor.com", true},
		{"empty", "", false},
		{"no at sign", "editor.com", false},
		{"no dot in domain", "user@localhost", false},
		{"spaces", "a b@c.com", false},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := Email(c.Email)
			if c.Valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if !c.Valid && err == nil {
				t.Errorf("expected %q to be rejected", c.Email)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		Casename string
		Password string
		Valid    bool
	}{
		{"valid password", "password123", true},
		{"minimum length", "abcdef", true},
		{"empty", "", false},
		{"too short", "abcde", false},
		{"too long", strings.Repeat("a", MaxPasswordLen+1), false},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := Password(c.Password)
			if c.Valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if !c.Valid && err == nil {
				t.Errorf("expected %q to be rejected", c.Password)
			}
		})
	}
}

func TestSignUpForm(t *testing.T) {
	if err := SignUpForm("newuser", "new@user.com", "abcdef", "abcdef"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	err := SignUpForm("newuser", "new@user.com", "abcdef", "abcdeg")
	if err == nil {
		t.Error("expected mismatched confirmation to be rejected")
	}

	// All failures should be reported together.
	err = SignUpForm("ab", "user@localhost", "abc", "abcd")
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"username", "dot", "password"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected joined error to mention %q, got: %s", want, err)
		}
	}
}

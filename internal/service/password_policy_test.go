package service

import (
	"errors"
	"testing"

	"github.com/xinna-pharma/internal/config"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true}
	cases := []struct {
		password string
		email    string
		key      string
	}{
		{"Ab1", "", "error.password_min_length"},
		{"abcdefg1", "", "error.password_require_upper"},
		{"ABCDEFG1", "", "error.password_require_lower"},
		{"Abcdefgh", "", "error.password_require_number"},
		{"Budi2024x", "budi@example.com", "error.password_contains_email"},
		{"Budi2024x", "al@example.com", ""},
		{"Secure123", "budi@example.com", ""},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password, tc.email)
		if tc.key == "" {
			if err != nil {
				t.Fatalf("password %q expected ok, got %v", tc.password, err)
			}
			continue
		}
		var violation passwordPolicyError
		if !errors.As(err, &violation) || violation.Key() != tc.key {
			t.Fatalf("password %q expected %s, got %v", tc.password, tc.key, err)
		}
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q error should match ErrWeakPassword", tc.password)
		}
	}
}

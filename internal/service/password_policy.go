package service

import (
	"strings"
	"unicode"

	"github.com/xinna-pharma/internal/config"
)

// passwordPolicyError 密码不满足策略；errors.Is 匹配 ErrWeakPassword，并携带 i18n 文案键
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// Key i18n 文案键
func (e passwordPolicyError) Key() string {
	return e.key
}

// Args i18n 文案参数
func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

type passwordTraits struct {
	upper, lower, number bool
}

func scanPassword(password string) passwordTraits {
	var traits passwordTraits
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			traits.upper = true
		case unicode.IsLower(r):
			traits.lower = true
		case unicode.IsDigit(r):
			traits.number = true
		}
	}
	return traits
}

// validatePassword 按配置校验密码；email 非空时禁止密码包含邮箱用户名
func validatePassword(policy config.PasswordPolicyConfig, password, email string) error {
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	traits := scanPassword(password)
	rules := []struct {
		required bool
		present  bool
		key      string
	}{
		{policy.RequireUpper, traits.upper, "error.password_require_upper"},
		{policy.RequireLower, traits.lower, "error.password_require_lower"},
		{policy.RequireNumber, traits.number, "error.password_require_number"},
	}
	for _, rule := range rules {
		if rule.required && !rule.present {
			return passwordPolicyError{key: rule.key}
		}
	}

	if local, _, ok := strings.Cut(strings.ToLower(email), "@"); ok && len(local) >= 3 {
		if strings.Contains(strings.ToLower(password), local) {
			return passwordPolicyError{key: "error.password_contains_email"}
		}
	}
	return nil
}

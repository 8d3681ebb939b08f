package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Rule checks a single string value and returns a human-readable message for
// the first broken constraint, or "" when the value passes.
type Rule func(value string) string

var (
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRE = regexp.MustCompile(`^09\d{8}$`)
)

// Required rejects empty or blank values.
func Required(field string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required", field)
		}
		return ""
	}
}

// MinLength rejects values shorter than n characters (runes, not bytes).
func MinLength(field string, n int) Rule {
	return func(value string) string {
		if value != "" && utf8.RuneCountInString(value) < n {
			return fmt.Sprintf("%s must be at least %d characters", field, n)
		}
		return ""
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(field string, n int) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("%s must not exceed %d characters", field, n)
		}
		return ""
	}
}

// IsNumber rejects values that do not parse as a number. Empty passes.
func IsNumber(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Sprintf("%s must be a valid number", field)
		}
		return ""
	}
}

// IsPositiveInteger rejects values that are not whole numbers >= 0. Empty passes.
func IsPositiveInteger(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Sprintf("%s must be a non-negative integer", field)
		}
		return ""
	}
}

// IsEmail rejects malformed email addresses. Empty passes.
func IsEmail(field string) Rule {
	return func(value string) string {
		if value != "" && !emailRE.MatchString(value) {
			return fmt.Sprintf("%s is not a valid email address", field)
		}
		return ""
	}
}

// IsPhone rejects values that are not a Taiwanese mobile number (09 + 8 digits).
// Spaces and dashes are stripped before matching. Empty passes.
func IsPhone(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		clean := strings.NewReplacer(" ", "", "-", "").Replace(value)
		if !phoneRE.MatchString(clean) {
			return fmt.Sprintf("%s is not a valid mobile number", field)
		}
		return ""
	}
}

// IsURL rejects values that do not parse as an absolute URL. Empty passes.
func IsURL(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Sprintf("%s is not a valid URL", field)
		}
		return ""
	}
}

// IsDate rejects values that do not parse as a calendar date (2006-01-02 or RFC3339).
// Empty passes.
func IsDate(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := ParseDate(value); err != nil {
			return fmt.Sprintf("%s is not a valid date", field)
		}
		return ""
	}
}

// IsFutureDate rejects dates that are not strictly after now. Empty passes.
func IsFutureDate(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		t, err := ParseDate(value)
		if err != nil {
			return fmt.Sprintf("%s is not a valid date", field)
		}
		if !t.After(time.Now()) {
			return fmt.Sprintf("%s must be a future date", field)
		}
		return ""
	}
}

// IsPastDate rejects dates that are not strictly before now. Empty passes.
func IsPastDate(field string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		t, err := ParseDate(value)
		if err != nil {
			return fmt.Sprintf("%s is not a valid date", field)
		}
		if !t.Before(time.Now()) {
			return fmt.Sprintf("%s must be a past date", field)
		}
		return ""
	}
}

// ParseDate accepts a bare date or a full RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Run applies rules in order and returns the first failure message, or "".
func Run(value string, rules ...Rule) string {
	for _, r := range rules {
		if msg := r(value); msg != "" {
			return msg
		}
	}
	return ""
}

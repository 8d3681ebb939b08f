package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var centsRE = regexp.MustCompile(`\.\d{2}$`)

// ParseAmount normalizes a matched substring into whole New Taiwan dollars.
// A trailing two-digit decimal part is dropped ("8,500.00" -> 8500).
func ParseAmount(found string) (int64, error) {
	s := strings.TrimSpace(found)
	if s == "" {
		return 0, fmt.Errorf("empty match")
	}
	if centsRE.MatchString(s) {
		s = s[:strings.LastIndex(s, ".")]
	}
	digits := onlyDigits(s)
	if digits == "" {
		return 0, fmt.Errorf("no digits in %q", found)
	}
	amt, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", digits, err)
	}
	return amt, nil
}

// IsPlausibleAmount filters out matches that are more likely phone numbers,
// order ids, or dates than money. Currency-marked or comma-grouped strings are
// trusted; bare digit runs must be short and not zero-led.
func IsPlausibleAmount(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if hasCurrencyHint(s) {
		return true
	}
	d := onlyDigits(s)
	if d == "" || d[0] == '0' {
		return false
	}
	if strings.Contains(s, ",") {
		return len(d) >= 3
	}
	if len(d) > 7 {
		return false
	}
	return len(d) >= 2
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

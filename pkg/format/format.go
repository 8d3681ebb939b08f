package format

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DateLayout is the canonical calendar-date form used across the app.
const DateLayout = "2006-01-02"

// Date renders a calendar date, or "" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DateTime renders date and time to minute precision, or "" for the zero time.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// ParseDate parses a calendar date produced by Date, falling back to RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Currency renders a whole-unit amount with thousand separators and a currency
// prefix, e.g. Currency(8500, "NT$") -> "NT$ 8,500". Zero renders "".
func Currency(amount int64, currency string) string {
	if amount == 0 {
		return ""
	}
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := groupDigits(strconv.FormatInt(amount, 10))
	if neg {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return currency + " " + s
}

func groupDigits(ds string) string {
	n := len(ds)
	if n <= 3 {
		return ds
	}
	var parts []string
	for n > 3 {
		parts = append([]string{ds[n-3:]}, parts...)
		ds = ds[:n-3]
		n = len(ds)
	}
	parts = append([]string{ds}, parts...)
	return strings.Join(parts, ",")
}

// Truncate shortens s to at most max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// IsEmpty reports whether the value is nil, blank, or a zero-length slice/map.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []string:
		return len(x) == 0
	case map[string]string:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}

// SafeJSONDecode unmarshals into out and reports success; out is untouched on
// malformed input.
func SafeJSONDecode(data []byte, out any) bool {
	return json.Unmarshal(data, out) == nil
}

// SafeJSONEncode marshals v, returning fallback when marshalling fails.
func SafeJSONEncode(v any, fallback string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(b)
}

// Debounce returns a function that delays invoking fn until wait has elapsed
// since its last call. Each call resets the timer.
func Debounce(fn func(), wait time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}

// Throttle returns a function that invokes fn at most once per interval;
// calls inside the window are dropped.
func Throttle(fn func(), interval time.Duration) func() {
	var mu sync.Mutex
	var last time.Time
	return func() {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(last) < interval {
			return
		}
		last = now
		fn()
	}
}

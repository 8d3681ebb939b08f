package format

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	orig := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseDate(Date(orig))
	require.NoError(t, err)
	assert.Equal(t, orig.Year(), parsed.Year())
	assert.Equal(t, orig.Month(), parsed.Month())
	assert.Equal(t, orig.Day(), parsed.Day())
}

func TestDateZero(t *testing.T) {
	assert.Empty(t, Date(time.Time{}))
	assert.Empty(t, DateTime(time.Time{}))
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	parsed, err := ParseDate("2024-01-10T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Day())
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "NT$ 8,500", Currency(8500, "NT$"))
	assert.Equal(t, "NT$ 1,234,567", Currency(1234567, "NT$"))
	assert.Equal(t, "NT$ 500", Currency(500, "NT$"))
	assert.Equal(t, "NT$ -1,042", Currency(-1042, "NT$"))
	assert.Empty(t, Currency(0, "NT$"))
	assert.Equal(t, "9,999", Currency(9999, ""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde…", Truncate("abcdefgh", 5))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty([]string{"a"}))
}

func TestSafeJSON(t *testing.T) {
	var out map[string]string
	assert.True(t, SafeJSONDecode([]byte(`{"a":"b"}`), &out))
	assert.Equal(t, "b", out["a"])
	assert.False(t, SafeJSONDecode([]byte(`{broken`), &out))

	assert.Equal(t, `{"a":"b"}`, SafeJSONEncode(map[string]string{"a": "b"}, "{}"))
	assert.Equal(t, "{}", SafeJSONEncode(make(chan int), "{}"))
}

func TestDebounceCollapsesBurst(t *testing.T) {
	var calls int32
	fn := Debounce(func() { atomic.AddInt32(&calls, 1) }, 20*time.Millisecond)
	for i := 0; i < 5; i++ {
		fn()
	}
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestThrottleDropsInsideWindow(t *testing.T) {
	var calls int32
	fn := Throttle(func() { atomic.AddInt32(&calls, 1) }, 50*time.Millisecond)
	fn()
	fn()
	fn()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	time.Sleep(60 * time.Millisecond)
	fn()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

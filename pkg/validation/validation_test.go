package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limits() Limits { return DefaultLimits(10_000_000) }

func int64p(v int64) *int64 { return &v }

func TestCaseFormValid(t *testing.T) {
	res := ValidateCaseForm(CaseForm{
		Title:   "Flight booking",
		Content: "Round trip to Hong Kong",
		Amount:  int64p(8500),
		Tags:    []string{"flight", "hong-kong"},
	}, limits())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestCaseFormBlankTitleOnly(t *testing.T) {
	res := ValidateCaseForm(CaseForm{Title: "", Content: "valid content text"}, limits())
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "title")
	assert.Len(t, res.Errors, 1)
}

func TestCaseFormFirstRuleWins(t *testing.T) {
	// Too-short title should report the length rule, not any later rule.
	res := ValidateCaseForm(CaseForm{Title: "x", Content: "valid content text"}, limits())
	require.Contains(t, res.Errors, "title")
	assert.Contains(t, res.Errors["title"], "at least 2")
}

func TestCaseFormLengthBounds(t *testing.T) {
	long := strings.Repeat("a", 101)
	res := ValidateCaseForm(CaseForm{Title: long, Content: "long enough"}, limits())
	require.Contains(t, res.Errors, "title")
	assert.Contains(t, res.Errors["title"], "100")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "four"}, limits())
	require.Contains(t, res.Errors, "content")
}

func TestCaseFormAmountBounds(t *testing.T) {
	res := ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Amount: int64p(-1)}, limits())
	require.Contains(t, res.Errors, "amount")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Amount: int64p(10_000_001)}, limits())
	require.Contains(t, res.Errors, "amount")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Amount: int64p(10_000_000)}, limits())
	assert.NotContains(t, res.Errors, "amount")
}

func TestCaseFormTags(t *testing.T) {
	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = string(rune('a' + i))
	}
	res := ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Tags: tooMany}, limits())
	require.Contains(t, res.Errors, "tags")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Tags: []string{"a", "  "}}, limits())
	require.Contains(t, res.Errors, "tags")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Tags: []string{"dup", "dup"}}, limits())
	require.Contains(t, res.Errors, "tags")

	res = ValidateCaseForm(CaseForm{Title: "ok title", Content: "long enough", Tags: []string{strings.Repeat("x", 21)}}, limits())
	require.Contains(t, res.Errors, "tags")
}

func TestRunShortCircuits(t *testing.T) {
	msg := Run("", Required("field"), MinLength("field", 5))
	assert.Contains(t, msg, "required")

	msg = Run("okay value", Required("field"), MinLength("field", 5))
	assert.Empty(t, msg)
}

func TestFormatRules(t *testing.T) {
	assert.Empty(t, IsEmail("email")("user@example.com"))
	assert.NotEmpty(t, IsEmail("email")("not-an-email"))

	assert.Empty(t, IsPhone("phone")("0912-345-678"))
	assert.NotEmpty(t, IsPhone("phone")("12345"))

	assert.Empty(t, IsURL("url")("https://example.com/x"))
	assert.NotEmpty(t, IsURL("url")("://bad"))

	assert.Empty(t, IsDate("date")("2026-01-10"))
	assert.NotEmpty(t, IsDate("date")("10/01/2026"))

	assert.Empty(t, IsPositiveInteger("amount")("42"))
	assert.NotEmpty(t, IsPositiveInteger("amount")("-1"))
	assert.NotEmpty(t, IsNumber("amount")("abc"))
}

func TestDateDirectionRules(t *testing.T) {
	assert.NotEmpty(t, IsFutureDate("date")("2000-01-01"))
	assert.Empty(t, IsPastDate("date")("2000-01-01"))
	assert.Empty(t, IsFutureDate("date")("2999-01-01"))
	assert.NotEmpty(t, IsPastDate("date")("2999-01-01"))
}

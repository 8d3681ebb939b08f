package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CaseForm carries the user-editable case fields for validation.
type CaseForm struct {
	Title         string
	Content       string
	Category      string
	Status        string
	Amount        *int64
	Vendor        string
	PaymentMethod string
	Tags          []string
}

// Result maps each invalid field to a single message (the first broken rule).
type Result struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// Limits bounds the case form. MaxAmount comes from configuration rather than
// being the historical hardcoded constant.
type Limits struct {
	TitleMin   int
	TitleMax   int
	ContentMin int
	ContentMax int
	VendorMax  int
	PaymentMax int
	TagsMax    int
	TagLenMax  int
	MaxAmount  int64
}

// DefaultLimits mirrors the original form constraints.
func DefaultLimits(maxAmount int64) Limits {
	return Limits{
		TitleMin:   2,
		TitleMax:   100,
		ContentMin: 5,
		ContentMax: 1000,
		VendorMax:  50,
		PaymentMax: 100,
		TagsMax:    10,
		TagLenMax:  20,
		MaxAmount:  maxAmount,
	}
}

// ValidateCaseForm checks every field independently; each field stops at its
// first broken rule. No rule reads another field's value.
func ValidateCaseForm(f CaseForm, lim Limits) Result {
	errs := map[string]string{}

	if msg := Run(strings.TrimSpace(f.Title),
		Required("title"),
		MinLength("title", lim.TitleMin),
		MaxLength("title", lim.TitleMax),
	); msg != "" {
		errs["title"] = msg
	}

	if msg := Run(strings.TrimSpace(f.Content),
		Required("content"),
		MinLength("content", lim.ContentMin),
		MaxLength("content", lim.ContentMax),
	); msg != "" {
		errs["content"] = msg
	}

	if f.Amount != nil {
		switch {
		case *f.Amount < 0:
			errs["amount"] = "amount must not be negative"
		case *f.Amount > lim.MaxAmount:
			errs["amount"] = fmt.Sprintf("amount must not exceed %d", lim.MaxAmount)
		}
	}

	if msg := MaxLength("vendor", lim.VendorMax)(strings.TrimSpace(f.Vendor)); msg != "" {
		errs["vendor"] = msg
	}

	if msg := MaxLength("paymentMethod", lim.PaymentMax)(strings.TrimSpace(f.PaymentMethod)); msg != "" {
		errs["paymentMethod"] = msg
	}

	if msg := validateTags(f.Tags, lim); msg != "" {
		errs["tags"] = msg
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func validateTags(tags []string, lim Limits) string {
	if len(tags) > lim.TagsMax {
		return fmt.Sprintf("no more than %d tags allowed", lim.TagsMax)
	}
	seen := map[string]bool{}
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" {
			return "tags must not be empty"
		}
		if utf8.RuneCountInString(t) > lim.TagLenMax {
			return fmt.Sprintf("each tag must not exceed %d characters", lim.TagLenMax)
		}
		if seen[t] {
			return fmt.Sprintf("duplicate tag %q", t)
		}
		seen[t] = true
	}
	return ""
}

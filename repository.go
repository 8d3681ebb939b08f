package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Baugest615/case-management/models"
	"github.com/Baugest615/case-management/pkg/validation"

	"github.com/lib/pq"
)

// ConnectionStatus is the coarse connectivity state surfaced to clients. It is
// informational only; it never gates operations.
type ConnectionStatus string

const (
	ConnUntested  ConnectionStatus = "untested"
	ConnTesting   ConnectionStatus = "testing"
	ConnConnected ConnectionStatus = "connected"
	ConnFailed    ConnectionStatus = "failed"
)

// CaseInput carries the user-submitted fields of a case. Dates arrive as
// strings (calendar date or RFC3339) and are parsed on write.
type CaseInput struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Category         string   `json:"category"`
	Status           string   `json:"status"`
	Amount           *int64   `json:"amount"`
	HasCreditCardFee bool     `json:"hasCreditCardFee"`
	Vendor           string   `json:"vendor"`
	PaymentMethod    string   `json:"paymentMethod"`
	PaymentDate      string   `json:"paymentDate"`
	BookingDate      string   `json:"bookingDate"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Client           string   `json:"client"`
	Tags             []string `json:"tags"`
}

// Stats aggregates a list of cases: counts per status plus money sums.
type Stats struct {
	Total        int   `json:"total"`
	Completed    int   `json:"completed"`
	InProgress   int   `json:"inProgress"`
	Pending      int   `json:"pending"`
	Cancelled    int   `json:"cancelled"`
	TotalAmount  int64 `json:"totalAmount"`
	PaidAmount   int64 `json:"paidAmount"`
	UnpaidAmount int64 `json:"unpaidAmount"`
}

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Result.Errors))
	for k := range e.Result.Errors {
		keys = append(keys, k)
	}
	return "validation failed: " + strings.Join(keys, ", ")
}

// CaseRepository owns the in-memory case list, a mirror of the last successful
// remote operation. All mutation goes through its methods; no remote error
// escapes unconverted.
type CaseRepository struct {
	store   *CaseStore
	limits  validation.Limits
	feeRate float64

	mu         sync.RWMutex
	cases      []models.Case
	lastErr    string
	connStatus ConnectionStatus
}

func NewCaseRepository(store *CaseStore, limits validation.Limits, feeRate float64) *CaseRepository {
	return &CaseRepository{
		store:      store,
		limits:     limits,
		feeRate:    feeRate,
		connStatus: ConnUntested,
	}
}

// Initialize probes the store and loads the full list. On failure the seed
// list is substituted so clients always have something to render, and the
// connection is marked failed so the UI can offer a retry.
func (r *CaseRepository) Initialize(ctx context.Context) {
	r.setConnStatus(ConnTesting)
	if err := r.store.Probe(ctx); err != nil {
		log.Printf("store probe failed: %v", err)
		r.mu.Lock()
		r.cases = seedCases()
		r.lastErr = fmt.Sprintf("connection failed: %s", err.Error())
		r.connStatus = ConnFailed
		r.mu.Unlock()
		return
	}
	r.setConnStatus(ConnConnected)
	if err := r.Refresh(ctx); err != nil {
		log.Printf("initial load failed: %v", err)
		r.mu.Lock()
		r.cases = seedCases()
		r.connStatus = ConnFailed
		r.mu.Unlock()
	}
}

// List returns a copy of the current view, ordered by creation time descending.
func (r *CaseRepository) List() []models.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Validate runs the form rules without touching the store.
func (r *CaseRepository) Validate(in CaseInput) validation.Result {
	return validation.ValidateCaseForm(validation.CaseForm{
		Title:         in.Title,
		Content:       in.Content,
		Category:      in.Category,
		Status:        in.Status,
		Amount:        in.Amount,
		Vendor:        in.Vendor,
		PaymentMethod: in.PaymentMethod,
		Tags:          in.Tags,
	}, r.limits)
}

// Add validates, inserts, and prepends the server-assigned record. Local state
// is untouched on any failure.
func (r *CaseRepository) Add(ctx context.Context, in CaseInput) (models.Case, error) {
	c, err := r.buildCase(in)
	if err != nil {
		return models.Case{}, err
	}
	if err := r.store.Insert(ctx, &c); err != nil {
		return models.Case{}, r.fail("create failed", err)
	}
	r.mu.Lock()
	r.cases = append([]models.Case{c}, r.cases...)
	r.lastErr = ""
	r.mu.Unlock()
	return c, nil
}

// Update validates and replaces the matching record, locally and remotely.
func (r *CaseRepository) Update(ctx context.Context, id uint, in CaseInput) (models.Case, error) {
	c, err := r.buildCase(in)
	if err != nil {
		return models.Case{}, err
	}
	stored, err := r.store.Update(ctx, id, c)
	if err != nil {
		return models.Case{}, r.fail("update failed", err)
	}
	r.mu.Lock()
	for i := range r.cases {
		if r.cases[i].ID == id {
			r.cases[i] = stored
			break
		}
	}
	r.lastErr = ""
	r.mu.Unlock()
	return stored, nil
}

// Delete removes the record remotely then locally. Unknown ids leave the list
// unchanged.
func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return r.fail("delete failed", err)
	}
	r.mu.Lock()
	kept := r.cases[:0]
	for _, c := range r.cases {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.cases = kept
	r.lastErr = ""
	r.mu.Unlock()
	return nil
}

// Refresh re-fetches the full list, replacing local state wholesale.
func (r *CaseRepository) Refresh(ctx context.Context) error {
	list, err := r.store.Select(ctx, SelectSpec{}, "created_at desc")
	if err != nil {
		return r.fail("refresh failed", err)
	}
	r.mu.Lock()
	r.cases = list
	r.lastErr = ""
	r.connStatus = ConnConnected
	r.mu.Unlock()
	return nil
}

// Stats aggregates the given subset, or the full local list when subset is nil.
// Unknown status values count toward Total only.
func (r *CaseRepository) Stats(subset []models.Case) Stats {
	if subset == nil {
		subset = r.List()
	}
	var s Stats
	s.Total = len(subset)
	for i := range subset {
		c := &subset[i]
		switch c.Status {
		case models.StatusCompleted:
			s.Completed++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusPending:
			s.Pending++
		case models.StatusCancelled:
			s.Cancelled++
		}
		amt := c.EffectiveAmount()
		s.TotalAmount += amt
		if c.IsPaid() {
			s.PaidAmount += amt
		} else {
			s.UnpaidAmount += amt
		}
	}
	return s
}

// LastError returns the current user-facing error message, "" when clear.
func (r *CaseRepository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// ClearError dismisses the current error message.
func (r *CaseRepository) ClearError() {
	r.mu.Lock()
	r.lastErr = ""
	r.mu.Unlock()
}

func (r *CaseRepository) ConnectionStatus() ConnectionStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.connStatus
}

func (r *CaseRepository) setConnStatus(s ConnectionStatus) {
	r.mu.Lock()
	r.connStatus = s
	r.mu.Unlock()
}

// fail records a user-facing message combining context and the store's own
// message, and returns the original error for the caller to classify.
func (r *CaseRepository) fail(what string, err error) error {
	r.mu.Lock()
	r.lastErr = fmt.Sprintf("%s: %s", what, err.Error())
	r.mu.Unlock()
	return err
}

// buildCase validates the input and converts it into a storable record.
func (r *CaseRepository) buildCase(in CaseInput) (models.Case, error) {
	res := r.Validate(in)
	if !res.IsValid {
		return models.Case{}, &ValidationError{Result: res}
	}
	status := in.Status
	if status == "" {
		status = models.StatusInProgress
	}
	if !models.ValidStatus(status) {
		return models.Case{}, &ValidationError{Result: validation.Result{
			Errors: map[string]string{"status": fmt.Sprintf("unknown status %q", status)},
		}}
	}
	c := models.Case{
		Title:            strings.TrimSpace(in.Title),
		Content:          strings.TrimSpace(in.Content),
		Category:         strings.TrimSpace(in.Category),
		Status:           status,
		Amount:           in.Amount,
		HasCreditCardFee: in.HasCreditCardFee,
		Vendor:           strings.TrimSpace(in.Vendor),
		PaymentMethod:    strings.TrimSpace(in.PaymentMethod),
		Client:           strings.TrimSpace(in.Client),
		Tags:             pq.StringArray(trimTags(in.Tags)),
	}
	for _, d := range []struct {
		raw  string
		dst  **time.Time
		name string
	}{
		{in.PaymentDate, &c.PaymentDate, "paymentDate"},
		{in.BookingDate, &c.BookingDate, "bookingDate"},
		{in.StartDate, &c.StartDate, "startDate"},
		{in.EndDate, &c.EndDate, "endDate"},
	} {
		if d.raw == "" {
			continue
		}
		t, err := validation.ParseDate(d.raw)
		if err != nil {
			return models.Case{}, &ValidationError{Result: validation.Result{
				Errors: map[string]string{d.name: fmt.Sprintf("%s is not a valid date", d.name)},
			}}
		}
		*d.dst = &t
	}
	c.ApplyFee(r.feeRate)
	return c, nil
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// seedCases is the fixed fallback shown when the remote store is unreachable.
func seedCases() []models.Case {
	amt := int64(8500)
	final := amt
	created := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	return []models.Case{
		{
			ID:            1,
			CreatedAt:     created,
			UpdatedAt:     created,
			Title:         "Flight booking (sample data)",
			Content:       "Director - Hong Kong (CI) 1/16-1/19",
			Category:      "travel",
			Status:        models.StatusCompleted,
			Amount:        &amt,
			FinalAmount:   &final,
			Vendor:        "KGI",
			PaymentMethod: "credit-card-online",
			Tags:          pq.StringArray{"flight", "hong-kong", "business-trip"},
		},
	}
}

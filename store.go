package main

import (
	"context"
	"errors"
	"time"

	"github.com/Baugest615/case-management/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an update or delete targets an id the store
// does not hold.
var ErrNotFound = errors.New("case not found")

// SelectSpec narrows a Select; zero values mean no constraint.
type SelectSpec struct {
	Status string
	Limit  int
}

// CaseStore is the thin table gateway over the hosted store. Every call
// carries a deadline; any non-success response surfaces the driver's message
// verbatim through the returned error.
type CaseStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCaseStore(gdb *gorm.DB, timeout time.Duration) *CaseStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CaseStore{db: gdb, timeout: timeout}
}

func (s *CaseStore) withDeadline(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(cctx), cancel
}

// Select fetches cases matching spec, ordered by orderBy (SQL order clause).
func (s *CaseStore) Select(ctx context.Context, spec SelectSpec, orderBy string) ([]models.Case, error) {
	gdb, cancel := s.withDeadline(ctx)
	defer cancel()
	q := gdb.Model(&models.Case{})
	if spec.Status != "" && spec.Status != models.StatusAll {
		q = q.Where("status = ?", spec.Status)
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	q = q.Order(orderBy)
	if spec.Limit > 0 {
		q = q.Limit(spec.Limit)
	}
	var out []models.Case
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Insert creates the record; the store assigns id and created_at, written back
// into c.
func (s *CaseStore) Insert(ctx context.Context, c *models.Case) error {
	gdb, cancel := s.withDeadline(ctx)
	defer cancel()
	return gdb.Create(c).Error
}

// Update overwrites the editable columns of the row with the given id and
// returns the stored row. updated_at is refreshed by the store.
func (s *CaseStore) Update(ctx context.Context, id uint, patch models.Case) (models.Case, error) {
	gdb, cancel := s.withDeadline(ctx)
	defer cancel()
	res := gdb.Model(&models.Case{}).Where("id = ?", id).Updates(map[string]any{
		"title":               patch.Title,
		"content":             patch.Content,
		"category":            patch.Category,
		"status":              patch.Status,
		"amount":              patch.Amount,
		"final_amount":        patch.FinalAmount,
		"has_credit_card_fee": patch.HasCreditCardFee,
		"vendor":              patch.Vendor,
		"payment_method":      patch.PaymentMethod,
		"payment_date":        patch.PaymentDate,
		"booking_date":        patch.BookingDate,
		"start_date":          patch.StartDate,
		"end_date":            patch.EndDate,
		"client":              patch.Client,
		"tags":                patch.Tags,
		"updated_at":          time.Now(),
	})
	if res.Error != nil {
		return models.Case{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Case{}, ErrNotFound
	}
	var stored models.Case
	if err := gdb.First(&stored, id).Error; err != nil {
		return models.Case{}, err
	}
	return stored, nil
}

// Delete removes the row with the given id.
func (s *CaseStore) Delete(ctx context.Context, id uint) error {
	gdb, cancel := s.withDeadline(ctx)
	defer cancel()
	res := gdb.Delete(&models.Case{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Probe checks connectivity with a cheap count over the cases table.
func (s *CaseStore) Probe(ctx context.Context) error {
	gdb, cancel := s.withDeadline(ctx)
	defer cancel()
	var n int64
	return gdb.Model(&models.Case{}).Count(&n).Error
}

package models

import (
	"math"
	"time"

	"github.com/lib/pq"
)

// Case represents a single tracked expense/travel record. Columns are
// snake_case in Postgres (gorm naming), JSON is camelCase for the client.
type Case struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	Title            string         `json:"title" gorm:"size:100;not null"`
	Content          string         `json:"content" gorm:"size:1000;not null"`
	Category         string         `json:"category" gorm:"size:50"`
	Status           string         `json:"status" gorm:"size:32;not null;default:in-progress;index"`
	Amount           *int64         `json:"amount"`
	FinalAmount      *int64         `json:"finalAmount"`
	HasCreditCardFee bool           `json:"hasCreditCardFee" gorm:"default:false"`
	Vendor           string         `json:"vendor" gorm:"size:50"`
	PaymentMethod    string         `json:"paymentMethod" gorm:"size:100"`
	PaymentDate      *time.Time     `json:"paymentDate"`
	BookingDate      *time.Time     `json:"bookingDate"`
	StartDate        *time.Time     `json:"startDate"`
	EndDate          *time.Time     `json:"endDate"`
	Client           string         `json:"client" gorm:"size:100"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
}

func (Case) TableName() string {
	return "cases"
}

// EffectiveAmount returns the amount used for money aggregation: the derived
// final amount when present, otherwise the raw amount, otherwise zero.
func (c *Case) EffectiveAmount() int64 {
	if c.FinalAmount != nil {
		return *c.FinalAmount
	}
	if c.Amount != nil {
		return *c.Amount
	}
	return 0
}

// IsPaid reports whether the case counts as paid. Canonical rule: a payment
// method other than the "unpaid" sentinel AND a payment date on record.
func (c *Case) IsPaid() bool {
	return c.PaymentMethod != PaymentMethodUnpaid && c.PaymentMethod != "" && c.PaymentDate != nil
}

// ApplyFee recomputes FinalAmount from Amount and the credit-card-fee flag.
// rate is a multiplier (e.g. 1.015 for a 1.5% surcharge).
func (c *Case) ApplyFee(rate float64) {
	if c.Amount == nil {
		c.FinalAmount = nil
		return
	}
	v := *c.Amount
	if c.HasCreditCardFee {
		v = int64(math.Round(float64(*c.Amount) * rate))
	}
	c.FinalAmount = &v
}

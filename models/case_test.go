package models

import (
	"testing"
	"time"
)

func amt(v int64) *int64 { return &v }

func TestApplyFeeRoundsUp(t *testing.T) {
	c := Case{Amount: amt(1000), HasCreditCardFee: true}
	c.ApplyFee(1.015)
	if c.FinalAmount == nil || *c.FinalAmount != 1015 {
		t.Fatalf("expected 1015, got %v", c.FinalAmount)
	}
	// 333 * 1.015 = 337.995 -> 338
	c = Case{Amount: amt(333), HasCreditCardFee: true}
	c.ApplyFee(1.015)
	if *c.FinalAmount != 338 {
		t.Fatalf("expected 338, got %d", *c.FinalAmount)
	}
}

func TestApplyFeeWithoutFlag(t *testing.T) {
	c := Case{Amount: amt(1000)}
	c.ApplyFee(1.015)
	if c.FinalAmount == nil || *c.FinalAmount != 1000 {
		t.Fatalf("expected final to equal amount, got %v", c.FinalAmount)
	}
}

func TestApplyFeeNilAmount(t *testing.T) {
	c := Case{FinalAmount: amt(99)}
	c.ApplyFee(1.015)
	if c.FinalAmount != nil {
		t.Fatalf("expected nil final amount")
	}
}

func TestEffectiveAmount(t *testing.T) {
	if (&Case{}).EffectiveAmount() != 0 {
		t.Fatalf("empty case should sum as zero")
	}
	c := Case{Amount: amt(100)}
	if c.EffectiveAmount() != 100 {
		t.Fatalf("expected raw amount")
	}
	c.FinalAmount = amt(101)
	if c.EffectiveAmount() != 101 {
		t.Fatalf("final amount should win")
	}
}

func TestIsPaid(t *testing.T) {
	now := time.Now()
	cases := []struct {
		c    Case
		want bool
	}{
		{Case{PaymentMethod: "cash", PaymentDate: &now}, true},
		{Case{PaymentMethod: "cash"}, false},
		{Case{PaymentMethod: PaymentMethodUnpaid, PaymentDate: &now}, false},
		{Case{PaymentDate: &now}, false},
	}
	for i, tc := range cases {
		if got := tc.c.IsPaid(); got != tc.want {
			t.Fatalf("case %d: IsPaid() = %v, want %v", i, got, tc.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range CaseStatuses {
		if !ValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidStatus("archived") || ValidStatus("") {
		t.Fatalf("unknown statuses must be invalid")
	}
}

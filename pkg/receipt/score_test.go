package receipt

import "testing"

func TestBestAmountTotalPriority(t *testing.T) {
	// 9,999 is larger, but the TOTAL-marked candidate should win.
	matches := []string{"9,999", "TOTAL: NT$ 8,500"}
	amt, raw, ok := BestAmount(matches)
	if !ok {
		t.Fatalf("no amount chosen")
	}
	if amt != 8500 {
		t.Fatalf("expected 8500 (TOTAL) got %d raw=%s", amt, raw)
	}
}

func TestBestAmountEmpty(t *testing.T) {
	if _, _, ok := BestAmount(nil); ok {
		t.Fatalf("expected no candidate")
	}
}

package receipt

import "strings"

// BestAmount picks the highest-scoring candidate. Currency markers and a
// "total" context outrank magnitude; ties break toward the larger amount, then
// the longer raw match.
func BestAmount(matches []string) (int64, string, bool) {
	type cand struct {
		amt   int64
		raw   string
		score int
	}
	var cands []cand
	for _, m := range matches {
		amt, err := ParseAmount(m)
		if err != nil || amt <= 0 {
			continue
		}
		cands = append(cands, cand{amt: amt, raw: m, score: scoreMatch(m)})
	}
	if len(cands) == 0 {
		return 0, "", false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		switch {
		case c.score > best.score:
			best = c
		case c.score == best.score && c.amt > best.amt:
			best = c
		case c.score == best.score && c.amt == best.amt && len(c.raw) > len(best.raw):
			best = c
		}
	}
	return best.amt, best.raw, true
}

func scoreMatch(raw string) int {
	s := 0
	low := strings.ToLower(raw)
	if strings.Contains(low, "nt$") || strings.Contains(low, "twd") {
		s += 10
	} else if strings.Contains(low, "$") {
		s += 6
	}
	if strings.Contains(low, "total") {
		s += 8
	}
	if strings.Contains(raw, ",") {
		s += 5
	}
	if len(onlyDigits(raw)) >= 4 {
		s++
	}
	return s
}

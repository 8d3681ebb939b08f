package main

import (
	"strings"

	"github.com/Baugest615/case-management/models"
)

// FilterCases returns the order-preserving subsequence of cases matching the
// free-text term (case-insensitive substring over title, content, and vendor)
// and the status filter ("all" or empty means no status constraint).
func FilterCases(cases []models.Case, term, status string) []models.Case {
	term = strings.ToLower(strings.TrimSpace(term))
	all := status == "" || status == models.StatusAll
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if term != "" && !matchesTerm(&c, term) {
			continue
		}
		if !all && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesTerm(c *models.Case, term string) bool {
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Content), term) ||
		strings.Contains(strings.ToLower(c.Vendor), term)
}

package ui

import (
	"fmt"
	"sort"
	"strings"

	"autocase/internal/model"
	"autocase/internal/scoring"
)

// RecommendationBadge renders a recommendation with its triage color.
func RecommendationBadge(rec scoring.Recommendation) string {
	switch rec {
	case scoring.Automate:
		return automateStyle.Render(string(rec))
	case scoring.Maybe:
		return maybeStyle.Render(string(rec))
	default:
		return dontStyle.Render(string(rec))
	}
}

// SortByTotal orders cases by total score descending, name ascending as the
// tie-breaker, without mutating the input.
func SortByTotal(cases []model.TestCase) []model.TestCase {
	sorted := make([]model.TestCase, len(cases))
	copy(sorted, cases)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Scores.Total != sorted[j].Scores.Total {
			return sorted[i].Scores.Total > sorted[j].Scores.Total
		}
		return sorted[i].TestName < sorted[j].TestName
	})
	return sorted
}

// RenderTable renders the prioritization table with colored recommendations.
func RenderTable(cases []model.TestCase) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Test case prioritization"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-24s %-20s %-18s %5s %5s %6s %4s %5s %5s  %s\n",
		"ID", "NAME", "TYPE", "RISK", "VALUE", "EFFORT", "HIST", "LEGAL", "TOTAL", "RECOMMENDATION")

	for _, tc := range SortByTotal(cases) {
		fmt.Fprintf(&b, "%-24s %-20s %-18s %5d %5d %6d %4d %5d %5d  %s\n",
			truncate(tc.ID, 24),
			truncate(tc.TestName, 20),
			tc.ChangeType,
			tc.Scores.Risk,
			tc.Scores.Value,
			tc.Scores.EffortOrEase(),
			tc.Scores.History,
			tc.Scores.Legal,
			tc.Scores.Total,
			RecommendationBadge(tc.Recommendation),
		)
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

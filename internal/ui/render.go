package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"autocase/internal/model"
	"autocase/internal/scoring"
)

// ProjectReport builds the markdown project report: triage summary, the
// prioritized case table, and the functionality inventory.
func ProjectReport(p *model.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.ProjectName)
	fmt.Fprintf(&b, "Last modified: %s\n\n", p.LastModified.Format("2006-01-02 15:04"))

	var automate, maybe, dont int
	for _, tc := range p.TestCases {
		switch tc.Recommendation {
		case scoring.Automate:
			automate++
		case scoring.Maybe:
			maybe++
		default:
			dont++
		}
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **%d** test cases (%d automate, %d maybe, %d don't automate)\n", len(p.TestCases), automate, maybe, dont)
	fmt.Fprintf(&b, "- **%d** inventoried functionality entries\n\n", len(p.ExistingFunctionality))

	if len(p.TestCases) > 0 {
		b.WriteString("## Test cases\n\n")
		b.WriteString("| Name | Type | Risk | Value | Effort | History | Legal | Total | Recommendation |\n")
		b.WriteString("|------|------|-----:|------:|-------:|--------:|------:|------:|----------------|\n")
		for _, tc := range SortByTotal(p.TestCases) {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %d | %d | %d | %s |\n",
				tc.TestName, tc.ChangeType,
				tc.Scores.Risk, tc.Scores.Value, tc.Scores.EffortOrEase(),
				tc.Scores.History, tc.Scores.Legal, tc.Scores.Total,
				tc.Recommendation)
		}
		b.WriteString("\n")
	}

	if len(p.ExistingFunctionality) > 0 {
		b.WriteString("## Existing functionality\n\n")
		for _, f := range p.ExistingFunctionality {
			fmt.Fprintf(&b, "- **%s** (%s, %s)\n", f.Name, f.Implementation, f.Status)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// CaseDetail builds the markdown detail view for a single case, including
// the score breakdown.
func CaseDetail(tc *model.TestCase) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tc.TestName)
	fmt.Fprintf(&b, "**ID:** `%s`  \n", tc.ID)
	fmt.Fprintf(&b, "**Change type:** %s  \n", tc.ChangeType)
	if tc.Source != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", tc.Source)
	}
	if tc.Ticket != "" {
		fmt.Fprintf(&b, "**Ticket:** %s  \n", tc.Ticket)
	}
	if tc.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", tc.Notes)
	}

	b.WriteString("\n## Score breakdown\n\n```\n")
	b.WriteString(tc.Explain())
	b.WriteString("\n```\n")

	return b.String()
}

// RenderMarkdown renders markdown for the terminal. On renderer failure the
// raw markdown is returned so output is never lost.
func RenderMarkdown(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs the overall score, mode, and per-category
// breakdown in a human-readable summary.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", result.Mode))
	if result.AutoReject {
		sb.WriteString("Verdict:  AUTO-REJECT (required keywords below threshold)\n")
	}
	sb.WriteString("\n")

	names := make([]string, 0, len(result.Breakdown))
	for name := range result.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		category := result.Breakdown[name]
		sb.WriteString(fmt.Sprintf("%-22s %5.1f / %.0f\n", name, category.Score, category.MaxScore))
	}

	p.printBox("SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs grouped issues, worst first, capped per group.
func (p *Printer) PrintIssues(issues types.IssueGroups) {
	total := len(issues.Critical) + len(issues.Warnings) + len(issues.Suggestions)
	if total == 0 {
		return
	}

	var sb strings.Builder
	writeGroup := func(label string, group []types.Issue) {
		if len(group) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s:\n", label))
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := group[i]
			text := issue.Message
			if len(text) > 48 {
				text = text[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", issue.Category, text))
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeGroup("Critical", issues.Critical)
	writeGroup("Warnings", issues.Warnings)
	writeGroup("Suggestions", issues.Suggestions)

	p.printBox(fmt.Sprintf("ISSUES (%d)", total), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrengths outputs what the resume already does well.
func (p *Printer) PrintStrengths(strengths []string) {
	if len(strengths) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range strengths {
		sb.WriteString(fmt.Sprintf("+ %s\n", s))
	}

	p.printBox("STRENGTHS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFacts outputs a summary of what the parser extracted, useful for
// judging whether a low score reflects the resume or a parse failure.
func (p *Printer) PrintFacts(facts *types.ResumeFacts) {
	if facts == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:       %d\n", facts.WordCount))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", facts.ParseConfidence))
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", len(facts.Experience)))
	sb.WriteString(fmt.Sprintf("Education:   %d entries\n", len(facts.Education)))

	if len(facts.Skills) > 0 {
		skills := strings.Join(facts.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:      %s\n", skills))
	}
	if facts.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:       %s\n", facts.Contact.Email))
	}

	p.printBox("EXTRACTED FACTS", strings.TrimSuffix(sb.String(), "\n"))
}

package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

func TestPrintScoreResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoreResult{
		OverallScore: 72,
		Mode:         types.ModeATSSimulation,
		Breakdown: map[string]types.CategoryScore{
			"required_keywords": {Score: 40, MaxScore: 50},
			"format_compliance": {Score: 18, MaxScore: 20},
		},
	}

	p.PrintScoreResult(result)

	output := buf.String()
	assert.Contains(t, output, "SCORE")
	assert.Contains(t, output, "72/100")
	assert.Contains(t, output, "required_keywords")
	assert.Contains(t, output, "ats_simulation")
}

func TestPrintScoreResultAutoReject(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreResult(&types.ScoreResult{
		OverallScore: 21,
		Mode:         types.ModeATSSimulation,
		AutoReject:   true,
	})

	assert.Contains(t, buf.String(), "AUTO-REJECT")
}

func TestPrintIssuesCapsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := make([]types.Issue, 8)
	for i := range warnings {
		warnings[i] = types.Issue{Severity: types.SeverityWarning, Category: "keywords", Message: "missing keyword"}
	}

	p.PrintIssues(types.IssueGroups{
		Critical: []types.Issue{{Severity: types.SeverityCritical, Category: "dates", Message: "employment gap"}},
		Warnings: warnings,
	})

	output := buf.String()
	assert.Contains(t, output, "ISSUES (9)")
	assert.Contains(t, output, "employment gap")
	assert.Contains(t, output, "and 3 more")
}

func TestPrintIssuesEmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIssues(types.IssueGroups{})

	assert.Empty(t, buf.String())
}

func TestPrintFactsTruncatesSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFacts(&types.ResumeFacts{
		WordCount:       312,
		ParseConfidence: 0.91,
		Skills:          []string{"go", "postgresql", "kubernetes", "docker", "terraform", "redis"},
		Contact:         types.Contact{Email: "jane@example.com"},
	})

	output := buf.String()
	assert.Contains(t, output, "312")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "...")
	assert.True(t, strings.Contains(output, "EXTRACTED FACTS"))
}

func TestPrintStrengths(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrengths([]string{"Strong keyword coverage", "Quantified achievements"})

	output := buf.String()
	assert.Contains(t, output, "STRENGTHS")
	assert.Contains(t, output, "Quantified achievements")
}

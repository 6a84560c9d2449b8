package scoring

import (
	"fmt"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// Resume length band, in words, for a one-to-two page document.
const (
	minResumeWords = 150
	maxResumeWords = 1100
)

// formatCompliance scores how reliably an ATS would ingest the
// document: parse confidence, recognizable sections, bullet structure,
// and overall length. Returns a 0-100 score plus itemized issues.
func formatCompliance(doc *types.ParsedDocument, facts *types.ResumeFacts) (float64, []types.Issue) {
	score := 100.0
	var issues []types.Issue

	confidence := facts.ParseConfidence
	if doc != nil {
		confidence = doc.Confidence
	}
	if confidence < 0.7 {
		score -= 25
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "format",
			Message:  "Document layout extracted with low confidence; complex formatting may confuse ATS parsers",
		})
	}

	labeled := 0
	for _, sec := range facts.Sections {
		if sec.Kind != types.SectionUnlabeled && sec.Kind != types.SectionContact {
			labeled++
		}
	}
	if labeled < 3 {
		score -= 20
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "format",
			Message:  "Fewer than three labeled sections detected; use standard headings like Experience, Education, Skills",
		})
	}

	if len(facts.AllBullets()) == 0 && len(facts.Experience) > 0 {
		score -= 15
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "format",
			Message:  "Work history has no bullet points; bullets scan better than prose",
			Section:  string(types.SectionExperience),
		})
	}

	switch {
	case facts.WordCount < minResumeWords:
		score -= 15
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "format",
			Message:  fmt.Sprintf("Resume is short at %d words; aim for at least %d", facts.WordCount, minResumeWords),
		})
	case facts.WordCount > maxResumeWords:
		score -= 10
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "format",
			Message:  fmt.Sprintf("Resume is long at %d words; tighten to under %d", facts.WordCount, maxResumeWords),
		})
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

func longestBulletWords(facts *types.ResumeFacts) int {
	longest := 0
	for _, bullet := range facts.AllBullets() {
		if words := len(strings.Fields(bullet)); words > longest {
			longest = words
		}
	}
	return longest
}

// structuralCompleteness checks that the expected resume building
// blocks are present at all.
func structuralCompleteness(facts *types.ResumeFacts) (float64, []types.Issue) {
	score := 100.0
	var issues []types.Issue

	deduct := func(points float64, severity types.Severity, message, section string) {
		score -= points
		issues = append(issues, types.Issue{
			Severity: severity,
			Category: "completeness",
			Message:  message,
			Section:  section,
		})
	}

	if facts.Contact.Email == "" {
		deduct(25, types.SeverityCritical, "No email address found", string(types.SectionContact))
	}
	if facts.Contact.Phone == "" {
		deduct(10, types.SeverityWarning, "No phone number found", string(types.SectionContact))
	}
	if len(facts.Experience) == 0 {
		deduct(30, types.SeverityCritical, "No work experience entries found", string(types.SectionExperience))
	}
	if len(facts.Education) == 0 {
		deduct(15, types.SeverityWarning, "No education entries found", string(types.SectionEducation))
	}
	if len(facts.Skills) == 0 {
		deduct(15, types.SeverityWarning, "No skills section found", string(types.SectionSkills))
	}
	if strings.TrimSpace(facts.Summary) == "" {
		deduct(5, types.SeveritySuggestion, "Consider adding a professional summary", string(types.SectionSummary))
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

// professionalPolish scores the overall finish in quality-coach mode.
// It starts from the red-flag picture and layers on presentation
// checks.
func professionalPolish(facts *types.ResumeFacts, redFlags []types.Issue) (float64, []types.Issue) {
	score := 100.0
	var issues []types.Issue

	for _, issue := range redFlags {
		switch issue.Severity {
		case types.SeverityCritical:
			score -= 25
		case types.SeverityWarning:
			score -= 10
		default:
			score -= 5
		}
	}

	if facts.Contact.Location == "" {
		score -= 5
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "polish",
			Message:  "Adding a location helps recruiters filter by region",
			Section:  string(types.SectionContact),
		})
	}
	if len(facts.Contact.Links) == 0 {
		score -= 5
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "polish",
			Message:  "Consider linking a portfolio, GitHub, or LinkedIn profile",
			Section:  string(types.SectionContact),
		})
	}

	if longestBulletWords(facts) > 40 {
		score -= 5
		issues = append(issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "polish",
			Message:  "Some bullets run past 40 words; split them for readability",
			Section:  string(types.SectionExperience),
		})
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

package types

import "sort"

// ScoringMode selects between the two scoring algorithms.
type ScoringMode string

// Scoring modes. ModeAuto resolves by job-description presence at the
// orchestration boundary and never appears in a ScoreResult.
const (
	ModeAuto          ScoringMode = "auto"
	ModeATSSimulation ScoringMode = "ats_simulation"
	ModeQualityCoach  ScoringMode = "quality_coach"
)

// Severity orders issues from most to least serious.
type Severity string

// Issue severities.
const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// severityRank maps severity to sort order (lower sorts first).
var severityRank = map[Severity]int{
	SeverityCritical:   0,
	SeverityWarning:    1,
	SeveritySuggestion: 2,
}

// Issue is a single piece of itemized feedback attached to a score.
type Issue struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Section  string   `json:"section,omitempty"`
}

// SortIssues orders issues by severity (critical > warning > suggestion),
// preserving relative order within a severity.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return severityRank[issues[i].Severity] < severityRank[issues[j].Severity]
	})
}

// AchievementScore holds the content-quality sub-scores for a bullet set.
// The caps are part of the scoring contract: strength never exceeds 15,
// clarity 10, specificity 5.
type AchievementScore struct {
	AchievementStrength float64 `json:"achievement_strength"`
	Clarity             float64 `json:"clarity"`
	Specificity         float64 `json:"specificity"`
}

// Total sums the sub-scores (out of 30).
func (a AchievementScore) Total() float64 {
	return a.AchievementStrength + a.Clarity + a.Specificity
}

// CategoryScore is one weighted component of the final score.
type CategoryScore struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Weight   float64 `json:"weight"`
	Detail   string  `json:"detail,omitempty"`
}

// ScoreResult is the final output of a scoring call. Created fresh on
// every call and never mutated after construction.
type ScoreResult struct {
	OverallScore int                      `json:"overall_score"`
	Mode         ScoringMode              `json:"mode"`
	Breakdown    map[string]CategoryScore `json:"breakdown"`
	Issues       IssueGroups              `json:"issues"`
	Strengths    []string                 `json:"strengths"`
	AutoReject   bool                     `json:"auto_reject,omitempty"`
}

// IssueGroups buckets issues by severity for presentation.
type IssueGroups struct {
	Critical    []Issue `json:"critical"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
}

// GroupIssues splits a sorted or unsorted issue list into severity buckets.
func GroupIssues(issues []Issue) IssueGroups {
	var groups IssueGroups
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			groups.Critical = append(groups.Critical, issue)
		case SeverityWarning:
			groups.Warnings = append(groups.Warnings, issue)
		default:
			groups.Suggestions = append(groups.Suggestions, issue)
		}
	}
	return groups
}

// Count returns the total number of issues across all buckets.
func (g IssueGroups) Count() int {
	return len(g.Critical) + len(g.Warnings) + len(g.Suggestions)
}

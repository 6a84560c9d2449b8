package redflags

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

func fixedValidator() *Validator {
	v := NewValidator(DefaultConfig())
	v.now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return v
}

func ym(year, month int) types.YearMonth {
	return types.YearMonth{Year: year, Month: month}
}

func entry(title string, start, end types.YearMonth) types.ExperienceEntry {
	return types.ExperienceEntry{
		Title:        title,
		Company:      "Acme",
		StartDate:    start,
		EndDate:      end,
		RawStartDate: start.String(),
		RawEndDate:   end.String(),
	}
}

func TestTwentyMonthGapIsCritical(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2018, 1), ym(2020, 1)),
		entry("Senior Engineer", ym(2021, 9), types.Present),
	}}

	issues := fixedValidator().Validate(facts, types.LevelEntry)

	var gaps []types.Issue
	for _, issue := range issues {
		if issue.Category == "gaps" {
			gaps = append(gaps, issue)
		}
	}
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityCritical, gaps[0].Severity)
	assert.Contains(t, gaps[0].Message, "20")
	assert.Contains(t, gaps[0].Message, "months")
}

func TestModerateGapIsWarning(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2019, 1), ym(2021, 1)),
		entry("Engineer II", ym(2021, 11), types.Present),
	}}

	issues := fixedValidator().Validate(facts, types.LevelEntry)
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "gaps", issues[0].Category)
}

func TestShortGapIsIgnored(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2019, 1), ym(2021, 1)),
		entry("Engineer II", ym(2021, 3), types.Present),
	}}
	assert.Empty(t, fixedValidator().Validate(facts, types.LevelEntry))
}

func TestEndBeforeStart(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2022, 6), ym(2021, 1)),
	}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)
	require.NotEmpty(t, issues)
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "ends before it starts")
}

func TestFutureStartDate(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2026, 1), types.Present),
	}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)
	require.NotEmpty(t, issues)
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "future")
}

func TestMissingDatesAreCritical(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: ym(2020, 1)},
	}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)
	require.NotEmpty(t, issues)
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "missing")
}

func TestMixedDateFormats(t *testing.T) {
	first := entry("Engineer", ym(2018, 1), ym(2020, 1))
	first.RawStartDate = "Jan 2018"
	first.RawEndDate = "Jan 2020"
	second := entry("Senior Engineer", ym(2020, 2), types.Present)
	second.RawStartDate = "02/2020"
	second.RawEndDate = "Present"

	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{first, second}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)

	found := false
	for _, issue := range issues {
		if issue.Category == "formatting" {
			found = true
			assert.Equal(t, types.SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, found, "expected an inconsistent-format warning")
}

func TestJobHopping(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2019, 1), ym(2019, 9)),
		entry("Engineer", ym(2019, 10), ym(2020, 5)),
		entry("Engineer", ym(2020, 6), types.Present),
	}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)

	found := false
	for _, issue := range issues {
		if issue.Category == "tenure" {
			found = true
			assert.Equal(t, types.SeverityWarning, issue.Severity)
			assert.Contains(t, issue.Message, "job-hopping")
		}
	}
	assert.True(t, found)
}

func TestCurrentRoleExcludedFromHopping(t *testing.T) {
	// Only one completed short tenure; the ongoing role does not count.
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2020, 1), ym(2020, 8)),
		entry("Engineer", ym(2025, 4), types.Present),
	}}
	for _, issue := range fixedValidator().Validate(facts, types.LevelEntry) {
		assert.NotEqual(t, "tenure", issue.Category)
	}
}

func TestSeniorClaimWithShortHistory(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Senior Engineer", ym(2023, 1), ym(2025, 1)),
	}}
	issues := fixedValidator().Validate(facts, types.LevelSenior)

	require.NotEmpty(t, issues)
	assert.Equal(t, "level", issues[0].Category)
	// Two years against a six-year expectation is more than a year
	// short, so the mismatch is critical.
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
	assert.True(t, strings.Contains(issues[0].Message, "senior"))
}

func TestLevelFitJustUnderIsWarning(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2019, 12), ym(2025, 6)),
	}}
	issues := fixedValidator().Validate(facts, types.LevelSenior)
	require.Len(t, issues, 1)
	assert.Equal(t, "level", issues[0].Category)
	assert.Equal(t, types.SeverityWarning, issues[0].Severity)
}

func TestCleanHistoryHasNoIssues(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2017, 1), ym(2020, 1)),
		entry("Senior Engineer", ym(2020, 2), types.Present),
	}}
	assert.Empty(t, fixedValidator().Validate(facts, types.LevelEntry))
}

func TestIssuesSortedBySeverity(t *testing.T) {
	facts := &types.ResumeFacts{Experience: []types.ExperienceEntry{
		entry("Engineer", ym(2018, 1), ym(2018, 8)),
		entry("Engineer", ym(2019, 1), ym(2019, 7)),
		entry("Engineer", ym(2022, 6), types.Present),
	}}
	issues := fixedValidator().Validate(facts, types.LevelEntry)
	require.NotEmpty(t, issues)
	for i := 1; i < len(issues); i++ {
		if issues[i-1].Severity == types.SeverityWarning {
			assert.NotEqual(t, types.SeverityCritical, issues[i].Severity)
		}
	}
}

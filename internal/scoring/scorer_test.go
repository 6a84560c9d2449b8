package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoHn11117/resume-scorer/internal/roles"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

func completeFacts() *types.ResumeFacts {
	return &types.ResumeFacts{
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Portland, OR",
			Links:    []string{"github.com/janedoe"},
		},
		Summary: "Backend engineer focused on reliability.",
		Experience: []types.ExperienceEntry{{
			Title:   "Engineer",
			Company: "Acme",
			Bullets: []string{"Cut API latency 40% by introducing a Redis cache"},
		}},
		Education: []types.EducationEntry{{Institution: "State University", Degree: "BS"}},
		Skills:    []string{"go", "postgresql"},
		Sections: []types.Section{
			{Kind: types.SectionExperience},
			{Kind: types.SectionEducation},
			{Kind: types.SectionSkills},
		},
		WordCount:       420,
		ParseConfidence: 0.92,
	}
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, types.ModeATSSimulation, ResolveMode(types.ModeAuto, true))
	assert.Equal(t, types.ModeQualityCoach, ResolveMode(types.ModeAuto, false))
	assert.Equal(t, types.ModeATSSimulation, ResolveMode("", true))

	// Explicit modes win regardless of job-description presence.
	assert.Equal(t, types.ModeQualityCoach, ResolveMode(types.ModeQualityCoach, true))
	assert.Equal(t, types.ModeATSSimulation, ResolveMode(types.ModeATSSimulation, false))
}

func TestATSFullMatchScoresHigh(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	result := scorer.Score(types.ModeATSSimulation, Inputs{
		Facts:     completeFacts(),
		Required:  &types.MatchResult{Matched: []string{"go", "sql"}, Percentage: 100},
		Preferred: &types.MatchResult{Matched: []string{"docker"}, Percentage: 100},
	})

	assert.Equal(t, types.ModeATSSimulation, result.Mode)
	assert.GreaterOrEqual(t, result.OverallScore, 90)
	assert.False(t, result.AutoReject)
	assert.Contains(t, result.Breakdown, "required_keywords")
	assert.Contains(t, result.Breakdown, "completeness")
}

func TestATSAutoRejectBelowThreshold(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	result := scorer.Score(types.ModeATSSimulation, Inputs{
		Facts: completeFacts(),
		Required: &types.MatchResult{
			Matched:    []string{"go"},
			Missing:    []string{"kubernetes", "terraform"},
			Percentage: 33.3,
		},
		Preferred: &types.MatchResult{Percentage: 100},
	})

	assert.True(t, result.AutoReject)
	assert.Less(t, result.OverallScore, 70)
}

func TestATSWeightsFollowConfig(t *testing.T) {
	cfg := DefaultConfig()
	scorer := NewScorer(cfg)
	result := scorer.Score(types.ModeATSSimulation, Inputs{
		Facts:     completeFacts(),
		Required:  &types.MatchResult{Percentage: 0, Missing: []string{"go"}},
		Preferred: &types.MatchResult{Percentage: 100},
	})

	// Required at 0% forfeits exactly its 50-point weight against a
	// clean document.
	assert.InDelta(t, 50, 100-result.OverallScore, 1)
}

func TestQualityModeUsesRoleWeights(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	weights := &roles.ScoringWeights{Keywords: 0.2, Content: 0.35, Format: 0.25, Polish: 0.20}
	result := scorer.Score(types.ModeQualityCoach, Inputs{
		Facts:       completeFacts(),
		RoleMatch:   &types.MatchResult{Percentage: 50, Missing: []string{"system design"}},
		Content:     types.AchievementScore{AchievementStrength: 12, Clarity: 8, Specificity: 4},
		RoleWeights: weights,
	})

	assert.Equal(t, types.ModeQualityCoach, result.Mode)
	assert.InDelta(t, 20, result.Breakdown["role_keywords"].Weight, 0.001)
	assert.InDelta(t, 35, result.Breakdown["content_quality"].Weight, 0.001)
	assert.False(t, result.AutoReject)
}

func TestQualityContentRescaled(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	result := scorer.Score(types.ModeQualityCoach, Inputs{
		Facts:   completeFacts(),
		Content: types.AchievementScore{AchievementStrength: 15, Clarity: 10, Specificity: 5},
	})
	assert.InDelta(t, 100, result.Breakdown["content_quality"].Score, 0.1)
}

func TestIssuesGroupedAndSorted(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	redFlags := []types.Issue{
		{Severity: types.SeverityWarning, Category: "gaps", Message: "gap"},
		{Severity: types.SeverityCritical, Category: "dates", Message: "bad dates"},
	}
	result := scorer.Score(types.ModeQualityCoach, Inputs{
		Facts:         completeFacts(),
		RedFlagIssues: redFlags,
	})

	require.NotEmpty(t, result.Issues.Critical)
	assert.Equal(t, "bad dates", result.Issues.Critical[0].Message)
	assert.NotEmpty(t, result.Issues.Warnings)
}

func TestMissingRequiredKeywordsBecomeWarnings(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	result := scorer.Score(types.ModeATSSimulation, Inputs{
		Facts: completeFacts(),
		Required: &types.MatchResult{
			Missing:    []string{"kubernetes", "aws", "terraform", "helm", "prometheus", "grafana"},
			Percentage: 0,
		},
	})

	found := false
	for _, issue := range result.Issues.Warnings {
		if issue.Category == "keywords" {
			found = true
			assert.Contains(t, issue.Message, "kubernetes")
			// Long lists are truncated.
			assert.NotContains(t, issue.Message, "grafana")
		}
	}
	assert.True(t, found)
}

func TestScoreClampedToRange(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	empty := &types.ResumeFacts{}
	result := scorer.Score(types.ModeQualityCoach, Inputs{
		Facts:     empty,
		RoleMatch: &types.MatchResult{Percentage: 0},
	})
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
}

func TestCompletenessFlagsMissingEmail(t *testing.T) {
	facts := completeFacts()
	facts.Contact.Email = ""
	score, issues := structuralCompleteness(facts)

	assert.Less(t, score, 100.0)
	require.NotEmpty(t, issues)
	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
}

func TestFormatComplianceLowConfidence(t *testing.T) {
	facts := completeFacts()
	facts.ParseConfidence = 0.4
	score, issues := formatCompliance(nil, facts)

	assert.LessOrEqual(t, score, 75.0)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Message, "confidence")
}

func TestPolishDeductsForRedFlags(t *testing.T) {
	facts := completeFacts()
	clean, _ := professionalPolish(facts, nil)
	flagged, _ := professionalPolish(facts, []types.Issue{
		{Severity: types.SeverityCritical},
		{Severity: types.SeverityWarning},
	})
	assert.InDelta(t, 35, clean-flagged, 0.001)
}

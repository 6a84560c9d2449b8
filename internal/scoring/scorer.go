// Package scoring aggregates sub-component results into a final
// ScoreResult under one of two modes: ats_simulation when a job
// description drives the evaluation, quality_coach otherwise.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/roles"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// ATSWeights are the ats_simulation category weights, in percent. They
// sum to 100.
type ATSWeights struct {
	Required     float64
	Preferred    float64
	Format       float64
	Completeness float64
}

// QualityWeights are the quality_coach category weights, in percent.
// Per-role overrides from the role taxonomy take precedence.
type QualityWeights struct {
	Keywords float64
	Content  float64
	Format   float64
	Polish   float64
}

// Config carries the calibration constants for both modes.
type Config struct {
	ATS                 ATSWeights
	Quality             QualityWeights
	AutoRejectThreshold float64
}

func DefaultConfig() Config {
	return Config{
		ATS: ATSWeights{
			Required:     50,
			Preferred:    20,
			Format:       20,
			Completeness: 10,
		},
		Quality: QualityWeights{
			Keywords: 25,
			Content:  30,
			Format:   25,
			Polish:   20,
		},
		AutoRejectThreshold: 60,
	}
}

// maxContentScore is the achievement+clarity+specificity ceiling.
const maxContentScore = 30.0

// Inputs are the sub-component results the scorer aggregates. Required
// and Preferred are set in ats_simulation mode; RoleMatch in
// quality_coach mode.
type Inputs struct {
	Doc           *types.ParsedDocument
	Facts         *types.ResumeFacts
	Required      *types.MatchResult
	Preferred     *types.MatchResult
	RoleMatch     *types.MatchResult
	Content       types.AchievementScore
	RedFlagIssues []types.Issue
	RoleWeights   *roles.ScoringWeights
}

// Scorer applies mode-dependent weighting. Stateless and safe for
// concurrent use.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// ResolveMode collapses ModeAuto by job-description presence. An
// explicit mode always wins.
func ResolveMode(requested types.ScoringMode, hasJobDescription bool) types.ScoringMode {
	if requested != "" && requested != types.ModeAuto {
		return requested
	}
	if hasJobDescription {
		return types.ModeATSSimulation
	}
	return types.ModeQualityCoach
}

// Score produces a fresh ScoreResult. The result is never mutated
// afterwards; rescoring builds a new one.
func (s *Scorer) Score(mode types.ScoringMode, in Inputs) *types.ScoreResult {
	switch mode {
	case types.ModeATSSimulation:
		return s.scoreATS(in)
	default:
		return s.scoreQuality(in)
	}
}

func (s *Scorer) scoreATS(in Inputs) *types.ScoreResult {
	w := s.cfg.ATS

	requiredPct := matchPercentage(in.Required)
	preferredPct := matchPercentage(in.Preferred)
	format, formatIssues := formatCompliance(in.Doc, in.Facts)
	completeness, completenessIssues := structuralCompleteness(in.Facts)

	overall := requiredPct*w.Required/100 +
		preferredPct*w.Preferred/100 +
		format*w.Format/100 +
		completeness*w.Completeness/100

	issues := make([]types.Issue, 0, len(in.RedFlagIssues)+8)
	issues = append(issues, in.RedFlagIssues...)
	issues = append(issues, formatIssues...)
	issues = append(issues, completenessIssues...)
	issues = append(issues, missingKeywordIssues(in.Required, in.Preferred)...)
	types.SortIssues(issues)

	breakdown := map[string]types.CategoryScore{
		"required_keywords": {
			Score: round1(requiredPct), MaxScore: 100, Weight: w.Required,
			Detail: matchDetail(in.Required),
		},
		"preferred_keywords": {
			Score: round1(preferredPct), MaxScore: 100, Weight: w.Preferred,
			Detail: matchDetail(in.Preferred),
		},
		"format_compliance": {
			Score: round1(format), MaxScore: 100, Weight: w.Format,
		},
		"completeness": {
			Score: round1(completeness), MaxScore: 100, Weight: w.Completeness,
		},
	}

	return &types.ScoreResult{
		OverallScore: clampScore(overall),
		Mode:         types.ModeATSSimulation,
		Breakdown:    breakdown,
		Issues:       types.GroupIssues(issues),
		Strengths:    atsStrengths(requiredPct, preferredPct, format),
		AutoReject:   requiredPct < s.cfg.AutoRejectThreshold,
	}
}

func (s *Scorer) scoreQuality(in Inputs) *types.ScoreResult {
	w := s.cfg.Quality
	if in.RoleWeights != nil {
		w = QualityWeights{
			Keywords: in.RoleWeights.Keywords * 100,
			Content:  in.RoleWeights.Content * 100,
			Format:   in.RoleWeights.Format * 100,
			Polish:   in.RoleWeights.Polish * 100,
		}
	}

	keywordPct := matchPercentage(in.RoleMatch)
	contentPct := in.Content.Total() / maxContentScore * 100
	format, formatIssues := formatCompliance(in.Doc, in.Facts)
	polish, polishIssues := professionalPolish(in.Facts, in.RedFlagIssues)

	overall := keywordPct*w.Keywords/100 +
		contentPct*w.Content/100 +
		format*w.Format/100 +
		polish*w.Polish/100

	issues := make([]types.Issue, 0, len(in.RedFlagIssues)+8)
	issues = append(issues, in.RedFlagIssues...)
	issues = append(issues, formatIssues...)
	issues = append(issues, polishIssues...)
	issues = append(issues, missingKeywordIssues(in.RoleMatch, nil)...)
	types.SortIssues(issues)

	breakdown := map[string]types.CategoryScore{
		"role_keywords": {
			Score: round1(keywordPct), MaxScore: 100, Weight: w.Keywords,
			Detail: matchDetail(in.RoleMatch),
		},
		"content_quality": {
			Score: round1(contentPct), MaxScore: 100, Weight: w.Content,
			Detail: fmt.Sprintf("strength %.1f, clarity %.1f, specificity %.1f",
				in.Content.AchievementStrength, in.Content.Clarity, in.Content.Specificity),
		},
		"format_compliance": {
			Score: round1(format), MaxScore: 100, Weight: w.Format,
		},
		"professional_polish": {
			Score: round1(polish), MaxScore: 100, Weight: w.Polish,
		},
	}

	return &types.ScoreResult{
		OverallScore: clampScore(overall),
		Mode:         types.ModeQualityCoach,
		Breakdown:    breakdown,
		Issues:       types.GroupIssues(issues),
		Strengths:    qualityStrengths(keywordPct, contentPct, in.RedFlagIssues),
	}
}

func matchPercentage(m *types.MatchResult) float64 {
	if m == nil {
		return 100
	}
	return m.Percentage
}

func matchDetail(m *types.MatchResult) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%d matched, %d missing", len(m.Matched), len(m.Missing))
}

// missingKeywordIssues turns unmatched keywords into suggestions,
// capped so a long job description does not drown the report.
func missingKeywordIssues(required, preferred *types.MatchResult) []types.Issue {
	const maxListed = 5
	var issues []types.Issue
	add := func(m *types.MatchResult, label string, severity types.Severity) {
		if m == nil || len(m.Missing) == 0 {
			return
		}
		missing := m.Missing
		if len(missing) > maxListed {
			missing = missing[:maxListed]
		}
		issues = append(issues, types.Issue{
			Severity: severity,
			Category: "keywords",
			Message:  fmt.Sprintf("Missing %s keywords: %s", label, strings.Join(missing, ", ")),
			Section:  string(types.SectionSkills),
		})
	}
	add(required, "required", types.SeverityWarning)
	add(preferred, "preferred", types.SeveritySuggestion)
	return issues
}

func atsStrengths(requiredPct, preferredPct, format float64) []string {
	var strengths []string
	if requiredPct >= 80 {
		strengths = append(strengths, "Strong coverage of required keywords")
	}
	if preferredPct >= 80 {
		strengths = append(strengths, "Covers most preferred keywords")
	}
	if format >= 80 {
		strengths = append(strengths, "Clean, ATS-friendly formatting")
	}
	return strengths
}

func qualityStrengths(keywordPct, contentPct float64, redFlags []types.Issue) []string {
	var strengths []string
	if keywordPct >= 70 {
		strengths = append(strengths, "Good alignment with role-typical keywords")
	}
	if contentPct >= 75 {
		strengths = append(strengths, "Achievement statements are specific and results-oriented")
	}
	critical := false
	for _, issue := range redFlags {
		if issue.Severity == types.SeverityCritical {
			critical = true
			break
		}
	}
	if !critical && len(redFlags) == 0 {
		strengths = append(strengths, "Consistent work history with no red flags")
	}
	return strengths
}

func clampScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

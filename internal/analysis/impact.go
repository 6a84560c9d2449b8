package analysis

import (
	"math"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// Strength bands for a single bullet, applied in order of precedence.
const (
	strengthFull    = 14.5 // context + strong action + 2 metrics + causality
	strengthStrong  = 12.0 // strong action + metric
	strengthSolid   = 9.0  // moderate action + metric or context
	strengthBasic   = 5.0  // any recognized action verb
	strengthMinimal = 1.0

	maxStrength = 15.0
)

// Level multipliers penalize bullets that undershoot the verb tier a
// candidate's level implies.
const (
	entryWeakVerbMultiplier  = 0.8  // entry level, duty-phrase or tier-0 verb
	midWeakVerbMultiplier    = 0.85 // mid level, verb below tier 2
	seniorBorderlineVerbMult = 0.9  // senior level, verb exactly tier 2
	seniorWeakVerbMultiplier = 0.6  // senior level, verb below tier 2
)

// ScoreAchievements scores a group of bullets for structural strength,
// clarity, and specificity. Summary-section text is rescaled so a prose
// paragraph is not penalized for lacking bullet structure.
func ScoreAchievements(bullets []string, kind types.SectionKind, level types.Level) types.AchievementScore {
	if len(bullets) == 0 {
		return types.AchievementScore{}
	}

	var strengthSum float64
	for _, bullet := range bullets {
		strengthSum += bulletStrength(bullet, level)
	}
	strength := strengthSum / float64(len(bullets))
	if strength > maxStrength {
		strength = maxStrength
	}

	clarity := scoreClarity(bullets)
	specificity := scoreSpecificity(bullets)

	if kind == types.SectionSummary {
		// Summaries are prose, not achievement bullets. Score them on
		// clarity and specificity only, rescaled onto the 30-point axis.
		scaledClarity := clarity * 1.8
		scaledSpecificity := specificity * 2.4
		if total := scaledClarity + scaledSpecificity; total > 30 {
			factor := 30 / total
			scaledClarity *= factor
			scaledSpecificity *= factor
		}
		return types.AchievementScore{
			Clarity:     round1(scaledClarity),
			Specificity: round1(scaledSpecificity),
		}
	}

	return types.AchievementScore{
		AchievementStrength: round1(strength),
		Clarity:             round1(clarity),
		Specificity:         round1(specificity),
	}
}

// bulletStrength assigns one bullet to a strength band, then applies
// the level multiplier for underpowered verbs.
func bulletStrength(bullet string, level types.Level) float64 {
	tier := classifyLeadingVerb(bullet)
	metrics := countMetrics(bullet)
	context := hasContext(bullet)
	causal := hasCausality(bullet)

	var base float64
	switch {
	case context && tier >= TierLeadership && metrics >= 2 && causal:
		base = strengthFull
	case tier >= TierLeadership && metrics >= 1:
		base = strengthStrong
	case tier >= TierExecution && (metrics >= 1 || context):
		base = strengthSolid
	case tier >= TierSupport:
		base = strengthBasic
	default:
		base = strengthMinimal
	}

	return base * levelMultiplier(tier, level)
}

func levelMultiplier(tier int, level types.Level) float64 {
	switch level {
	case types.LevelEntry:
		if tier == TierWeak {
			return entryWeakVerbMultiplier
		}
	case types.LevelMid:
		if tier < TierExecution {
			return midWeakVerbMultiplier
		}
	case types.LevelSenior:
		if tier == TierExecution {
			return seniorBorderlineVerbMult
		}
		if tier < TierExecution {
			return seniorWeakVerbMultiplier
		}
	}
	return 1.0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

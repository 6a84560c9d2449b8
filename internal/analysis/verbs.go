// Package analysis scores achievement bullets for structural strength
// (context-action-result), sentence clarity, and specificity.
package analysis

import "strings"

// Verb tiers classify the leading action of a bullet from weak duty
// phrasing (0) up to transformational verbs (4). Unknown verbs default
// to tier 1 (neutral support).
const (
	TierWeak             = 0
	TierSupport          = 1
	TierExecution        = 2
	TierLeadership       = 3
	TierTransformational = 4
)

// weakPhrases are two-word duty openers checked before single verbs so
// "responsible for" is not misread as an unknown verb.
var weakLeadingPhrases = []string{
	"responsible for", "duties included", "tasked with", "worked on",
	"helped with", "involved in", "in charge", "assisted with",
	"participated in",
}

var verbTiers = map[string]int{
	// Tier 0: weak / duty verbs
	"helped": TierWeak, "assisted": TierWeak, "participated": TierWeak,
	"worked": TierWeak, "supported": TierWeak, "attended": TierWeak,
	"handled": TierWeak, "involved": TierWeak,

	// Tier 1: support verbs
	"maintained": TierSupport, "updated": TierSupport, "documented": TierSupport,
	"monitored": TierSupport, "tested": TierSupport, "reviewed": TierSupport,
	"collaborated": TierSupport, "contributed": TierSupport, "performed": TierSupport,
	"prepared": TierSupport, "organized": TierSupport, "tracked": TierSupport,

	// Tier 2: execution verbs
	"built": TierExecution, "developed": TierExecution, "implemented": TierExecution,
	"created": TierExecution, "designed": TierExecution, "delivered": TierExecution,
	"deployed": TierExecution, "automated": TierExecution, "configured": TierExecution,
	"integrated": TierExecution, "migrated": TierExecution, "analyzed": TierExecution,
	"resolved": TierExecution, "shipped": TierExecution, "engineered": TierExecution,
	"wrote": TierExecution, "debugged": TierExecution, "refactored": TierExecution,
	"reduced": TierExecution, "improved": TierExecution, "optimized": TierExecution,
	"increased": TierExecution, "cut": TierExecution, "grew": TierExecution,
	"scaled": TierExecution, "streamlined": TierExecution, "accelerated": TierExecution,

	// Tier 3: leadership verbs
	"led": TierLeadership, "managed": TierLeadership, "directed": TierLeadership,
	"coordinated": TierLeadership, "mentored": TierLeadership, "supervised": TierLeadership,
	"drove": TierLeadership, "owned": TierLeadership, "championed": TierLeadership,
	"headed": TierLeadership, "orchestrated": TierLeadership, "guided": TierLeadership,

	// Tier 4: transformational verbs
	"transformed": TierTransformational, "pioneered": TierTransformational,
	"revolutionized": TierTransformational, "spearheaded": TierTransformational,
	"established": TierTransformational, "founded": TierTransformational,
	"launched": TierTransformational, "redefined": TierTransformational,
	"reinvented": TierTransformational, "architected": TierTransformational,
}

// classifyLeadingVerb returns the tier of a bullet's leading action. The
// two-word leading phrase is checked against the duty list first, then
// the first word against the tier dictionary.
func classifyLeadingVerb(bullet string) int {
	lower := strings.ToLower(strings.TrimSpace(bullet))
	for _, phrase := range weakLeadingPhrases {
		if strings.HasPrefix(lower, phrase) {
			return TierWeak
		}
	}
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return TierWeak
	}
	first := strings.Trim(fields[0], ".,;:!")
	if tier, ok := verbTiers[first]; ok {
		return tier
	}
	return TierSupport
}

package keywords

import (
	"github.com/agnivade/levenshtein"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// MatcherConfig holds the matcher's calibration knobs.
type MatcherConfig struct {
	// FuzzyThreshold is the minimum normalized edit-distance similarity
	// for the fuzzy fallback to count as a match.
	FuzzyThreshold float64
}

// DefaultMatcherConfig returns the default matching knobs.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{FuzzyThreshold: 0.8}
}

// Matcher resolves keyword presence in free text through exact token
// match, synonym expansion, and a fuzzy edit-distance fallback, in that
// order.
type Matcher struct {
	cfg      MatcherConfig
	synonyms *SynonymTable
}

// NewMatcher builds a matcher over a synonym table.
func NewMatcher(cfg MatcherConfig, synonyms *SynonymTable) *Matcher {
	return &Matcher{cfg: cfg, synonyms: synonyms}
}

// Match reports whether the term (or any of its synonym variants, or a
// fuzzy-close token) occurs in the text.
func (m *Matcher) Match(term, text string) bool {
	return m.matchTokens(term, Tokenize(text))
}

// MatchAll matches every keyword against the text and returns the
// aggregate result. The percentage is 100 for an empty keyword list.
func (m *Matcher) MatchAll(kws []string, text string) types.MatchResult {
	tokens := Tokenize(text)
	var matched, missing []string
	for _, kw := range kws {
		if m.matchTokens(kw, tokens) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return types.NewMatchResult(matched, missing)
}

// matchTokens applies the three-stage resolution against a prebuilt
// token set.
func (m *Matcher) matchTokens(term string, tokens TokenSet) bool {
	normalized := Normalize(term)
	if normalized == "" {
		return false
	}
	if tokens.Contains(normalized) {
		return true
	}
	candidates := append([]string{normalized}, m.synonyms.Variants(normalized)...)
	for _, variant := range candidates[1:] {
		if tokens.Contains(variant) {
			return true
		}
	}
	// Fuzzy fallback: any candidate close enough to any token.
	for _, candidate := range candidates {
		for _, token := range tokens.Tokens() {
			if similarity(candidate, token) >= m.cfg.FuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// similarity is the normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}

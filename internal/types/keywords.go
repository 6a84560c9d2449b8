package types

// KeywordSet is the classified output of job-description keyword
// extraction. The two sets are disjoint by construction: a term is
// required or preferred, never both.
type KeywordSet struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// IsEmpty reports whether no keywords were extracted at all.
func (ks KeywordSet) IsEmpty() bool {
	return len(ks.Required) == 0 && len(ks.Preferred) == 0
}

// MatchResult is the outcome of matching a keyword list against a text
// body. Percentage is 100*|matched|/(|matched|+|missing|), defined as
// 100 for an empty keyword list (trivial match).
type MatchResult struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage float64  `json:"percentage"`
}

// NewMatchResult builds a MatchResult with the percentage invariant applied.
func NewMatchResult(matched, missing []string) MatchResult {
	total := len(matched) + len(missing)
	pct := 100.0
	if total > 0 {
		pct = 100.0 * float64(len(matched)) / float64(total)
	}
	return MatchResult{Matched: matched, Missing: missing, Percentage: pct}
}

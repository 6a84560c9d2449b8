package analysis

import "regexp"

// metricPatterns detect quantified results. Order matters only for
// readability; counts are summed across all patterns with overlapping
// spans deduplicated by position.
var metricPatterns = []*regexp.Regexp{
	// Percentages: 40%, 3.5 percent
	regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:%|percent)`),
	// Currency: $2M, $1,500, €300k
	regexp.MustCompile(`[$€£]\s?\d[\d,.]*\s*(?:[kKmMbB](?:illion)?)?`),
	// Multipliers: 3x, 10X
	regexp.MustCompile(`\b\d+(?:\.\d+)?x\b|\b\d+(?:\.\d+)?X\b`),
	// Counts with scale words: 5 million requests, 200K transactions
	regexp.MustCompile(`\b\d[\d,.]*\s*(?:[kKmMbB]\b|thousand|million|billion)`),
	// Time spans: 6 months, 3 weeks, 2 years
	regexp.MustCompile(`(?i)\b\d+\s*(?:second|minute|hour|day|week|month|year)s?\b`),
	// Plain counts attached to nouns: team of 8, 12 services
	regexp.MustCompile(`(?i)\b(?:of|to)\s+\d+\b|\b\d+\+?\s+[a-z]`),
}

// countMetrics returns the number of distinct quantity mentions in the
// text, merging overlapping pattern hits.
func countMetrics(text string) int {
	type span struct{ start, end int }
	var spans []span
	for _, pattern := range metricPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, span{loc[0], loc[1]})
		}
	}
	if len(spans) == 0 {
		return 0
	}
	// Merge overlaps so "$2M" is one metric, not currency+count.
	merged := 0
	used := make([]bool, len(spans))
	for i := range spans {
		if used[i] {
			continue
		}
		used[i] = true
		for j := i + 1; j < len(spans); j++ {
			if used[j] {
				continue
			}
			if spans[j].start < spans[i].end && spans[j].end > spans[i].start {
				if spans[j].end > spans[i].end {
					spans[i].end = spans[j].end
				}
				if spans[j].start < spans[i].start {
					spans[i].start = spans[j].start
				}
				used[j] = true
			}
		}
		merged++
	}
	return merged
}

package analysis

import (
	"strings"
	"sync"

	"github.com/JoHn11117/resume-scorer/internal/data"
	"github.com/JoHn11117/resume-scorer/internal/keywords"
)

// genericTechWords are category mentions that gesture at technology
// without naming one.
var genericTechWords = []string{
	"database", "databases", "cloud", "framework", "frameworks", "tools",
	"software", "systems", "technologies", "applications", "platform",
	"platforms", "programming", "scripting", "infrastructure", "services",
}

// vagueMagnitudeWords dilute an otherwise precise metric.
var vagueMagnitudeWords = []string{
	"significantly", "substantially", "greatly", "dramatically",
	"considerably", "massively", "huge", "massive", "vast", "tremendous",
}

var (
	technicalTermsOnce sync.Once
	technicalTerms     []string
)

func loadTechnicalTerms() []string {
	technicalTermsOnce.Do(func() {
		var terms struct {
			Technical []string `json:"technical"`
		}
		data.MustLoad("terms.json", &terms)
		technicalTerms = terms.Technical
	})
	return technicalTerms
}

// scoreSpecificity returns 0-5: technology concreteness (0-2), metric
// precision (0-2), and verb concreteness (0-1).
func scoreSpecificity(bullets []string) float64 {
	text := strings.Join(bullets, "\n")
	return float64(technologyScore(text) + metricScore(text) + actionScore(bullets))
}

// technologyScore compares named technologies against generic category
// mentions, line by line. A line that names its technologies may also
// mention the category ("services in Go"); that is elaboration, not
// vagueness, so generic words only count on lines with no named
// technology. Text that never talks about technology at all scores a
// neutral 1 rather than 0.
func technologyScore(text string) int {
	concrete, generic := 0, 0
	for _, line := range strings.Split(text, "\n") {
		tokens := keywords.Tokenize(line)
		lineConcrete := 0
		for _, term := range loadTechnicalTerms() {
			if tokens.Contains(keywords.Normalize(term)) {
				lineConcrete++
			}
		}
		concrete += lineConcrete
		if lineConcrete > 0 {
			continue
		}
		for _, word := range genericTechWords {
			if tokens.Contains(word) {
				generic++
			}
		}
	}

	total := concrete + generic
	if total == 0 {
		return 1
	}
	ratio := float64(concrete) / float64(total)
	switch {
	case ratio >= 0.8:
		return 2
	case ratio >= 0.5:
		return 1
	}
	return 0
}

// metricScore rewards precise numbers and punishes vague magnitude
// language.
func metricScore(text string) int {
	metrics := countMetrics(text)
	vague := 0
	lower := strings.ToLower(text)
	for _, word := range vagueMagnitudeWords {
		if containsWholePhrase(lower, word) {
			vague++
		}
	}
	switch {
	case metrics >= 3 && vague == 0:
		return 2
	case metrics >= 1 && vague <= 1:
		return 1
	}
	return 0
}

// actionScore is 1 when concrete verbs (execution tier and up) hold
// their own against weak and generic verbs.
func actionScore(bullets []string) int {
	concrete, generic := 0, 0
	for _, bullet := range bullets {
		for _, word := range strings.Fields(strings.ToLower(bullet)) {
			word = strings.Trim(word, ".,;:()!?")
			tier, known := verbTiers[word]
			if !known {
				continue
			}
			if tier >= TierExecution {
				concrete++
			} else {
				generic++
			}
		}
	}
	if concrete > 0 && concrete >= generic {
		return 1
	}
	return 0
}

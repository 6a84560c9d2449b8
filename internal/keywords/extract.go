package keywords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/data"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// requiredIndicators and preferredIndicators are the context phrases
// that classify a nearby term. Explicit indicators always beat the
// frequency fallback.
var requiredIndicators = []string{
	"required", "must have", "must-have", "essential", "minimum",
	"mandatory", "need to have", "needs to have", "proficiency in",
	"proficient in", "strong experience",
}

var preferredIndicators = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "a plus",
	"plus but", "desirable", "ideally", "familiarity with", "would be great",
}

// ExtractorConfig holds the extractor's calibration knobs.
type ExtractorConfig struct {
	// ContextWindow is the number of characters inspected on each side
	// of a term occurrence for indicator phrases.
	ContextWindow int
	// FrequencyThreshold is the occurrence count at which a term with no
	// explicit indicator is classified required rather than preferred.
	FrequencyThreshold int
}

// DefaultExtractorConfig returns the default extraction knobs.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{ContextWindow: 50, FrequencyThreshold: 3}
}

// termDictionaries is the shape of the embedded terms file.
type termDictionaries struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Extractor classifies job-description terms into required and preferred
// keyword sets using static term dictionaries and context heuristics.
type Extractor struct {
	cfg      ExtractorConfig
	terms    []string
	patterns map[string]*regexp.Regexp
}

// NewExtractor builds an extractor over the given term dictionaries.
func NewExtractor(cfg ExtractorConfig, technical, soft []string) *Extractor {
	e := &Extractor{
		cfg:      cfg,
		patterns: make(map[string]*regexp.Regexp),
	}
	seen := make(map[string]struct{})
	for _, term := range append(append([]string{}, technical...), soft...) {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		e.terms = append(e.terms, normalized)
		e.patterns[normalized] = wordBoundaryPattern(normalized)
	}
	sort.Strings(e.terms)
	return e
}

// LoadExtractor builds an extractor from the embedded term dictionaries.
func LoadExtractor(cfg ExtractorConfig) (*Extractor, error) {
	var dicts termDictionaries
	if err := data.Load("terms.json", &dicts); err != nil {
		return nil, fmt.Errorf("loading term dictionaries: %w", err)
	}
	return NewExtractor(cfg, dicts.Technical, dicts.Soft), nil
}

// Extract scans a job description and returns the classified keyword
// sets. Classification precedence is fixed: explicit required indicator,
// then explicit preferred indicator, then the frequency fallback.
func (e *Extractor) Extract(jobDescription string) types.KeywordSet {
	lower := strings.ToLower(jobDescription)
	var set types.KeywordSet

	for _, term := range e.terms {
		pattern := e.patterns[term]
		locations := pattern.FindAllStringIndex(lower, -1)
		if len(locations) == 0 {
			continue
		}

		classified := ""
		for _, loc := range locations {
			window := contextWindow(lower, loc[0], loc[1], e.cfg.ContextWindow)
			if containsAny(window, requiredIndicators) {
				classified = "required"
				break
			}
			if classified == "" && containsAny(window, preferredIndicators) {
				classified = "preferred"
			}
		}
		if classified == "" {
			if len(locations) >= e.cfg.FrequencyThreshold {
				classified = "required"
			} else {
				classified = "preferred"
			}
		}

		if classified == "required" {
			set.Required = append(set.Required, term)
		} else {
			set.Preferred = append(set.Preferred, term)
		}
	}
	return set
}

// contextWindow slices up to radius characters around an occurrence,
// truncated at sentence boundaries so an indicator in a neighboring
// sentence never classifies this term.
func contextWindow(text string, start, end, radius int) string {
	from := start - radius
	if from < 0 {
		from = 0
	}
	to := end + radius
	if to > len(text) {
		to = len(text)
	}
	if idx := strings.LastIndexAny(text[from:start], ".;\n"); idx >= 0 {
		from += idx + 1
	}
	if idx := strings.IndexAny(text[end:to], ".;\n"); idx >= 0 {
		to = end + idx
	}
	return text[from:to]
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// wordBoundaryPattern builds a case-insensitive whole-word matcher that
// tolerates terms containing regex metacharacters ("c++", "ci/cd").
func wordBoundaryPattern(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(term)
	// \b misbehaves next to non-word runes like '+'; anchor on explicit
	// non-word-character context instead.
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9+#])` + escaped + `(?:$|[^a-z0-9+#])`)
}

package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSynonyms() *SynonymTable {
	return NewSynonymTable(map[string][]string{
		"kubernetes":       {"k8s"},
		"go":               {"golang"},
		"machine learning": {"ml"},
	})
}

func testMatcher() *Matcher {
	return NewMatcher(DefaultMatcherConfig(), testSynonyms())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "c++ and node.js", Normalize("C++ AND Node.js!"))
	assert.Equal(t, "ci/cd pipeline", Normalize("  CI/CD -- pipeline "))
	assert.Equal(t, "", Normalize("  ,;  "))
}

func TestTokenize_UnigramsAndBigrams(t *testing.T) {
	tokens := Tokenize("Experienced in machine learning systems")
	assert.True(t, tokens.Contains("machine"))
	assert.True(t, tokens.Contains("machine learning"))
	assert.True(t, tokens.Contains("learning systems"))
	assert.False(t, tokens.Contains("machine systems"))
}

func TestSynonymTable_Bidirectional(t *testing.T) {
	table := testSynonyms()
	assert.Contains(t, table.Variants("kubernetes"), "k8s")
	assert.Contains(t, table.Variants("k8s"), "kubernetes")
	assert.Empty(t, table.Variants("fortran"))
}

func TestSynonymTable_SiblingVariants(t *testing.T) {
	table := NewSynonymTable(map[string][]string{"javascript": {"js", "ecmascript"}})
	variants := table.Variants("js")
	assert.Contains(t, variants, "javascript")
	assert.Contains(t, variants, "ecmascript")
}

func TestLoadSynonymTable_EmbeddedData(t *testing.T) {
	table, err := LoadSynonymTable()
	require.NoError(t, err)
	assert.Contains(t, table.Variants("aws"), "amazon web services")
	assert.Contains(t, table.Variants("golang"), "go")
}

func TestMatch_Exact(t *testing.T) {
	m := testMatcher()
	assert.True(t, m.Match("Go", "Built services in Go and Python"))
	assert.False(t, m.Match("rust", "Built services in Go and Python"))
}

func TestMatch_SynonymSymmetry(t *testing.T) {
	m := testMatcher()
	// Canonical term found via its variant in text, and vice versa.
	assert.True(t, m.Match("kubernetes", "Deployed workloads on k8s clusters"))
	assert.True(t, m.Match("k8s", "Deployed workloads on Kubernetes clusters"))
	assert.True(t, m.Match("ml", "Applied machine learning models"))
}

func TestMatch_FuzzyFallback(t *testing.T) {
	m := testMatcher()
	// One-letter typo in an 10-letter token clears the 0.8 threshold.
	assert.True(t, m.Match("postgresql", "Tuned postgresqk instances"))
	assert.False(t, m.Match("go", "completely unrelated text"))
}

func TestMatchAll_Percentage(t *testing.T) {
	m := testMatcher()
	result := m.MatchAll([]string{"go", "kubernetes", "rust"}, "Go services on k8s")
	assert.ElementsMatch(t, []string{"go", "kubernetes"}, result.Matched)
	assert.Equal(t, []string{"rust"}, result.Missing)
	assert.InDelta(t, 100.0*2/3, result.Percentage, 0.001)
}

func TestMatchAll_EmptyKeywordList(t *testing.T) {
	m := testMatcher()
	result := m.MatchAll(nil, "any text")
	assert.Equal(t, 100.0, result.Percentage)
}

func TestExtract_IndicatorClassification(t *testing.T) {
	e, err := LoadExtractor(DefaultExtractorConfig())
	require.NoError(t, err)

	set := e.Extract("Required: Python, AWS. Nice to have: Terraform.")
	assert.Contains(t, set.Required, "python")
	assert.Contains(t, set.Required, "aws")
	assert.Contains(t, set.Preferred, "terraform")
	assert.NotContains(t, set.Required, "terraform")
}

func TestExtract_FrequencyFallback(t *testing.T) {
	e := NewExtractor(DefaultExtractorConfig(), []string{"go", "redis"}, nil)
	jd := "We use Go everywhere. Go services, Go tooling. Some Redis too."
	set := e.Extract(jd)
	assert.Contains(t, set.Required, "go")     // 3 occurrences
	assert.Contains(t, set.Preferred, "redis") // 1 occurrence, no indicator
}

func TestExtract_RequiredBeatsFrequency(t *testing.T) {
	e := NewExtractor(DefaultExtractorConfig(), []string{"terraform"}, nil)
	set := e.Extract("Terraform experience is required.")
	assert.Contains(t, set.Required, "terraform")
}

func TestExtract_DisjointSets(t *testing.T) {
	e, err := LoadExtractor(DefaultExtractorConfig())
	require.NoError(t, err)
	set := e.Extract("Must have Kubernetes. Kubernetes is a bonus too.")
	inRequired := contains(set.Required, "kubernetes")
	inPreferred := contains(set.Preferred, "kubernetes")
	assert.True(t, inRequired)
	assert.False(t, inPreferred)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

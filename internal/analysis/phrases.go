package analysis

import (
	"regexp"
	"strings"
)

// contextConnectors signal situational context in a bullet (the C in
// context-action-result).
var contextConnectors = []string{
	"for", "across", "managing", "given", "within", "during", "under",
	"amid", "serving", "supporting", "on behalf of",
}

// causalConnectors signal an action-to-result link (the R in
// context-action-result).
var causalConnectors = []string{
	"by", "through", "resulting in", "leading to", "which led to",
	"driving", "enabling", "yielding", "contributing to",
}

// Weak-phrase categories. The clarity deduction counts distinct
// categories hit, not individual phrases, so a bullet full of filler
// still only loses one point for filler.
var weakPhraseCategories = map[string][]string{
	"responsibility": {
		"responsible for", "duties included", "tasked with", "in charge of",
		"accountable for",
	},
	"vague_action": {
		"worked on", "helped with", "involved in", "assisted with",
		"participated in", "contributed to various", "dealt with",
	},
	"vague_quantifier": {
		"many", "several", "various", "numerous", "a number of", "some",
		"a lot of", "multiple",
	},
	"filler": {
		"in order to", "as well as", "etc", "and so on", "successfully",
		"effectively", "efficiently",
	},
	"hedged_skill": {
		"familiar with", "exposure to", "knowledge of", "basic understanding",
		"some experience", "working knowledge",
	},
}

// passivePatterns match passive-voice constructions: a be-auxiliary
// followed by a past participle.
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:was|were)\s+\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:has been|have been|had been)\s+\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:being|been)\s+\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:is|are)\s+\w+(?:ed|en)\s+by\b`),
}

// hasContext reports whether the bullet carries a contextual connector.
func hasContext(bullet string) bool {
	return containsWord(bullet, contextConnectors)
}

// hasCausality reports whether the bullet links action to result.
func hasCausality(bullet string) bool {
	return containsWord(bullet, causalConnectors)
}

// weakPhraseCategoryCount returns the number of distinct weak-phrase
// categories present in the text.
func weakPhraseCategoryCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrases := range weakPhraseCategories {
		for _, phrase := range phrases {
			if containsWholePhrase(lower, phrase) {
				count++
				break
			}
		}
	}
	return count
}

// isPassive reports whether a sentence matches any passive-voice pattern.
func isPassive(sentence string) bool {
	for _, pattern := range passivePatterns {
		if pattern.MatchString(sentence) {
			return true
		}
	}
	return false
}

// containsWord checks whole-word presence of any phrase, case-insensitive.
func containsWord(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if containsWholePhrase(lower, phrase) {
			return true
		}
	}
	return false
}

// containsWholePhrase pads both sides so "for" never matches "effort".
func containsWholePhrase(lowerText, phrase string) bool {
	padded := " " + strings.Join(strings.FieldsFunc(lowerText, isWordSep), " ") + " "
	return strings.Contains(padded, " "+phrase+" ")
}

func isWordSep(r rune) bool {
	return r == ' ' || r == ',' || r == '.' || r == ';' || r == ':' ||
		r == '(' || r == ')' || r == '!' || r == '?' || r == '\n' || r == '\t'
}

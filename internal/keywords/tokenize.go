// Package keywords provides synonym expansion, job-description keyword
// extraction, and keyword-to-text matching.
package keywords

import (
	"strings"
	"unicode"
)

// Normalize lowercases a string and collapses every non-word run to a
// single space. '+', '#', '.' and '/' count as word characters so terms
// like "c++", "c#", "node.js" and "ci/cd" survive.
func Normalize(s string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/' {
			sb.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			sb.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}

// TokenSet holds the unigrams and bigrams of a normalized text body.
// Bigrams catch compound terms like "machine learning".
type TokenSet struct {
	tokens map[string]struct{}
}

// Tokenize builds a TokenSet from free text.
func Tokenize(text string) TokenSet {
	words := strings.Fields(Normalize(text))
	tokens := make(map[string]struct{}, len(words)*2)
	for i, word := range words {
		word = strings.TrimSuffix(word, ".")
		if word == "" {
			continue
		}
		tokens[word] = struct{}{}
		if i+1 < len(words) {
			next := strings.TrimSuffix(words[i+1], ".")
			if next != "" {
				tokens[word+" "+next] = struct{}{}
			}
		}
	}
	return TokenSet{tokens: tokens}
}

// Contains reports whether the normalized term is present as a token.
func (ts TokenSet) Contains(term string) bool {
	_, ok := ts.tokens[Normalize(term)]
	return ok
}

// Tokens returns the token list, for fuzzy scanning.
func (ts TokenSet) Tokens() []string {
	out := make([]string, 0, len(ts.tokens))
	for tok := range ts.tokens {
		out = append(out, tok)
	}
	return out
}

// Len returns the number of distinct tokens.
func (ts TokenSet) Len() int {
	return len(ts.tokens)
}

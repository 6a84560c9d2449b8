package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// headingLikePattern matches lines that look like resume section headings:
// a short run of letters, optionally with spaces or ampersands, with no
// sentence punctuation.
var headingLikePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z &/]{1,39}$`)

// Quality signal weights. Printable ratio and word volume dominate
// because garbled extraction shows up there first.
const (
	weightWordVolume = 0.4
	weightPrintable  = 0.4
	weightHeadings   = 0.2

	// expectedHeadings is the section count a typical resume reaches;
	// the heading signal saturates there.
	expectedHeadings = 3
)

// qualityScore rates an extraction attempt in [0,1] from three signals:
// word volume against the minimum, the share of printable runes, and the
// presence of heading-like paragraphs.
func (p *Parser) qualityScore(doc *types.ParsedDocument) float64 {
	if doc.WordCount() == 0 {
		return 0
	}
	wordScore := p.wordVolumeScore(doc)

	headings := 0
	for _, para := range doc.Paragraphs {
		if looksLikeHeading(para.Text) {
			headings++
		}
	}
	headingScore := float64(headings) / expectedHeadings
	if headingScore > 1 {
		headingScore = 1
	}

	return weightWordVolume*wordScore +
		weightPrintable*printableRatio(doc.Text()) +
		weightHeadings*headingScore
}

// wordVolumeScore is the word count relative to the scoreable minimum,
// capped at 1.
func (p *Parser) wordVolumeScore(doc *types.ParsedDocument) float64 {
	score := float64(doc.WordCount()) / float64(p.cfg.MinWordCount)
	if score > 1 {
		score = 1
	}
	return score
}

// looksLikeHeading reports whether a paragraph resembles a section
// heading for quality-scoring purposes only. Section detection proper
// lives in the sections package and uses richer signals.
func looksLikeHeading(text string) bool {
	text = strings.TrimSpace(text)
	if !headingLikePattern.MatchString(text) {
		return false
	}
	// Headings are short: at most four words.
	return len(strings.Fields(text)) <= 4
}

// printableRatio returns the fraction of runes that are printable or
// ordinary whitespace. Garbled extractions (wrong encoding, binary
// bleed-through) drive this down.
func printableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			if r == unicode.ReplacementChar {
				continue
			}
			printable++
		}
	}
	return float64(printable) / float64(total)
}

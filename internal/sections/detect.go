// Package sections maps parsed paragraphs to semantic resume sections and
// extracts structured facts from them.
package sections

import (
	"strings"
	"unicode"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// headingSizeThresholdPt is the font size at which a bold leading run
// marks a heading candidate.
const headingSizeThresholdPt = 12.0

// kindHints maps heading words to canonical section kinds. Used for
// downstream routing and display only; detection never gates on it.
var kindHints = map[string]types.SectionKind{
	"summary":        types.SectionSummary,
	"objective":      types.SectionSummary,
	"profile":        types.SectionSummary,
	"about":          types.SectionSummary,
	"experience":     types.SectionExperience,
	"employment":     types.SectionExperience,
	"work":           types.SectionExperience,
	"history":        types.SectionExperience,
	"education":      types.SectionEducation,
	"academic":       types.SectionEducation,
	"skills":         types.SectionSkills,
	"technologies":   types.SectionSkills,
	"competencies":   types.SectionSkills,
	"certifications": types.SectionCertifications,
	"certificates":   types.SectionCertifications,
	"licenses":       types.SectionCertifications,
	"projects":       types.SectionProjects,
	"portfolio":      types.SectionProjects,
	"contact":        types.SectionContact,
}

// Detect splits a parsed document into ordered, non-overlapping sections.
// It never fails: a document with no recognizable heading yields a single
// Contact-labeled section spanning everything. Paragraphs before the
// first heading form the implicit Contact section.
func Detect(doc *types.ParsedDocument) []types.Section {
	if len(doc.Paragraphs) == 0 {
		return []types.Section{{Name: "Contact", Kind: types.SectionContact, StartIndex: 0, EndIndex: 0}}
	}

	var sections []types.Section
	start := 0
	name := "Contact"
	kind := types.SectionContact
	sawHeading := false

	flush := func(end int) {
		if end <= start && sawHeading {
			// A heading with no body still claims an empty span so that
			// downstream completeness checks can see it existed.
			sections = append(sections, types.Section{
				Name: name, Kind: kind, StartIndex: start, EndIndex: start,
			})
			return
		}
		if end <= start {
			return
		}
		sections = append(sections, types.Section{
			Name:       name,
			Kind:       kind,
			StartIndex: start,
			EndIndex:   end,
			Text:       joinParagraphs(doc.Paragraphs[start:end]),
		})
	}

	for i, para := range doc.Paragraphs {
		if !isHeadingCandidate(para) {
			continue
		}
		flush(i)
		name = strings.TrimSpace(para.Text)
		kind = classifyHeading(name)
		start = i + 1
		sawHeading = true
	}
	flush(len(doc.Paragraphs))

	return sections
}

// isHeadingCandidate applies the three detection heuristics: an explicit
// heading style hint, a bold leading run at or above the size threshold,
// or all-caps text longer than two characters. Short bolded achievement
// lines on unusual templates can false-positive here; that is a known
// limitation of the heuristics, not handled further.
func isHeadingCandidate(para types.Paragraph) bool {
	if para.StyleHint == types.StyleHeading {
		return true
	}
	if para.IsBold && para.FontSizePt != nil && *para.FontSizePt >= headingSizeThresholdPt {
		return true
	}
	return isAllCaps(para.Text)
}

// isAllCaps reports whether the text is entirely upper-case letters
// (ignoring digits, spaces and punctuation) and longer than 2 characters.
func isAllCaps(text string) bool {
	text = strings.TrimSpace(text)
	if len([]rune(text)) <= 2 {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// classifyHeading maps free-text heading words onto a canonical kind.
func classifyHeading(heading string) types.SectionKind {
	lower := strings.ToLower(heading)
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if kind, ok := kindHints[word]; ok {
			return kind
		}
	}
	return types.SectionUnlabeled
}

func joinParagraphs(paragraphs []types.Paragraph) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

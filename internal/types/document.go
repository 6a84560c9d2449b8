// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Format identifies the declared format of an uploaded document.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// StyleHint carries a structural hint attached to a paragraph by the parser.
type StyleHint string

// Paragraph style hints.
const (
	StyleNone    StyleHint = "none"
	StyleHeading StyleHint = "heading"
)

// Paragraph is a single extracted paragraph with run-level attributes.
type Paragraph struct {
	Text       string    `json:"text"`
	IsBold     bool      `json:"is_bold"`
	FontSizePt *float64  `json:"font_size_pt,omitempty"`
	StyleHint  StyleHint `json:"style_hint"`
}

// ParsedDocument is the output of the document parser: ordered paragraphs
// plus the confidence of the extraction strategy that produced them.
// It is built once per upload and never mutated afterwards.
type ParsedDocument struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	Confidence float64     `json:"confidence"`
	Strategy   string      `json:"strategy"`
}

// Text joins all paragraph texts with newlines.
func (d *ParsedDocument) Text() string {
	out := ""
	for i, p := range d.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}

// WordCount counts whitespace-separated words across all paragraphs.
func (d *ParsedDocument) WordCount() int {
	count := 0
	for _, p := range d.Paragraphs {
		inWord := false
		for _, r := range p.Text {
			if r == ' ' || r == '\t' || r == '\n' {
				inWord = false
			} else if !inWord {
				inWord = true
				count++
			}
		}
	}
	return count
}

// Section is a span of paragraphs under one detected heading.
// Indices reference paragraph positions in the owning ParsedDocument.
type Section struct {
	Name       string      `json:"name"`
	Kind       SectionKind `json:"kind"`
	StartIndex int         `json:"start_index"`
	EndIndex   int         `json:"end_index"`
	Text       string      `json:"text"`
}

// SectionKind is the canonical classification of a detected section.
// It is a display/routing hint only; detection never gates on it.
type SectionKind string

// Canonical section kinds.
const (
	SectionContact        SectionKind = "contact"
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionProjects       SectionKind = "projects"
	SectionUnlabeled      SectionKind = "unlabeled"
)

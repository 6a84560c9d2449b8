package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

func docFromLines(lines ...string) *types.ParsedDocument {
	doc := &types.ParsedDocument{Confidence: 1}
	for _, line := range lines {
		doc.Paragraphs = append(doc.Paragraphs, types.Paragraph{Text: line, StyleHint: types.StyleNone})
	}
	return doc
}

func TestDetect_AllCapsHeadings(t *testing.T) {
	doc := docFromLines(
		"Jane Doe",
		"jane@example.com",
		"EXPERIENCE",
		"Senior Engineer, Acme Corp, Jan 2020 - Present",
		"- Did things",
		"EDUCATION",
		"BS Computer Science, State University, 2016",
	)
	secs := Detect(doc)
	require.Len(t, secs, 3)

	assert.Equal(t, "Contact", secs[0].Name)
	assert.Equal(t, types.SectionContact, secs[0].Kind)
	assert.Equal(t, 0, secs[0].StartIndex)
	assert.Equal(t, 2, secs[0].EndIndex)

	assert.Equal(t, "EXPERIENCE", secs[1].Name)
	assert.Equal(t, types.SectionExperience, secs[1].Kind)
	assert.Equal(t, 3, secs[1].StartIndex)
	assert.Equal(t, 5, secs[1].EndIndex)

	assert.Equal(t, types.SectionEducation, secs[2].Kind)
}

func TestDetect_NoHeadings(t *testing.T) {
	doc := docFromLines("Jane Doe", "just some text", "more text")
	secs := Detect(doc)
	require.Len(t, secs, 1)
	assert.Equal(t, types.SectionContact, secs[0].Kind)
	assert.Equal(t, 0, secs[0].StartIndex)
	assert.Equal(t, 3, secs[0].EndIndex)
}

func TestDetect_EmptyDocument(t *testing.T) {
	secs := Detect(&types.ParsedDocument{})
	require.Len(t, secs, 1)
	assert.Equal(t, types.SectionContact, secs[0].Kind)
}

func TestDetect_BoldSizeHeading(t *testing.T) {
	size := 14.0
	small := 10.0
	doc := &types.ParsedDocument{Paragraphs: []types.Paragraph{
		{Text: "Jane Doe"},
		{Text: "Work Experience", IsBold: true, FontSizePt: &size},
		{Text: "Built things", IsBold: true, FontSizePt: &small},
	}}
	secs := Detect(doc)
	require.Len(t, secs, 2)
	assert.Equal(t, "Work Experience", secs[1].Name)
	assert.Equal(t, types.SectionExperience, secs[1].Kind)
	// Bold below the size threshold is body text, not a heading.
	assert.Equal(t, "Built things", secs[1].Text)
}

func TestDetect_StyleHintHeading(t *testing.T) {
	doc := &types.ParsedDocument{Paragraphs: []types.Paragraph{
		{Text: "Skills", StyleHint: types.StyleHeading},
		{Text: "Go, Python"},
	}}
	secs := Detect(doc)
	require.Len(t, secs, 1)
	assert.Equal(t, types.SectionSkills, secs[0].Kind)
}

func TestDetect_SectionsNonOverlappingAndOrdered(t *testing.T) {
	doc := docFromLines("intro", "SUMMARY", "text", "SKILLS", "Go", "EXPERIENCE", "stuff")
	secs := Detect(doc)
	for i := 1; i < len(secs); i++ {
		assert.GreaterOrEqual(t, secs[i].StartIndex, secs[i-1].EndIndex)
		assert.Greater(t, secs[i].StartIndex, secs[i-1].StartIndex)
	}
}

func TestIsAllCaps(t *testing.T) {
	assert.True(t, isAllCaps("EXPERIENCE"))
	assert.True(t, isAllCaps("WORK HISTORY"))
	assert.False(t, isAllCaps("GO")) // too short
	assert.False(t, isAllCaps("Experience"))
	assert.False(t, isAllCaps("123 456"))
}

func TestClassifyHeading(t *testing.T) {
	assert.Equal(t, types.SectionExperience, classifyHeading("Professional Experience"))
	assert.Equal(t, types.SectionSummary, classifyHeading("Career Objective"))
	assert.Equal(t, types.SectionSkills, classifyHeading("Technical Skills"))
	assert.Equal(t, types.SectionUnlabeled, classifyHeading("Miscellany"))
}

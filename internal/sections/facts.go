package sections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkPattern     = regexp.MustCompile(`(?i)\b(?:https?://\S+|(?:www\.|linkedin\.com/|github\.com/)\S+)`)
	locationPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2}\b`)
	namePattern     = regexp.MustCompile(`^[A-Z][a-zA-Z\s.'-]{1,50}$`)
	bulletPattern   = regexp.MustCompile(`^[-•*▪◦‣]\s*`)
	degreePattern   = regexp.MustCompile(`(?i)\b(b\.?s\.?c?|b\.?a\.?|m\.?s\.?c?|m\.?a\.?|mba|ph\.?d\.?|bachelor|master|doctor|associate)\b`)
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Extractor turns detected sections into structured resume facts.
type Extractor struct{}

// NewExtractor creates a facts extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFacts builds ResumeFacts from a parsed document and its detected
// sections. Extraction is best-effort: malformed entries produce partial
// facts (flagged downstream), never an error.
func (e *Extractor) ExtractFacts(doc *types.ParsedDocument, secs []types.Section) *types.ResumeFacts {
	facts := &types.ResumeFacts{
		Sections:        secs,
		RawText:         doc.Text(),
		WordCount:       doc.WordCount(),
		ParseConfidence: doc.Confidence,
	}

	for _, sec := range secs {
		switch sec.Kind {
		case types.SectionContact:
			facts.Contact = extractContact(sec.Text)
		case types.SectionSummary:
			facts.Summary = strings.TrimSpace(sec.Text)
		case types.SectionExperience:
			facts.Experience = append(facts.Experience, extractExperience(sec.Text)...)
		case types.SectionEducation:
			facts.Education = append(facts.Education, extractEducation(sec.Text)...)
		case types.SectionSkills:
			facts.Skills = append(facts.Skills, splitInventory(sec.Text)...)
		case types.SectionCertifications:
			facts.Certifications = append(facts.Certifications, nonEmptyLines(sec.Text)...)
		}
	}

	// Templates without a labeled contact block still put contact details
	// somewhere near the top.
	if facts.Contact.Email == "" {
		top := doc.Text()
		if len(top) > 400 {
			top = top[:400]
		}
		fallback := extractContact(top)
		if facts.Contact.Name == "" {
			facts.Contact.Name = fallback.Name
		}
		facts.Contact.Email = fallback.Email
		if facts.Contact.Phone == "" {
			facts.Contact.Phone = fallback.Phone
		}
	}

	return facts
}

// extractContact pulls contact fields out of free text with regexes.
func extractContact(text string) types.Contact {
	contact := types.Contact{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
	contact.Links = linkPattern.FindAllString(text, -1)
	contact.Location = locationPattern.FindString(text)

	// The name is the first short line that is not an email, phone or
	// link line.
	for _, line := range nonEmptyLines(text) {
		if strings.Contains(line, "@") || phonePattern.MatchString(line) || linkPattern.MatchString(line) {
			continue
		}
		if namePattern.MatchString(line) && len(strings.Fields(line)) <= 4 {
			contact.Name = line
			break
		}
	}
	return contact
}

// extractExperience splits an experience section into entries. A line
// carrying a date range opens a new entry; its non-date remainder (plus
// the preceding non-bullet line, if the date line held nothing else)
// provides title and company. Bullet lines accumulate on the open entry.
func extractExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry
	var previousLine string

	for _, line := range nonEmptyLines(text) {
		if rawStart, rawEnd, ok := FindDateRange(line); ok && !bulletPattern.MatchString(line) {
			entry := types.ExperienceEntry{RawStartDate: rawStart, RawEndDate: rawEnd}
			entry.StartDate, _ = ParseDate(rawStart)
			entry.EndDate, _ = ParseDate(rawEnd)

			header := strings.TrimSpace(dateRangePattern.ReplaceAllString(line, ""))
			header = strings.Trim(header, " ,|-–—")
			if header == "" {
				header = previousLine
			}
			entry.Title, entry.Company = splitTitleCompany(header)

			entries = append(entries, entry)
			current = &entries[len(entries)-1]
			previousLine = ""
			continue
		}

		if bulletPattern.MatchString(line) {
			if current != nil {
				current.Bullets = append(current.Bullets, bulletPattern.ReplaceAllString(line, ""))
			}
			continue
		}

		// Plain line: either an upcoming entry header or wrapped bullet
		// text. Attach to the open entry when it reads like a sentence.
		if current != nil && len(strings.Fields(line)) > 6 {
			current.Bullets = append(current.Bullets, line)
			continue
		}
		previousLine = line
	}
	return entries
}

// splitTitleCompany separates "Title, Company" and "Title at Company"
// header shapes. A header with no separator becomes the title.
func splitTitleCompany(header string) (title, company string) {
	for _, sep := range []string{" at ", " @ ", " | ", " - ", " – ", ", "} {
		if idx := strings.Index(header, sep); idx > 0 {
			return strings.TrimSpace(header[:idx]), strings.Trim(strings.TrimSpace(header[idx+len(sep):]), ",")
		}
	}
	return strings.TrimSpace(header), ""
}

// extractEducation builds one entry per line mentioning a degree or year.
func extractEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, line := range nonEmptyLines(text) {
		entry := types.EducationEntry{}
		if m := degreePattern.FindString(line); m != "" {
			entry.Degree = strings.TrimSpace(m)
		}
		if m := yearPattern.FindString(line); m != "" {
			entry.Year, _ = strconv.Atoi(m)
		}
		institution := line
		if entry.Degree != "" {
			// Institution is whatever follows the degree phrase after a
			// separator, or the whole line minus the year.
			if _, after, found := strings.Cut(line, ","); found {
				institution = after
			}
		}
		institution = yearPattern.ReplaceAllString(institution, "")
		entry.Institution = strings.Trim(strings.TrimSpace(institution), ",-– ")
		if entry.Institution != "" || entry.Degree != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitInventory splits a skills-style section on list punctuation.
func splitInventory(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, line := range nonEmptyLines(text) {
		line = bulletPattern.ReplaceAllString(line, "")
		// Drop "Category:" prefixes such as "Languages: Go, Python".
		if _, after, found := strings.Cut(line, ":"); found {
			line = after
		}
		for _, item := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '|' || r == ';' || r == '•'
		}) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

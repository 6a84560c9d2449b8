package types

import (
	"fmt"
	"time"
)

// Contact holds the contact details extracted from the top of a resume.
type Contact struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// YearMonth is a date resolved to month precision, or the "present"
// sentinel for an open-ended role.
type YearMonth struct {
	Year    int  `json:"year"`
	Month   int  `json:"month"`
	Present bool `json:"present,omitempty"`
}

// Present is the sentinel for an ongoing role.
var Present = YearMonth{Present: true}

// IsZero reports whether the date was never resolved.
func (ym YearMonth) IsZero() bool {
	return !ym.Present && ym.Year == 0 && ym.Month == 0
}

// Time converts the date to a time.Time. The present sentinel resolves
// to the supplied now value so tenure math stays total-ordered.
func (ym YearMonth) Time(now time.Time) time.Time {
	if ym.Present {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	month := ym.Month
	if month == 0 {
		month = 1
	}
	return time.Date(ym.Year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsUntil returns the whole number of months from ym to other.
func (ym YearMonth) MonthsUntil(other YearMonth, now time.Time) int {
	a := ym.Time(now)
	b := other.Time(now)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func (ym YearMonth) String() string {
	if ym.Present {
		return "present"
	}
	if ym.Month == 0 {
		return fmt.Sprintf("%04d", ym.Year)
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ExperienceEntry is a single role in the work history.
type ExperienceEntry struct {
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	StartDate    YearMonth `json:"start_date"`
	EndDate      YearMonth `json:"end_date"`
	RawStartDate string    `json:"raw_start_date,omitempty"`
	RawEndDate   string    `json:"raw_end_date,omitempty"`
	Bullets      []string  `json:"bullets,omitempty"`
}

// EducationEntry is a single degree or program.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// ResumeFacts is the structured extraction of a parsed resume.
// Built once per upload or edit cycle; request-scoped.
type ResumeFacts struct {
	Contact         Contact           `json:"contact"`
	Summary         string            `json:"summary,omitempty"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Skills          []string          `json:"skills"`
	Certifications  []string          `json:"certifications,omitempty"`
	Sections        []Section         `json:"sections,omitempty"`
	RawText         string            `json:"raw_text,omitempty"`
	WordCount       int               `json:"word_count"`
	ParseConfidence float64           `json:"parse_confidence"`
}

// AllBullets flattens the bullets of every experience entry in order.
func (f *ResumeFacts) AllBullets() []string {
	var out []string
	for _, exp := range f.Experience {
		out = append(out, exp.Bullets...)
	}
	return out
}

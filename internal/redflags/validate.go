// Package redflags inspects structured work history for patterns a
// recruiter would question: unexplained gaps, impossible dates,
// job-hopping, and experience that undershoots the claimed level.
package redflags

import (
	"fmt"
	"sort"
	"time"

	"github.com/JoHn11117/resume-scorer/internal/sections"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// Config holds the detection thresholds. All values are months unless
// noted.
type Config struct {
	GapCriticalMonths int
	GapWarningMonths  int
	ShortTenureMonths int
	ShortTenureCount  int
	// LevelMinYears maps a claimed level to the minimum total years of
	// experience a reviewer would expect.
	LevelMinYears map[types.Level]int
}

// DefaultConfig mirrors the thresholds recruiters conventionally apply.
func DefaultConfig() Config {
	return Config{
		GapCriticalMonths: 18,
		GapWarningMonths:  9,
		ShortTenureMonths: 12,
		ShortTenureCount:  2,
		LevelMinYears: map[types.Level]int{
			types.LevelEntry:  0,
			types.LevelMid:    3,
			types.LevelSenior: 6,
		},
	}
}

// Validator runs the red-flag checks against extracted resume facts.
type Validator struct {
	cfg Config
	now func() time.Time
}

func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg, now: time.Now}
}

// Validate returns every issue found, ordered critical first.
func (v *Validator) Validate(facts *types.ResumeFacts, level types.Level) []types.Issue {
	var issues []types.Issue
	now := v.now()

	entries := sortedByStart(facts.Experience, now)

	issues = append(issues, v.checkMissingDates(entries)...)
	issues = append(issues, v.checkDateOrder(entries, now)...)
	issues = append(issues, v.checkGaps(entries, now)...)
	issues = append(issues, v.checkFormats(entries)...)
	issues = append(issues, v.checkJobHopping(entries, now)...)
	issues = append(issues, v.checkLevelFit(entries, level, now)...)

	types.SortIssues(issues)
	return issues
}

// sortedByStart orders roles oldest first, leaving entries without a
// start date at the end.
func sortedByStart(entries []types.ExperienceEntry, now time.Time) []types.ExperienceEntry {
	sorted := make([]types.ExperienceEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].StartDate, sorted[j].StartDate
		if a.IsZero() || b.IsZero() {
			return !a.IsZero()
		}
		return a.Time(now).Before(b.Time(now))
	})
	return sorted
}

func (v *Validator) checkMissingDates(entries []types.ExperienceEntry) []types.Issue {
	var issues []types.Issue
	for _, e := range entries {
		if e.StartDate.IsZero() || e.EndDate.IsZero() {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "dates",
				Message:  fmt.Sprintf("Role %q is missing a start or end date", roleLabel(e)),
				Section:  string(types.SectionExperience),
			})
		}
	}
	return issues
}

func (v *Validator) checkDateOrder(entries []types.ExperienceEntry, now time.Time) []types.Issue {
	var issues []types.Issue
	for _, e := range entries {
		if e.StartDate.IsZero() {
			continue
		}
		if e.StartDate.Time(now).After(now) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "dates",
				Message:  fmt.Sprintf("Role %q has a start date in the future", roleLabel(e)),
				Section:  string(types.SectionExperience),
			})
		}
		if !e.EndDate.IsZero() && !e.EndDate.Present &&
			e.EndDate.Time(now).Before(e.StartDate.Time(now)) {
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "dates",
				Message:  fmt.Sprintf("Role %q ends before it starts", roleLabel(e)),
				Section:  string(types.SectionExperience),
			})
		}
	}
	return issues
}

func (v *Validator) checkGaps(entries []types.ExperienceEntry, now time.Time) []types.Issue {
	var issues []types.Issue
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.EndDate.IsZero() || prev.EndDate.Present || cur.StartDate.IsZero() {
			continue
		}
		gap := prev.EndDate.MonthsUntil(cur.StartDate, now)
		switch {
		case gap >= v.cfg.GapCriticalMonths:
			issues = append(issues, types.Issue{
				Severity: types.SeverityCritical,
				Category: "gaps",
				Message: fmt.Sprintf("Employment gap of %d months between %q and %q",
					gap, roleLabel(prev), roleLabel(cur)),
				Section: string(types.SectionExperience),
			})
		case gap >= v.cfg.GapWarningMonths:
			issues = append(issues, types.Issue{
				Severity: types.SeverityWarning,
				Category: "gaps",
				Message: fmt.Sprintf("Employment gap of %d months between %q and %q",
					gap, roleLabel(prev), roleLabel(cur)),
				Section: string(types.SectionExperience),
			})
		}
	}
	return issues
}

// checkFormats flags a history whose date strings mix textual shapes
// ("Jan 2020" next to "03/2021"), which trips up ATS date parsers.
func (v *Validator) checkFormats(entries []types.ExperienceEntry) []types.Issue {
	formats := make(map[sections.DateFormat]bool)
	for _, e := range entries {
		for _, raw := range []string{e.RawStartDate, e.RawEndDate} {
			if raw == "" {
				continue
			}
			_, format := sections.ParseDate(raw)
			if format == sections.FormatPresent || format == sections.FormatUnknown {
				continue
			}
			formats[format] = true
		}
	}
	if len(formats) > 1 {
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "formatting",
			Message:  "Inconsistent date formats across work history entries",
			Section:  string(types.SectionExperience),
		}}
	}
	return nil
}

func (v *Validator) checkJobHopping(entries []types.ExperienceEntry, now time.Time) []types.Issue {
	short := 0
	for _, e := range entries {
		if e.StartDate.IsZero() || e.EndDate.IsZero() || e.EndDate.Present {
			continue
		}
		if e.StartDate.MonthsUntil(e.EndDate, now) < v.cfg.ShortTenureMonths {
			short++
		}
	}
	if short >= v.cfg.ShortTenureCount {
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "tenure",
			Message:  fmt.Sprintf("%d roles shorter than %d months suggest job-hopping", short, v.cfg.ShortTenureMonths),
			Section:  string(types.SectionExperience),
		}}
	}
	return nil
}

func (v *Validator) checkLevelFit(entries []types.ExperienceEntry, level types.Level, now time.Time) []types.Issue {
	minYears, ok := v.cfg.LevelMinYears[level]
	if !ok || minYears == 0 {
		return nil
	}
	totalMonths := 0
	for _, e := range entries {
		if e.StartDate.IsZero() || e.EndDate.IsZero() {
			continue
		}
		if months := e.StartDate.MonthsUntil(e.EndDate, now); months > 0 {
			totalMonths += months
		}
	}
	shortfall := minYears*12 - totalMonths
	if shortfall <= 0 {
		return nil
	}
	severity := types.SeverityWarning
	if shortfall > 12 {
		severity = types.SeverityCritical
	}
	return []types.Issue{{
		Severity: severity,
		Category: "level",
		Message: fmt.Sprintf("About %.1f years of experience is below the %s-level expectation of %d+ years",
			float64(totalMonths)/12, level, minYears),
		Section: string(types.SectionExperience),
	}}
}

func roleLabel(e types.ExperienceEntry) string {
	switch {
	case e.Title != "" && e.Company != "":
		return e.Title + " at " + e.Company
	case e.Title != "":
		return e.Title
	case e.Company != "":
		return e.Company
	}
	return "untitled role"
}

package sections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var (
	monthYearPattern   = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{4})$`)
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{4})$`)
	isoDatePattern     = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	yearOnlyPattern    = regexp.MustCompile(`^\d{4}$`)
)

// DateFormat names the textual shape a date string arrived in, so the
// red-flags validator can spot format inconsistency across entries.
type DateFormat string

// Recognized date formats.
const (
	FormatMonthName DateFormat = "month_name"
	FormatNumeric   DateFormat = "numeric"
	FormatISO       DateFormat = "iso"
	FormatYearOnly  DateFormat = "year_only"
	FormatPresent   DateFormat = "present"
	FormatUnknown   DateFormat = "unknown"
)

// ParseDate resolves a raw date string to a normalized year-month or the
// present sentinel. Unparseable strings return a zero YearMonth; callers
// carry the raw string and flag it downstream rather than erroring.
func ParseDate(raw string) (types.YearMonth, DateFormat) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	switch lower {
	case "present", "current", "now", "ongoing":
		return types.Present, FormatPresent
	}

	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		if month, ok := monthNames[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			return types.YearMonth{Year: year, Month: month}, FormatMonthName
		}
		return types.YearMonth{}, FormatUnknown
	}
	if m := numericDatePattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return types.YearMonth{Year: year, Month: month}, FormatNumeric
		}
		return types.YearMonth{}, FormatUnknown
	}
	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return types.YearMonth{Year: year, Month: month}, FormatISO
		}
		return types.YearMonth{}, FormatUnknown
	}
	if yearOnlyPattern.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return types.YearMonth{Year: year}, FormatYearOnly
	}
	return types.YearMonth{}, FormatUnknown
}

// dateRangePattern finds "X - Y" spans where X and Y look like dates.
var dateRangePattern = regexp.MustCompile(
	`(?i)([a-z]{3,9}\.?\s+\d{4}|\d{1,2}[/-]\d{4}|\d{4}-\d{1,2}|\d{4})\s*(?:-|–|—|to)\s*` +
		`([a-z]{3,9}\.?\s+\d{4}|\d{1,2}[/-]\d{4}|\d{4}-\d{1,2}|\d{4}|present|current|now|ongoing)`)

// FindDateRange extracts the first start/end date pair from a line.
// Returns ok=false when the line holds no recognizable range.
func FindDateRange(line string) (start, end string, ok bool) {
	m := dateRangePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

package copilot

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

var (
	isoDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

	// Month name or 3-letter abbreviation followed, within a short window,
	// by a 4-digit year or a 2-digit year with optional leading apostrophe.
	// The 4-digit alternative comes first so it wins for the same occurrence.
	monthYearPattern = regexp.MustCompile(
		`\b(january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sep|october|oct|november|nov|december|dec)\.?,?\s+(?:(\d{4})|'?(\d{2}))\b`)

	monthNumbers = map[string]time.Month{
		"january": time.January, "jan": time.January,
		"february": time.February, "feb": time.February,
		"march": time.March, "mar": time.March,
		"april": time.April, "apr": time.April,
		"may":  time.May,
		"june": time.June, "jun": time.June,
		"july": time.July, "jul": time.July,
		"august": time.August, "aug": time.August,
		"september": time.September, "sep": time.September,
		"october": time.October, "oct": time.October,
		"november": time.November, "nov": time.November,
		"december": time.December, "dec": time.December,
	}

	dateTriggerWords = []string{"as of", "on ", "in "}
)

// ResolveReferenceDate extracts the date a question is asking about.
// Precedence: literal ISO date, then "last month", then a month/year phrase
// accompanied by a trigger word. A nil result means the question targets
// live data.
func ResolveReferenceDate(question string, today time.Time) *time.Time {
	text := strings.ToLower(question)

	if m := isoDatePattern.FindString(text); m != "" {
		if d := utils.ParseISODate(m); d != nil {
			return d
		}
	}

	if strings.Contains(text, "last month") {
		d := utils.LastDayOfMonth(today.Year(), today.Month()-1)
		return &d
	}

	if year, month, ok := ResolveMonthYear(text); ok && hasDateTrigger(text) {
		d := utils.LastDayOfMonth(year, month)
		return &d
	}

	return nil
}

// ResolveMonthYear finds the first month/year mention in the text. Four-digit
// years are accepted in 2020-2040; two-digit years below 50 map to 20xx,
// otherwise 19xx.
func ResolveMonthYear(question string) (int, time.Month, bool) {
	text := strings.ToLower(question)

	for _, m := range monthYearPattern.FindAllStringSubmatch(text, -1) {
		month := monthNumbers[m[1]]

		if m[2] != "" {
			year, _ := strconv.Atoi(m[2])
			if year >= 2020 && year <= 2040 {
				return year, month, true
			}
			continue
		}

		year, _ := strconv.Atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		return year, month, true
	}

	return 0, 0, false
}

func hasDateTrigger(text string) bool {
	for _, w := range dateTriggerWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

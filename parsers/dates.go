package parsers

import "regexp"

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// Composite date patterns, ordered most specific to least. The order is a
// contract: the first matching pattern wins, and reordering changes which
// substring gets claimed as the date.
var datePatterns = []*regexp.Regexp{
	// month range within one year: "May - August 2021"
	regexp.MustCompile(`(?i)` + monthPattern + `\.?\s*[-–—]\s*` + monthPattern + `\.?\s+\d{4}`),
	// month-year range: "Jun 2020 - Present", "January 2018 – May 2020"
	regexp.MustCompile(`(?i)` + monthPattern + `\.?\s+\d{4}\s*[-–—]\s*(?:` + monthPattern + `\.?\s+\d{4}|present|current|now)`),
	// year range: "2020-2023", "2019 – Present"
	regexp.MustCompile(`(?i)\b\d{4}\s*[-–—]\s*(?:\d{4}|present|current|now)\b`),
	// starting/expected phrasing: "Expected May 2025", "Starting 2024"
	regexp.MustCompile(`(?i)\b(?:starting|expected|beginning)\s+(?:` + monthPattern + `\.?\s+)?\d{4}`),
	// numeric dates: "06/2020", "6/1/2020"
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b|\b\d{1,2}/\d{4}\b`),
	// single month-year: "August 2019"
	regexp.MustCompile(`(?i)` + monthPattern + `\.?\s+\d{4}`),
	// bare year, last resort (education entries often carry just a year)
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
}

// experienceDatePatterns excludes the bare-year pattern, which is too loose
// for job header detection.
var experienceDatePatterns = datePatterns[:6]

var yearRegex = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// findDate returns the first match of the highest-priority pattern, or ""
// when no pattern matches.
func findDate(line string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// extractDateFromLine pulls a date substring from an arbitrary line using
// the full pattern list.
func extractDateFromLine(line string) string {
	return findDate(line, datePatterns)
}

// extractYearFromDate returns the most recent 4-digit year inside a matched
// date fragment, or "" when the fragment holds none.
func extractYearFromDate(fragment string) string {
	years := yearRegex.FindAllString(fragment, -1)
	if len(years) == 0 {
		return ""
	}
	return years[len(years)-1]
}

// stripDateFragments removes every date substring from a line. Used to clean
// titles and institutions of residual date text after the primary date has
// been claimed.
func stripDateFragments(s string) string {
	for _, p := range datePatterns {
		s = p.ReplaceAllString(s, "")
	}
	return s
}

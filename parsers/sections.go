package parsers

import (
	"regexp"
	"strings"
)

// sectionPattern maps a canonical section name to the header phrasings that
// introduce it. Patterns run against a lowercased line stripped of
// punctuation, and are tried in order.
type sectionPattern struct {
	name string
	re   *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{"contact", regexp.MustCompile(`^(contact( info(rmation)?)?|personal (details|information))$`)},
	{"summary", regexp.MustCompile(`^((professional |career )?summary|(career )?objective|profile|about( me)?)$`)},
	{"experience", regexp.MustCompile(`^(work experience|professional experience|employment history|professional background|relevant experience|experience|work)$`)},
	{"education", regexp.MustCompile(`^(education|academic background|academics|qualifications|degrees)$`)},
	{"skills", regexp.MustCompile(`^((technical |core )?skills|(core )?competencies|technologies|expertise)$`)},
	{"certifications", regexp.MustCompile(`^(certifications?|licenses?( and certifications?)?|credentials)$`)},
	{"achievements", regexp.MustCompile(`^(achievements?|accomplishments|awards( and honors)?|honors)$`)},
	{"languages", regexp.MustCompile(`^(languages?|language proficiency)$`)},
}

var nonWordSpaceRegex = regexp.MustCompile(`[^a-z0-9 ]`)

// identifySectionType returns the canonical section name a line introduces,
// or "" when the line is not a recognized section header.
func identifySectionType(line string) string {
	clean := strings.ToLower(line)
	clean = nonWordSpaceRegex.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(spaceRunRegex.ReplaceAllString(clean, " "))
	if clean == "" {
		return ""
	}
	for _, sp := range sectionPatterns {
		if sp.re.MatchString(clean) {
			return sp.name
		}
	}
	return ""
}

// looksLikeHeader reports whether a line is formatted like a section or
// entry header: short, and either fully uppercase, punctuation-terminated,
// early in the document, or underscore/dash styled. Lines longer than 60
// characters never qualify.
func looksLikeHeader(line string, index int) bool {
	if len(line) > 60 {
		return false
	}
	if line == strings.ToUpper(line) && len(line) > 2 {
		return true
	}
	if strings.HasSuffix(line, ":") || strings.HasSuffix(line, "–") ||
		strings.HasSuffix(line, "—") || strings.HasSuffix(line, "-") {
		return true
	}
	if len(line) < 30 && index < 20 {
		return true
	}
	return strings.ContainsAny(line, "_-")
}

// classifySections walks the lines in document order, switching the running
// section whenever a header matches, and buckets every other line under the
// current section. Content before the first recognized header lands in
// "unknown". Header lines themselves are not part of any section's content.
func classifySections(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := "unknown"

	// identifySectionType strips punctuation before matching, so decorated
	// headers like "SKILLS:" or "Experience —" match directly; no separate
	// trimmed retry is needed.
	for _, line := range lines {
		if t := identifySectionType(line); t != "" {
			current = t
			continue
		}
		sections[current] = append(sections[current], line)
	}

	return sections
}

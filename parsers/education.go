package parsers

import (
	"regexp"
	"strings"
)

var (
	degreeRegex = regexp.MustCompile(`(?i)\b(bachelor|master|doctorate|doctor|ph\.?d|m\.?b\.?a|b\.?sc?|b\.?a|m\.?sc?|m\.?a|b\.?e|m\.?e|associate|diploma)\b`)
	gpaRegex    = regexp.MustCompile(`(?i)\bgpa:?\s*([0-4](?:\.\d{1,2})?)`)

	courseworkRegex = regexp.MustCompile(`(?i)\b(coursework|courses|curriculum|thesis|minor in)\b`)
)

var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// extractEducation walks the education section's lines. Header lines open a
// new entry; lines under an entry contribute the GPA, a late-appearing
// degree, or free-text details joined at finalization.
func (p *ResumeParser) extractEducation(sections map[string][]string) []EducationEntry {
	lines := sections["education"]

	var entries []EducationEntry
	var current *EducationEntry
	var details []string

	finalize := func() {
		if current == nil {
			return
		}
		current.Details = strings.Join(details, " ")
		entries = append(entries, *current)
		current = nil
		details = nil
	}

	for _, line := range lines {
		if isEducationHeader(line) {
			finalize()
			entry := parseEducationHeader(line)
			current = &entry
			continue
		}
		if current == nil {
			continue
		}
		if m := gpaRegex.FindStringSubmatch(line); m != nil {
			current.GPA = m[1]
			continue
		}
		if current.Degree == "" && looksLikeDegree(line) {
			current.Degree = line
			continue
		}
		details = append(details, line)
	}
	finalize()

	for _, entry := range entries {
		p.markExtracted(entry.Degree)
		p.markExtracted(entry.Institution)
		p.markExtracted(entry.Location)
	}

	return entries
}

// isEducationHeader reports whether a line opens a new education entry: a
// degree or institution keyword together with a date.
func isEducationHeader(line string) bool {
	lower := strings.ToLower(line)
	hasSignal := degreeRegex.MatchString(line) || containsAnyWord(lower, institutionKeywords)
	return hasSignal && findDate(line, datePatterns) != ""
}

// parseEducationHeader splits a header into degree, institution, location
// and year. The date fragment is claimed via the shared priority list, but
// only the most recent 4-digit year is kept.
func parseEducationHeader(line string) EducationEntry {
	entry := EducationEntry{}

	rest := line
	if date := findDate(line, datePatterns); date != "" {
		entry.Year = extractYearFromDate(date)
		rest = strings.Replace(rest, date, "", 1)
	}

	rest = orphanDateWordRegex.ReplaceAllString(rest, "")
	rest = strings.Trim(rest, " \t|–—-")

	parts := splitHeaderParts(rest)

	switch len(parts) {
	case 0:
	case 1:
		if looksLikeInstitution(parts[0]) {
			entry.Institution = parts[0]
		} else {
			entry.Degree = parts[0]
		}
	default:
		assignEducationParts(&entry, parts)
	}

	entry.Institution = cleanTitleFromDateFragments(entry.Institution)
	return entry
}

// assignEducationParts matches parts to fields by content in institution ->
// degree -> location priority, then fills positionally.
func assignEducationParts(entry *EducationEntry, parts []string) {
	claimed := make([]bool, len(parts))

	for i, part := range parts {
		if entry.Institution == "" && looksLikeInstitution(part) {
			entry.Institution = part
			claimed[i] = true
		}
	}
	for i, part := range parts {
		if claimed[i] {
			continue
		}
		if entry.Degree == "" && looksLikeDegree(part) {
			entry.Degree = part
			claimed[i] = true
		}
	}
	for i, part := range parts {
		if claimed[i] {
			continue
		}
		if entry.Location == "" && looksLikeLocation(part) {
			entry.Location = part
			claimed[i] = true
		}
	}

	for i, part := range parts {
		if claimed[i] {
			continue
		}
		switch {
		case entry.Institution == "":
			entry.Institution = part
		case entry.Degree == "":
			entry.Degree = part
		case entry.Location == "":
			entry.Location = part
		}
		claimed[i] = true
	}
}

func looksLikeInstitution(part string) bool {
	return containsAnyWord(strings.ToLower(part), institutionKeywords)
}

// looksLikeDegree reports whether a line names a degree rather than listing
// coursework that merely mentions one.
func looksLikeDegree(line string) bool {
	return degreeRegex.MatchString(line) && !courseworkRegex.MatchString(line)
}

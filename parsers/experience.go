package parsers

import (
	"regexp"
	"strings"
)

var jobTitleKeywords = []string{
	"engineer", "developer", "programmer", "manager", "analyst", "designer",
	"consultant", "director", "intern", "architect", "specialist",
	"coordinator", "administrator", "scientist", "lead", "officer",
	"accountant", "teacher", "nurse", "technician", "writer", "editor",
}

var companySuffixKeywords = []string{
	"inc", "llc", "ltd", "corp", "corporation", "company", "co",
	"technologies", "solutions", "systems", "group", "labs", "agency",
	"studio", "consulting", "partners",
}

var (
	atPatternRegex      = regexp.MustCompile(`(?i)\s+at\s+\w`)
	atSplitRegex        = regexp.MustCompile(`(?i)\s+at\s+`)
	partDelimiterRegex  = regexp.MustCompile(`\s*[|–—]\s*`)
	orphanDateWordRegex = regexp.MustCompile(`(?i)\b(starting|expected|beginning)\b`)
)

// extractExperience walks the experience section's lines, opening a new
// entry at every header line. Bullet and description lines between headers
// are not attached to entries; only the header itself is parsed. Once all
// entries are built their values are registered so later extractors cannot
// reclaim them.
func (p *ResumeParser) extractExperience(sections map[string][]string) []ExperienceEntry {
	lines := sections["experience"]
	if len(lines) == 0 {
		lines = sections["work"]
	}

	var entries []ExperienceEntry
	var current *ExperienceEntry

	for _, line := range lines {
		if !isExperienceHeader(line) {
			continue
		}
		if current != nil {
			entries = append(entries, *current)
		}
		entry := parseExperienceHeader(line)
		current = &entry
	}
	if current != nil {
		entries = append(entries, *current)
	}

	for _, entry := range entries {
		p.markExtracted(entry.Title)
		p.markExtracted(entry.Company)
		p.markExtracted(entry.Location)
	}

	return entries
}

// isExperienceHeader reports whether a line opens a new experience entry:
// it must carry both a role/company signal (job-title keyword, company
// suffix, or an "X at Y" phrase) and a structural signal (date pattern or a
// pipe/dash delimiter).
func isExperienceHeader(line string) bool {
	lower := strings.ToLower(line)

	hasSignal := containsAnyWord(lower, jobTitleKeywords) ||
		containsAnyWord(lower, companySuffixKeywords) ||
		atPatternRegex.MatchString(line)
	if !hasSignal {
		return false
	}

	return findDate(line, experienceDatePatterns) != "" || strings.ContainsAny(line, "|–—")
}

// parseExperienceHeader splits a header line into title, company, location
// and duration. The date patterns run in priority order; the first match is
// claimed as the duration and stripped before the remaining text is split
// on delimiters and assigned by content heuristics, falling back to
// positional order for parts that match nothing.
func parseExperienceHeader(line string) ExperienceEntry {
	entry := ExperienceEntry{}

	rest := line
	if date := findDate(line, experienceDatePatterns); date != "" {
		entry.Duration = date
		rest = strings.Replace(rest, date, "", 1)
	}

	rest = orphanDateWordRegex.ReplaceAllString(rest, "")
	rest = strings.Trim(rest, " \t|–—-")

	parts := splitHeaderParts(rest)

	switch len(parts) {
	case 0:
		// nothing left after the date; entry keeps only its duration
	case 1:
		if atSplitRegex.MatchString(parts[0]) {
			pieces := atSplitRegex.Split(parts[0], 2)
			entry.Title = strings.TrimSpace(pieces[0])
			entry.Company = strings.TrimSpace(pieces[1])
		} else {
			entry.Title = parts[0]
		}
	default:
		assignExperienceParts(&entry, parts)
	}

	entry.Title = cleanTitleFromDateFragments(entry.Title)
	return entry
}

// assignExperienceParts matches delimiter-separated parts to fields by
// content, in title -> company -> location priority, then fills whatever is
// still empty positionally from the unclaimed parts.
func assignExperienceParts(entry *ExperienceEntry, parts []string) {
	claimed := make([]bool, len(parts))

	for i, part := range parts {
		if entry.Title == "" && looksLikeJobTitle(part) {
			entry.Title = part
			claimed[i] = true
		}
	}
	for i, part := range parts {
		if claimed[i] {
			continue
		}
		if entry.Company == "" && looksLikeCompany(part) {
			entry.Company = part
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

	// positional fallback: 1st leftover -> title, 2nd -> company, 3rd -> location
	for i, part := range parts {
		if claimed[i] {
			continue
		}
		switch {
		case entry.Title == "":
			entry.Title = part
		case entry.Company == "":
			entry.Company = part
		case entry.Location == "":
			entry.Location = part
		}
		claimed[i] = true
	}
}

func looksLikeJobTitle(part string) bool {
	return containsAnyWord(strings.ToLower(part), jobTitleKeywords)
}

func looksLikeCompany(part string) bool {
	return containsAnyWord(strings.ToLower(part), companySuffixKeywords)
}

func looksLikeLocation(part string) bool {
	return cityStateRegex.MatchString(part) || simpleCityRegex.MatchString(part) ||
		strings.EqualFold(part, "remote")
}

// splitHeaderParts breaks a header on pipe, en-dash and em-dash delimiters,
// dropping empties.
func splitHeaderParts(s string) []string {
	var parts []string
	for _, part := range partDelimiterRegex.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// cleanTitleFromDateFragments scrubs residual date text and dangling
// separators out of a title.
func cleanTitleFromDateFragments(title string) string {
	title = stripDateFragments(title)
	title = orphanDateWordRegex.ReplaceAllString(title, "")
	title = spaceRunRegex.ReplaceAllString(title, " ")
	return strings.Trim(title, " \t,|–—-")
}

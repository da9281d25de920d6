package parsers

import (
	"regexp"
	"strings"
)

var (
	bulletGlyphRegex   = regexp.MustCompile(`^[•▪●○◦·*-]+\s*`)
	languageSplitRegex = regexp.MustCompile(`\s*[-,]\s*`)
)

// extractCertifications turns each unclaimed certification line into a
// record. The issuer is not separated out by the current heuristics; the
// date comes from the shared pattern list and is stripped from the name.
func (p *ResumeParser) extractCertifications(lines []string) []Certification {
	var certs []Certification
	for _, line := range lines {
		name := bulletGlyphRegex.ReplaceAllString(line, "")
		if name == "" || p.isExtracted(name) {
			continue
		}
		cert := Certification{Name: name}
		if date := extractDateFromLine(name); date != "" {
			cert.Date = date
			cert.Name = strings.Trim(strings.Replace(name, date, "", 1), " \t,|–—-()")
		}
		if cert.Name == "" {
			continue
		}
		p.markExtracted(cert.Name)
		certs = append(certs, cert)
	}
	return certs
}

// extractAchievements mirrors the certification pass. Title and description
// are not separated; the whole line is the title.
func (p *ResumeParser) extractAchievements(lines []string) []Achievement {
	var achievements []Achievement
	for _, line := range lines {
		title := bulletGlyphRegex.ReplaceAllString(line, "")
		if title == "" || p.isExtracted(title) {
			continue
		}
		achievement := Achievement{Title: title}
		if date := extractDateFromLine(title); date != "" {
			achievement.Date = date
			achievement.Title = strings.Trim(strings.Replace(title, date, "", 1), " \t,|–—-()")
		}
		if achievement.Title == "" {
			continue
		}
		p.markExtracted(achievement.Title)
		achievements = append(achievements, achievement)
	}
	return achievements
}

// extractLanguages splits each line on the first dash or comma into language
// and proficiency. A line without a delimiter yields an empty proficiency.
func extractLanguages(lines []string) []LanguageEntry {
	var languages []LanguageEntry
	for _, line := range lines {
		line = bulletGlyphRegex.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		parts := languageSplitRegex.Split(line, 2)
		entry := LanguageEntry{Language: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			entry.Proficiency = strings.TrimSpace(parts[1])
		}
		if entry.Language == "" {
			continue
		}
		languages = append(languages, entry)
	}
	return languages
}

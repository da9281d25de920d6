package parsers

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRegex    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`)
	githubRegex   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	websiteRegex  = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s,;|]+|\b[a-z0-9-]+\.(?:com|org|net|io|dev|me|co)(?:/[^\s,;|]*)?\b`)
	nameLineRegex = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]*)*\.?$`)

	// "City, ST" and the looser "Xxxx, XX"
	cityStateRegex  = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ -][A-Z][a-zA-Z]+)*,\s*(?:[A-Z]{2}|[A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)
	simpleCityRegex = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Words that disqualify a line from being the candidate's name.
var nameExclusions = []string{
	"resume", "cv", "curriculum", "phone", "email", "address",
	"objective", "summary", "profile",
}

// Lines containing these are institutions or employers, not the candidate's
// own address.
var educationIndicators = []string{
	"university", "college", "institute", "school", "academy",
	"bachelor", "master", "phd", "degree",
}

var companyIndicators = []string{
	"inc", "llc", "corp", "corporation", "company", "technologies",
	"solutions", "experience", "employer",
}

// extractContact runs the priority-ordered contact chain over the full text
// and an early-lines window. Each step registers the values it claims before
// the next step runs, so a token extracted as one field never reappears as
// another.
func (p *ResumeParser) extractContact(text string, lines []string) Contact {
	contact := Contact{}

	contact.Name = p.extractName(lines)
	if contact.Name != "" {
		p.markExtracted(contact.Name)
	}

	if email := emailRegex.FindString(text); email != "" {
		contact.Email = email
		p.markExtracted(email)
		// claim the domain too, so it never resurfaces under websites
		if at := strings.Index(email, "@"); at >= 0 {
			p.markExtracted(email[at+1:])
		}
	}

	if phone := phoneRegex.FindString(text); phone != "" {
		contact.Phone = NormalizePhone(phone)
		p.markExtracted(phone)
		p.markExtracted(contact.Phone)
	}

	if link := linkedinRegex.FindString(text); link != "" {
		contact.LinkedIn = ensureHTTPS(link)
		p.markExtracted(link)
		p.markExtracted(contact.LinkedIn)
	}

	if link := githubRegex.FindString(text); link != "" {
		contact.GitHub = ensureHTTPS(link)
		p.markExtracted(link)
		p.markExtracted(contact.GitHub)
	}

	contact.Location = p.extractLocation(lines)
	if contact.Location != "" {
		p.markExtracted(contact.Location)
	}

	contact.Websites = p.extractWebsites(text)

	return contact
}

// extractName scans the first five lines for a plausible personal name,
// falling back to the very first line when nothing matched and the first
// line is still unclaimed.
func (p *ResumeParser) extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if isLikelyName(line) && !p.isExtracted(line) {
			return line
		}
	}
	if len(lines) > 0 && !p.isExtracted(lines[0]) {
		return lines[0]
	}
	return ""
}

// isLikelyName reports whether a line reads like a personal name: short,
// 1-4 capitalized words, and free of contact details, section keywords and
// digits.
func isLikelyName(line string) bool {
	if len(line) < 2 || len(line) > 60 {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 1 || len(words) > 4 {
		return false
	}
	lower := strings.ToLower(line)
	for _, excl := range nameExclusions {
		if strings.Contains(lower, excl) {
			return false
		}
	}
	if strings.Contains(line, "@") || strings.Contains(lower, ".com") {
		return false
	}
	if phoneRegex.MatchString(line) {
		return false
	}
	if identifySectionType(line) != "" {
		return false
	}
	return nameLineRegex.MatchString(line)
}

// extractLocation searches the first ten lines for a "City, ST" pattern,
// skipping header lines and anything that reads like an institution or
// employer so a school's or company's city is not mistaken for the
// candidate's own.
func (p *ResumeParser) extractLocation(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if looksLikeHeader(line, i) && identifySectionType(line) != "" {
			continue
		}
		lower := strings.ToLower(line)
		if containsAnyWord(lower, educationIndicators) || containsAnyWord(lower, companyIndicators) {
			continue
		}

		match := cityStateRegex.FindString(line)
		if match == "" {
			match = simpleCityRegex.FindString(line)
		}
		if match == "" {
			continue
		}
		matchLower := strings.ToLower(match)
		if containsAnyWord(matchLower, educationIndicators) || containsAnyWord(matchLower, companyIndicators) {
			continue
		}
		return match
	}
	return ""
}

// extractWebsites collects URL matches not already claimed by the email,
// linkedin or github steps, excluding duplicate domains.
func (p *ResumeParser) extractWebsites(text string) []string {
	var sites []string
	for _, match := range websiteRegex.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;)")
		lower := strings.ToLower(match)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if p.isExtracted(match) {
			continue
		}
		domain := ExtractDomainFromURL(match)
		if p.isExtracted(domain) {
			continue
		}
		sites = append(sites, match)
		p.markExtracted(match)
		p.markExtracted(domain)
	}
	return sites
}

// NormalizePhone standardizes US phone numbers: ten digits become
// "(XXX) XXX-XXXX", eleven digits with a leading 1 become
// "+1 (XXX) XXX-XXXX", anything else passes through unchanged.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")

	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	}
	if len(digits) == 11 && digits[0] == '1' {
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}
	return phone
}

// ExtractDomainFromURL strips the scheme and www prefix and truncates at the
// first slash. Malformed input is returned unchanged; this never fails.
func ExtractDomainFromURL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	domain := rawURL
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	if domain == "" {
		return rawURL
	}
	return domain
}

func ensureHTTPS(link string) string {
	link = strings.TrimSuffix(link, "/")
	if strings.HasPrefix(link, "https://") || strings.HasPrefix(link, "http://") {
		return link
	}
	return "https://" + link
}

// containsAnyWord reports whether s contains any of the given words as a
// whole word. s must already be lowercased.
func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if containsWord(s, w) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		startOK := start == 0 || !isWordChar(s[start-1])
		endOK := end == len(s) || !isWordChar(s[end])
		if startOK && endOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

package parsers

import (
	"regexp"
	"strings"
	"unicode"
)

// knownSkills drives the contextual full-text pass: languages, frameworks,
// databases, tools and methodologies commonly named outside a skills
// section.
var knownSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "Perl",
	"HTML", "CSS", "SQL", "NoSQL", "GraphQL", "REST",
	"React", "Angular", "Vue", "Svelte", "Node.js", "Express", "Next.js",
	"Django", "Flask", "FastAPI", "Spring", "Rails", "Laravel", ".NET",
	"jQuery", "Bootstrap", "Tailwind", "Redux",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle",
	"Elasticsearch", "Cassandra", "DynamoDB",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "Git", "GitHub", "GitLab", "Linux", "Bash", "CI/CD",
	"Agile", "Scrum", "Kanban", "Jira", "TDD", "Microservices",
	"Machine Learning", "Data Analysis", "Pandas", "NumPy", "TensorFlow",
	"PyTorch", "Spark", "Kafka", "RabbitMQ", "Selenium",
}

// skillFormatTable maps lowercase forms to canonical casing. Unmapped skills
// pass through unchanged.
var skillFormatTable = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"reactjs":    "React.js",
	"css":        "CSS",
	"html":       "HTML",
	"sql":        "SQL",
	"aws":        "AWS",
	"gcp":        "GCP",
}

// categoryWords label groups of skills rather than skills themselves.
var categoryWords = []string{
	"languages", "language", "frameworks", "framework", "tools", "tool",
	"databases", "database", "technologies", "technology", "skills",
	"programming", "software", "methodologies", "platforms", "libraries",
	"other", "miscellaneous",
}

var skillStopwords = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "the": {}, "of": {}, "in": {},
	"a": {}, "an": {}, "etc": {}, "various": {}, "other": {}, "using": {},
	"strong": {}, "proficient": {}, "experienced": {}, "knowledge": {},
}

var knownCategoryHeaders = map[string]struct{}{
	"programming languages": {}, "technical skills": {}, "soft skills": {},
	"web technologies": {}, "databases": {}, "tools": {}, "frameworks": {},
	"cloud platforms": {}, "operating systems": {}, "methodologies": {},
}

var (
	parenAnnotationRegex = regexp.MustCompile(`\s*\([^)]*\)`)
	edgeNonWordRegex     = regexp.MustCompile(`^[^\w.#+]+|[^\w.#+]+$`)
	digitsPunctOnlyRegex = regexp.MustCompile(`^[\d\s[:punct:]]+$`)
	categoryLabelEndRegex = regexp.MustCompile(`(?i)(languages?|frameworks?|tools?|databases?|technologies|platforms|libraries|skills)\s*[:\-–—]\s*$`)
)

// extractSkills unions two passes: tokenized skills-section content, and
// known skill keywords found anywhere in the document. The union is
// validated, canonicalized and deduplicated.
func (p *ResumeParser) extractSkills(sections map[string][]string, text string) []string {
	var skills []string

	for _, name := range []string{"skills", "technical", "competencies"} {
		for _, line := range sections[name] {
			skills = append(skills, tokenizeSkillLine(line)...)
		}
	}

	skills = append(skills, contextualSkills(text)...)

	return deduplicateSkills(skills)
}

// tokenizeSkillLine splits a skills-section line into candidate tokens. A
// colon separates a category label (discarded) from its values;
// parenthesized proficiency annotations are stripped before tokenizing on
// semicolons and commas.
func tokenizeSkillLine(line string) []string {
	value := line
	if i := strings.Index(line, ":"); i >= 0 {
		value = line[i+1:]
	}
	value = parenAnnotationRegex.ReplaceAllString(value, "")

	var tokens []string
	for _, chunk := range strings.Split(value, ";") {
		for _, token := range strings.Split(chunk, ",") {
			token = edgeNonWordRegex.ReplaceAllString(strings.TrimSpace(token), "")
			if token == "" || !isValidSkill(token) {
				continue
			}
			tokens = append(tokens, formatSkill(token))
		}
	}
	return tokens
}

// contextualSkills finds known skill keywords as whole words anywhere in
// the text, rejecting matches whose preceding context ends in a category
// label (those are header mentions, not usage). Every occurrence is
// inspected: a skill whose first mention sits after a category label still
// counts when a later mention appears in running text.
func contextualSkills(text string) []string {
	var found []string
	for _, skill := range knownSkills {
		if !isValidSkill(skill) {
			continue
		}
		for from := 0; ; {
			idx := indexWholeWord(text, skill, from)
			if idx < 0 {
				break
			}
			start := idx - 30
			if start < 0 {
				start = 0
			}
			if categoryLabelEndRegex.MatchString(text[start:idx]) {
				from = idx + len(skill)
				continue
			}
			found = append(found, formatSkill(skill))
			break
		}
	}
	return found
}

// indexWholeWord finds the next case-insensitive whole-word occurrence of
// needle at or after from, or -1. Boundaries tolerate the punctuation
// inside names like C++ and Node.js.
func indexWholeWord(text, needle string, from int) int {
	lowerText := strings.ToLower(text)
	lowerNeedle := strings.ToLower(needle)
	if from < 0 {
		from = 0
	}
	idx := from
	for idx <= len(lowerText) {
		i := strings.Index(lowerText[idx:], lowerNeedle)
		if i < 0 {
			return -1
		}
		start := idx + i
		end := start + len(lowerNeedle)
		startOK := start == 0 || !isWordChar(lowerText[start-1])
		endOK := end == len(lowerText) || !isWordChar(lowerText[end])
		if startOK && endOK {
			return start
		}
		idx = start + 1
	}
	return -1
}

// isValidSkill filters out category labels, filler phrases, and strings that
// cannot be a single skill token.
func isValidSkill(skill string) bool {
	if len(skill) < 2 || len(skill) > 30 {
		return false
	}
	if strings.HasSuffix(skill, ":") {
		return false
	}
	lower := strings.ToLower(skill)
	if _, ok := skillStopwords[lower]; ok {
		return false
	}
	if isCategoryHeader(skill) {
		return false
	}
	categoryHits := 0
	for _, word := range categoryWords {
		if containsWord(lower, word) {
			categoryHits++
		}
	}
	if categoryHits >= 2 {
		return false
	}
	for _, word := range categoryWords {
		if lower == word {
			return false
		}
	}
	if strings.Count(skill, "/") >= 2 {
		return false
	}
	if len(strings.Fields(skill)) > 4 {
		return false
	}
	if digitsPunctOnlyRegex.MatchString(skill) {
		return false
	}
	return true
}

// isCategoryHeader reports whether a token is a skills-category label rather
// than a skill.
func isCategoryHeader(token string) bool {
	if strings.HasSuffix(token, ":") {
		return true
	}
	_, ok := knownCategoryHeaders[strings.ToLower(token)]
	return ok
}

// formatSkill maps known lowercase spellings to canonical casing.
func formatSkill(skill string) string {
	if canonical, ok := skillFormatTable[strings.ToLower(skill)]; ok {
		return canonical
	}
	return skill
}

// deduplicateSkills removes case-insensitive duplicates. When both a
// capitalized and an uncapitalized form appear, the capitalized one wins,
// replacing in place to preserve original position.
func deduplicateSkills(skills []string) []string {
	var result []string
	index := make(map[string]int)

	for _, skill := range skills {
		key := strings.ToLower(skill)
		if i, ok := index[key]; ok {
			if isCapitalized(skill) && !isCapitalized(result[i]) {
				result[i] = skill
			}
			continue
		}
		index[key] = len(result)
		result = append(result, skill)
	}
	return result
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

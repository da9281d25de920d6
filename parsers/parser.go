package parsers

import (
	"fmt"
	"strings"
	"time"
)

// ResumeParser extracts structured data from resume text using regex and
// positional heuristics. One instance handles one parse at a time: the
// extraction registry is instance state, reset at the start of every parse,
// so concurrent parses need separate instances.
type ResumeParser struct {
	extracted map[string]struct{}
	extractor *DocumentExtractor
}

// NewResumeParser creates a new resume parser.
func NewResumeParser() *ResumeParser {
	return &ResumeParser{
		extracted: make(map[string]struct{}),
		extractor: NewDocumentExtractor(),
	}
}

// markExtracted records a value as claimed by some field so no later
// extractor reuses it. Keys are lowercased and trimmed.
func (p *ResumeParser) markExtracted(value string) {
	key := strings.ToLower(strings.TrimSpace(value))
	if key != "" {
		p.extracted[key] = struct{}{}
	}
}

// isExtracted reports whether a value was already claimed during this parse.
func (p *ResumeParser) isExtracted(value string) bool {
	_, ok := p.extracted[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// ParseFile extracts text from a resume file (PDF, DOCX or TXT) and parses
// it. Read and decode failures are wrapped in a single error kind; a
// successfully decoded document always parses, however sparse the result.
func (p *ResumeParser) ParseFile(filename string, data []byte) (*ParsedResume, error) {
	text, pageCount, err := p.extractor.ExtractFromFile(filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %v", err)
	}

	resume := p.Parse(filename, text)
	resume.Metadata.PageCount = pageCount
	return resume, nil
}

// Parse runs the full extraction pipeline over already-extracted text.
// Individual extractors degrade to empty output rather than fail, so Parse
// always returns a record; missing data shows up as a low confidence score.
func (p *ResumeParser) Parse(filename, text string) *ParsedResume {
	// fresh registry per parse
	p.extracted = make(map[string]struct{})

	clean := Preprocess(text)
	lines := SplitLines(clean)
	sections := classifySections(lines)

	resume := &ParsedResume{
		Sections: sections,
		RawText:  clean,
	}

	resume.Contact = p.extractContact(clean, lines)
	resume.Summary = strings.Join(sections["summary"], " ")
	resume.Experience = p.extractExperience(sections)
	resume.Education = p.extractEducation(sections)
	resume.Skills = p.extractSkills(sections, clean)
	resume.Certifications = p.extractCertifications(sections["certifications"])
	resume.Achievements = p.extractAchievements(sections["achievements"])
	resume.Languages = extractLanguages(sections["languages"])

	p.cleanupOverlaps(resume)

	resume.Metadata = Metadata{
		Filename:   filename,
		ParsedAt:   time.Now(),
		WordCount:  len(strings.Fields(clean)),
		LineCount:  len(lines),
		Confidence: calculateConfidence(resume),
	}

	return resume
}

// cleanupOverlaps is a post-hoc pass that drops website entries shadowed by
// the extracted email and re-runs skill deduplication.
func (p *ResumeParser) cleanupOverlaps(resume *ParsedResume) {
	if resume.Contact.Email != "" && len(resume.Contact.Websites) > 0 {
		kept := resume.Contact.Websites[:0]
		for _, site := range resume.Contact.Websites {
			if !strings.Contains(strings.ToLower(resume.Contact.Email), strings.ToLower(site)) {
				kept = append(kept, site)
			}
		}
		resume.Contact.Websites = kept
	}

	resume.Skills = deduplicateSkills(resume.Skills)
}

// calculateConfidence scores extraction completeness on an additive 0-100
// point scale: name 15, email 15, phone 10, experience 30, education 15,
// skills 10, summary 5.
func calculateConfidence(resume *ParsedResume) int {
	score := 0
	if resume.Contact.Name != "" {
		score += 15
	}
	if resume.Contact.Email != "" {
		score += 15
	}
	if resume.Contact.Phone != "" {
		score += 10
	}
	if len(resume.Experience) > 0 {
		score += 30
	}
	if len(resume.Education) > 0 {
		score += 15
	}
	if len(resume.Skills) > 0 {
		score += 10
	}
	if resume.Summary != "" {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

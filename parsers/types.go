package parsers

import (
	"encoding/json"
	"time"
)

// ParsedResume is the full structured result of one parse. It is owned by
// the caller once returned and is never mutated afterwards.
type ParsedResume struct {
	Metadata       Metadata            `json:"metadata"`
	Contact        Contact             `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []ExperienceEntry   `json:"experience"`
	Education      []EducationEntry    `json:"education"`
	Skills         []string            `json:"skills"`
	Certifications []Certification     `json:"certifications"`
	Achievements   []Achievement       `json:"achievements"`
	Languages      []LanguageEntry     `json:"languages"`
	Sections       map[string][]string `json:"sections,omitempty"`
	RawText        string              `json:"raw_text,omitempty"`
}

// Metadata describes the parsed document itself. Confidence is a 0-100
// completeness estimate computed after all extractors have run.
type Metadata struct {
	Filename   string    `json:"filename"`
	PageCount  int       `json:"page_count"`
	ParsedAt   time.Time `json:"parsed_at"`
	WordCount  int       `json:"word_count"`
	LineCount  int       `json:"line_count"`
	Confidence int       `json:"confidence"`
}

// Contact holds the candidate's contact details. Empty string means the
// field could not be extracted.
type Contact struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	LinkedIn string   `json:"linkedin"`
	GitHub   string   `json:"github"`
	Websites []string `json:"websites"`
}

// ExperienceEntry is one work history item. Duration keeps the raw matched
// date-range substring.
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Duration string `json:"duration"`
}

// EducationEntry is one education item. Year is the most recent 4-digit
// year found in the entry's date fragment.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
	Details     string `json:"details"`
}

// Certification is a single certification line. Issuer is not populated by
// the current heuristics.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Achievement is a single achievement line. Description is not populated by
// the current heuristics; the whole line lands in Title.
type Achievement struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// LanguageEntry is a spoken language with optional proficiency.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ToJSON converts the parsed resume to indented JSON.
func (r *ParsedResume) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

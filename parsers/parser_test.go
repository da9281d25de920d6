package parsers

import (
	"strings"
	"testing"
)

const sampleResume = `
John Doe
San Francisco, CA
john.doe@email.com
(555) 123-4567
linkedin.com/in/johndoe

SUMMARY
Experienced software engineer with 5+ years building web services.

EXPERIENCE
Senior Software Engineer | Google Inc | Mountain View, CA | 2020-2023
Junior Developer at Startup Inc | Jan 2018 - May 2020

EDUCATION
Bachelor of Science | University of California | Berkeley, CA | 2016-2020
GPA: 3.8

SKILLS
Languages: Go, Python, JavaScript
Tools: Docker, Kubernetes

CERTIFICATIONS
AWS Certified Solutions Architect - 2022

LANGUAGES
English - Native
Spanish - Conversational
`

func TestResumeParser_Basic(t *testing.T) {
	parser := NewResumeParser()
	result := parser.Parse("resume.txt", sampleResume)

	if result.Contact.Name != "John Doe" {
		t.Errorf("Expected name 'John Doe', got '%s'", result.Contact.Name)
	}
	if result.Contact.Email != "john.doe@email.com" {
		t.Errorf("Expected email 'john.doe@email.com', got '%s'", result.Contact.Email)
	}
	if result.Contact.Phone != "(555) 123-4567" {
		t.Errorf("Expected phone '(555) 123-4567', got '%s'", result.Contact.Phone)
	}
	if result.Contact.Location != "San Francisco, CA" {
		t.Errorf("Expected location 'San Francisco, CA', got '%s'", result.Contact.Location)
	}
	if result.Contact.LinkedIn != "https://linkedin.com/in/johndoe" {
		t.Errorf("Expected linkedin URL, got '%s'", result.Contact.LinkedIn)
	}

	if result.Summary == "" {
		t.Error("Summary should not be empty")
	}

	if len(result.Experience) != 2 {
		t.Fatalf("Expected 2 experience entries, got %d", len(result.Experience))
	}
	first := result.Experience[0]
	if !strings.Contains(first.Title, "Engineer") {
		t.Errorf("Expected title to contain 'Engineer', got '%s'", first.Title)
	}
	if !strings.Contains(first.Company, "Google") {
		t.Errorf("Expected company to contain 'Google', got '%s'", first.Company)
	}
	if first.Duration != "2020-2023" {
		t.Errorf("Expected duration '2020-2023', got '%s'", first.Duration)
	}
	second := result.Experience[1]
	if second.Title != "Junior Developer" {
		t.Errorf("Expected title 'Junior Developer', got '%s'", second.Title)
	}
	if second.Company != "Startup Inc" {
		t.Errorf("Expected company 'Startup Inc', got '%s'", second.Company)
	}

	if len(result.Education) != 1 {
		t.Fatalf("Expected 1 education entry, got %d", len(result.Education))
	}
	edu := result.Education[0]
	if !strings.Contains(edu.Degree, "Bachelor") {
		t.Errorf("Expected degree to contain 'Bachelor', got '%s'", edu.Degree)
	}
	if !strings.Contains(edu.Institution, "University") {
		t.Errorf("Expected institution to contain 'University', got '%s'", edu.Institution)
	}
	if edu.Year != "2020" {
		t.Errorf("Expected year '2020', got '%s'", edu.Year)
	}
	if edu.GPA != "3.8" {
		t.Errorf("Expected GPA '3.8', got '%s'", edu.GPA)
	}

	for _, want := range []string{"Go", "Python", "JavaScript", "Docker", "Kubernetes"} {
		if !containsSkill(result.Skills, want) {
			t.Errorf("Expected skills to contain '%s', got %v", want, result.Skills)
		}
	}

	if len(result.Certifications) != 1 {
		t.Fatalf("Expected 1 certification, got %d", len(result.Certifications))
	}
	if !strings.Contains(result.Certifications[0].Name, "AWS") {
		t.Errorf("Expected certification to contain 'AWS', got '%s'", result.Certifications[0].Name)
	}

	if len(result.Languages) != 2 {
		t.Fatalf("Expected 2 languages, got %d", len(result.Languages))
	}
	if result.Languages[0].Language != "English" || result.Languages[0].Proficiency != "Native" {
		t.Errorf("Unexpected first language entry: %+v", result.Languages[0])
	}
}

func TestResumeParser_ConfidenceBounds(t *testing.T) {
	parser := NewResumeParser()

	full := parser.Parse("resume.txt", sampleResume)
	if full.Metadata.Confidence <= 70 || full.Metadata.Confidence > 100 {
		t.Errorf("Fully populated resume should score >70 and <=100, got %d", full.Metadata.Confidence)
	}

	empty := parser.Parse("empty.txt", "lorem ipsum dolor sit amet")
	if empty.Metadata.Confidence >= 20 {
		t.Errorf("Sparse resume should score <20, got %d", empty.Metadata.Confidence)
	}
}

func TestResumeParser_Idempotent(t *testing.T) {
	first := NewResumeParser().Parse("resume.txt", sampleResume)
	second := NewResumeParser().Parse("resume.txt", sampleResume)

	// results are byte-identical except the parse timestamp
	second.Metadata.ParsedAt = first.Metadata.ParsedAt

	a, err := first.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	b, err := second.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Parsing the same document twice should yield identical output")
	}
}

func TestResumeParser_RegistryExclusivity(t *testing.T) {
	result := NewResumeParser().Parse("resume.txt", sampleResume)

	for _, site := range result.Contact.Websites {
		lower := strings.ToLower(site)
		if strings.EqualFold(site, result.Contact.Email) ||
			strings.Contains(strings.ToLower(result.Contact.Email), lower) {
			t.Errorf("Website '%s' duplicates the email field", site)
		}
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			t.Errorf("Website '%s' duplicates a profile URL field", site)
		}
	}
}

func TestResumeParser_EmptyInput(t *testing.T) {
	result := NewResumeParser().Parse("empty.txt", "")

	if result == nil {
		t.Fatal("Parse should never return nil")
	}
	if result.Metadata.Confidence != 0 {
		t.Errorf("Empty input should score 0 confidence, got %d", result.Metadata.Confidence)
	}
	if len(result.Experience) != 0 || len(result.Education) != 0 || len(result.Skills) != 0 {
		t.Error("Empty input should produce no entries")
	}
}

func TestResumeParser_UnsupportedFile(t *testing.T) {
	_, err := NewResumeParser().ParseFile("resume.png", []byte{0x89, 0x50})
	if err == nil {
		t.Fatal("Expected error for unsupported file format")
	}
	if !strings.Contains(err.Error(), "failed to parse resume") {
		t.Errorf("Expected wrapped parse error, got '%s'", err.Error())
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}

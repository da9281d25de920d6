package parsers

import (
	"strings"
	"testing"
)

func TestParseEducationHeader_PipeDelimited(t *testing.T) {
	entry := parseEducationHeader("Bachelor of Science | University of California | Berkeley, CA | 2016-2020")

	if !strings.Contains(entry.Degree, "Bachelor") {
		t.Errorf("Expected degree to contain 'Bachelor', got '%s'", entry.Degree)
	}
	if !strings.Contains(entry.Institution, "University") {
		t.Errorf("Expected institution to contain 'University', got '%s'", entry.Institution)
	}
	if entry.Location != "Berkeley, CA" {
		t.Errorf("Expected location 'Berkeley, CA', got '%s'", entry.Location)
	}
	if entry.Year != "2020" {
		t.Errorf("Expected year '2020', got '%s'", entry.Year)
	}
}

func TestParseEducationHeader_YearIsMostRecent(t *testing.T) {
	entry := parseEducationHeader("Master of Arts | State College | 2012-2014")
	if entry.Year != "2014" {
		t.Errorf("Expected most recent year '2014', got '%s'", entry.Year)
	}
}

func TestIsEducationHeader(t *testing.T) {
	headers := []string{
		"Bachelor of Science | University of California | 2016-2020",
		"MBA, Harvard Business School, 2018",
		"Stanford University — 2015",
	}
	for _, line := range headers {
		if !isEducationHeader(line) {
			t.Errorf("isEducationHeader(%q) = false, want true", line)
		}
	}

	nonHeaders := []string{
		"Relevant coursework: algorithms, databases",
		"Dean's list all semesters",
		"Bachelor of Science", // degree but no date
	}
	for _, line := range nonHeaders {
		if isEducationHeader(line) {
			t.Errorf("isEducationHeader(%q) = true, want false", line)
		}
	}
}

func TestExtractEducation_GPAAndDetails(t *testing.T) {
	sections := map[string][]string{
		"education": {
			"Bachelor of Science | State University | 2014-2018",
			"GPA: 3.9",
			"Graduated with honors",
			"Member of the robotics club",
		},
	}

	entries := NewResumeParser().extractEducation(sections)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.GPA != "3.9" {
		t.Errorf("Expected GPA '3.9', got '%s'", entry.GPA)
	}
	if entry.Details != "Graduated with honors Member of the robotics club" {
		t.Errorf("Unexpected details: '%s'", entry.Details)
	}
}

func TestLooksLikeDegree(t *testing.T) {
	if !looksLikeDegree("Bachelor of Science in Computer Science") {
		t.Error("Expected degree line to match")
	}
	if looksLikeDegree("Relevant coursework: Bachelor-level algorithms") {
		t.Error("Coursework lines are not degrees")
	}
	if looksLikeDegree("Graduated with honors") {
		t.Error("Plain detail lines are not degrees")
	}
}

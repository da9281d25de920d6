package parsers

import (
	"reflect"
	"testing"
)

func TestDeduplicateSkills(t *testing.T) {
	got := deduplicateSkills([]string{"JavaScript", "javascript", "Python", "PYTHON", "React"})
	want := []string{"JavaScript", "Python", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("deduplicateSkills = %v, want %v", got, want)
	}
}

func TestDeduplicateSkills_CapitalizedWins(t *testing.T) {
	got := deduplicateSkills([]string{"docker", "Docker", "kubernetes"})
	want := []string{"Docker", "kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("deduplicateSkills = %v, want %v", got, want)
	}
}

func TestIsValidSkill(t *testing.T) {
	valid := []string{"Go", "Python", "Node.js", "C++", "Machine Learning", "CI/CD"}
	for _, skill := range valid {
		if !isValidSkill(skill) {
			t.Errorf("isValidSkill(%q) = false, want true", skill)
		}
	}

	invalid := []string{
		"x",                     // single character
		"Programming Languages", // category header
		"Tools:",                // trailing colon
		"languages",             // category word
		"2019",                  // digits only
		"---",                   // punctuation only
		"HTML/CSS/JS/React",     // multi-slash
		"a very long phrase with too many words inside",
	}
	for _, skill := range invalid {
		if isValidSkill(skill) {
			t.Errorf("isValidSkill(%q) = true, want false", skill)
		}
	}
}

func TestFormatSkill(t *testing.T) {
	tests := map[string]string{
		"javascript": "JavaScript",
		"nodejs":     "Node.js",
		"css":        "CSS",
		"aws":        "AWS",
		"Elixir":     "Elixir", // unmapped passes through
	}
	for input, want := range tests {
		if got := formatSkill(input); got != want {
			t.Errorf("formatSkill(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTokenizeSkillLine(t *testing.T) {
	got := tokenizeSkillLine("Languages: Go (Proficient), Python (Expert); SQL")
	want := []string{"Go", "Python", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenizeSkillLine = %v, want %v", got, want)
	}
}

func TestContextualSkills_LaterMentionSurvivesCategoryFirst(t *testing.T) {
	text := "Programming Languages: Java\nBuilt backend microservices in Java for five years"
	found := contextualSkills(text)

	if !containsSkill(found, "Java") {
		t.Errorf("Java has a running-text mention after the category one, got %v", found)
	}
}

func TestContextualSkills_RejectsCategoryMentions(t *testing.T) {
	text := "Programming Languages: Java\nBuilt data pipelines in Python for analytics"
	found := contextualSkills(text)

	if containsSkill(found, "Java") {
		t.Errorf("Java should be rejected as a category-header mention, got %v", found)
	}
	if !containsSkill(found, "Python") {
		t.Errorf("Python should be found in running text, got %v", found)
	}
}

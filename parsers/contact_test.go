package parsers

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5551234567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"+1-555-123-4567", "+1 (555) 123-4567"},
		{"(987) 654-3210", "(987) 654-3210"},
		{"555.123.4567", "(555) 123-4567"},
		{"123", "123"},
		{"", ""},
	}

	for _, test := range tests {
		if got := NormalizePhone(test.input); got != test.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestExtractDomainFromURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/page", "example.com"},
		{"http://example.com", "example.com"},
		{"www.example.com/a/b", "example.com"},
		{"example.com", "example.com"},
		{"", ""},
		{"https://", "https://"},
	}

	for _, test := range tests {
		if got := ExtractDomainFromURL(test.input); got != test.want {
			t.Errorf("ExtractDomainFromURL(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestIsLikelyName(t *testing.T) {
	valid := []string{"John Doe", "Jane", "Mary Jane Watson", "John D."}
	for _, line := range valid {
		if !isLikelyName(line) {
			t.Errorf("isLikelyName(%q) = false, want true", line)
		}
	}

	invalid := []string{
		"",
		"john doe",
		"John Doe Resume",
		"Phone: 555-123-4567",
		"john@example.com",
		"Summary",
		"Education",
		"A line with far too many words to be anyone's name",
	}
	for _, line := range invalid {
		if isLikelyName(line) {
			t.Errorf("isLikelyName(%q) = true, want false", line)
		}
	}
}

func TestExtractContact_ProfileURLs(t *testing.T) {
	text := "Jane Smith\nlinkedin.com/in/janesmith\ngithub.com/janesmith\nhttps://janesmith.dev"
	parser := NewResumeParser()
	contact := parser.extractContact(text, SplitLines(text))

	if contact.LinkedIn != "https://linkedin.com/in/janesmith" {
		t.Errorf("Expected normalized linkedin URL, got '%s'", contact.LinkedIn)
	}
	if contact.GitHub != "https://github.com/janesmith" {
		t.Errorf("Expected normalized github URL, got '%s'", contact.GitHub)
	}
	if len(contact.Websites) != 1 || contact.Websites[0] != "https://janesmith.dev" {
		t.Errorf("Expected personal site under websites, got %v", contact.Websites)
	}
}

func TestExtractContact_LocationSkipsInstitutions(t *testing.T) {
	text := "John Doe\nUniversity of Texas, Austin, TX\nAustin, TX\njohn@example.com"
	parser := NewResumeParser()
	contact := parser.extractContact(text, SplitLines(text))

	if contact.Location != "Austin, TX" {
		t.Errorf("Expected personal location 'Austin, TX', got '%s'", contact.Location)
	}
}

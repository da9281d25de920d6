package parsers

import (
	"reflect"
	"testing"
)

func TestPreprocess_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t"} {
		if got := Preprocess(input); got != "" {
			t.Errorf("Preprocess(%q) = %q, want empty string", input, got)
		}
	}
}

func TestPreprocess_LineEndings(t *testing.T) {
	got := Preprocess("line one\r\nline two\rline three")
	want := "line one\nline two\nline three"
	if got != want {
		t.Errorf("Preprocess = %q, want %q", got, want)
	}
}

func TestPreprocess_HyphenBreakRepair(t *testing.T) {
	got := Preprocess("devel-\nopment")
	if got != "development" {
		t.Errorf("Expected hyphen-broken word joined, got %q", got)
	}
}

func TestPreprocess_BrokenEmailRepair(t *testing.T) {
	got := Preprocess("contact me at john@example\n.com for details")
	if got != "contact me at john@example.com for details" {
		t.Errorf("Expected broken email repaired, got %q", got)
	}
}

func TestPreprocess_BrokenURLRepair(t *testing.T) {
	got := Preprocess("see https://example.com/port\nfolio today")
	if got != "see https://example.com/portfolio today" {
		t.Errorf("Expected broken URL repaired, got %q", got)
	}
}

func TestPreprocess_BrokenPhoneRepair(t *testing.T) {
	got := Preprocess("call 555\n123\n4567 now")
	if got != "call 555-123-4567 now" {
		t.Errorf("Expected broken phone joined, got %q", got)
	}
}

func TestPreprocess_WhitespaceCollapse(t *testing.T) {
	got := Preprocess("a   b\n\n\n\n\nc")
	if got != "a b\n\nc" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("  first \n\n second\n\t\nthird")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLines_Empty(t *testing.T) {
	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("SplitLines(\"\") = %v, want no lines", got)
	}
}

package parsers

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	hyphenBreakRegex = regexp.MustCompile(`(\w+)-\n\s*(\w+)`)
	emailBreakRegex  = regexp.MustCompile(`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+)\n\s*(\.[A-Za-z]{2,})`)
	urlBreakRegex    = regexp.MustCompile(`(https?://\S+)\n\s*(\S+)`)
	phoneBreakRegex  = regexp.MustCompile(`(\d{3})[-.\s]*\n\s*(\d{3})[-.\s]*\n?\s*(\d{4})`)
	spaceRunRegex    = regexp.MustCompile(`[ \t]+`)
	newlineRunRegex  = regexp.MustCompile(`\n{3,}`)
)

// Preprocess normalizes raw document text before segmentation. The transform
// order matters: line endings and exotic spaces first, then repairs for
// words, emails, URLs and phone numbers broken across line wraps, then
// whitespace collapsing. Empty input yields an empty string.
func Preprocess(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// PDF text layers often emit decomposed runes
	text = norm.NFC.String(text)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "\t", " ")

	text = hyphenBreakRegex.ReplaceAllString(text, "$1$2")
	text = emailBreakRegex.ReplaceAllString(text, "$1$2")
	text = urlBreakRegex.ReplaceAllString(text, "$1$2")
	text = phoneBreakRegex.ReplaceAllString(text, "$1-$2-$3")

	text = spaceRunRegex.ReplaceAllString(text, " ")
	text = newlineRunRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// SplitLines splits preprocessed text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

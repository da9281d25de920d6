package parsers

import (
	"math"
	"strings"
)

// TextFragment is a positioned piece of text from a PDF text layer. X and Y
// are the baseline position in page coordinates, Width the rendered width.
type TextFragment struct {
	Text  string
	X     float64
	Y     float64
	Width float64
}

// Vertical and horizontal gap tolerances for reconstructing reading order
// from absolute glyph positions. Empirical values.
const (
	lineBreakGap = 5.0
	wordSpaceGap = 10.0
)

// ReconstructText turns positioned fragments into linear text, one slice of
// fragments per page. A vertical jump bigger than lineBreakGap starts a new
// line; a horizontal gap bigger than wordSpaceGap inserts a space. Each
// page's output ends with a newline.
func ReconstructText(pages [][]TextFragment) string {
	var sb strings.Builder

	for _, fragments := range pages {
		var lastX, lastY float64
		haveLast := false

		for _, f := range fragments {
			if haveLast {
				if math.Abs(f.Y-lastY) > lineBreakGap {
					sb.WriteString("\n")
				} else if f.X-lastX > wordSpaceGap {
					sb.WriteString(" ")
				}
			}
			sb.WriteString(f.Text)
			lastY = f.Y
			lastX = f.X + f.Width
			haveLast = true
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

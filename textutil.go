package mechdraw

import "golang.org/x/text/width"

// DisplayWidth estimates the printed width of a string in character
// cells relative to the text height: East Asian wide, fullwidth and
// ambiguous runes count as one full cell, everything else as half.
// Multiplied by the text height this approximates the rendered width
// in drawing units for mixed CJK and Latin annotation text.
func DisplayWidth(s string) float64 {
	var cells float64
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
			cells++
		default:
			cells += 0.5
		}
	}
	return cells
}

// TruncateRunes cuts s to at most n runes, never splitting a rune.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

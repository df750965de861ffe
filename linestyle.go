package mechdraw

// LineStyle describes a GB linetype: a human-readable description and a
// signed dash pattern. Positive elements are drawn segments, negative
// elements are gaps, and zero marks a dot (drawn as a point by backends).
// A continuous line has an empty pattern.
//
// The element unit is drawing millimeters at scale 1:1.
type LineStyle struct {
	// Description names the linetype, e.g. "中心线".
	Description string

	// Pattern contains the signed dash/gap/dot lengths.
	// Nil or empty means a continuous line.
	Pattern []float64
}

// IsContinuous reports whether the style draws an unbroken line.
func (s LineStyle) IsContinuous() bool {
	return len(s.Pattern) == 0
}

// PatternLength returns the total length of one pattern cycle,
// counting dashes and gaps alike. Zero for continuous styles.
func (s LineStyle) PatternLength() float64 {
	var total float64
	for _, l := range s.Pattern {
		if l < 0 {
			total -= l
		} else {
			total += l
		}
	}
	return total
}

// Scale returns a copy of the style with all pattern lengths multiplied
// by the given factor. Dash lengths are sheet-space millimeters, so a
// drawing emitted at another scale must scale its patterns with it.
func (s LineStyle) Scale(factor float64) LineStyle {
	if len(s.Pattern) == 0 || factor == 1 {
		return s
	}
	scaled := make([]float64, len(s.Pattern))
	for i, l := range s.Pattern {
		scaled[i] = l * factor
	}
	return LineStyle{Description: s.Description, Pattern: scaled}
}

// Dashes returns the pattern as alternating positive draw/skip lengths
// suitable for stroke-dasharray style consumers. Consecutive segments of
// the same polarity are merged; dots become ticks of the given dot length.
// Returns nil for continuous styles. The result always has even length.
func (s LineStyle) Dashes(dotLen float64) []float64 {
	if s.IsContinuous() {
		return nil
	}
	var out []float64
	drawing := true // dasharray starts with a draw length
	var run float64
	flush := func() {
		out = append(out, run)
		run = 0
		drawing = !drawing
	}
	for _, l := range s.Pattern {
		if l == 0 {
			l = dotLen
		}
		if l > 0 {
			if !drawing {
				flush()
			}
			run += l
		} else {
			if drawing {
				flush()
			}
			run += -l
		}
	}
	flush()
	if len(out)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

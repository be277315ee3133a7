package spinwheel

import "github.com/rivo/uniseg"

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)

	newState = state
	return
}

// StringWidth returns the width of the given string needed to print it on
// screen.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// truncateWidth returns the longest prefix of text that fits into width cells.
func truncateWidth(text string, width int) string {
	var (
		state *stepState
		used  int
		n     int
	)
	str := text
	for len(str) > 0 {
		_, str, state = step(str, state)
		if used+state.Width() > width {
			break
		}
		used += state.Width()
		n += state.GrossLength()
	}
	return text[:n]
}

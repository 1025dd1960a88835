package checklist

import "strings"

type commentState int

const (
	outsideComment commentState = iota
	insideComment
)

// next folds one line into the state. Markers are compared by their last
// occurrence; a line with neither marker keeps the current state.
func (s commentState) next(line string) commentState {
	open := strings.LastIndex(line, CommentStart)
	end := strings.LastIndex(line, CommentEnd)
	switch {
	case open > end:
		return insideComment
	case end > open:
		return outsideComment
	default:
		return s
	}
}

// visibleLines splits body on "\n" and returns the lines that end outside a
// comment block. State starts outside for every body.
func visibleLines(body string) []string {
	state := outsideComment
	var out []string
	for _, line := range strings.Split(body, "\n") {
		state = state.next(line)
		if state == outsideComment {
			out = append(out, line)
		}
	}
	return out
}

package tokenizer

import "strings"

// splitFields cuts line on runs of spaces and tabs.
// An '&' ends the token it occurs in and marks the whole line as background;
// the rest of that token is discarded and tokens left empty are dropped.
func (t *LineTokenizer) splitFields(line string) ([]string, bool) {
	var args []string
	var current strings.Builder
	background := false
	truncated := false

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
		truncated = false
	}

	for _, r := range line {
		switch r {
		case ' ', '\t':
			flush()
		case '&':
			background = true
			truncated = true
		default:
			if !truncated {
				current.WriteRune(r)
			}
		}
	}
	flush()

	return args, background
}

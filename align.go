package specfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align returns a renderer that pads the value's default string form to a
// display width. The spec prefix is '<', '>' or '^' followed by the target
// width: "<10" left-aligns, ">10" right-aligns, "^10" centers. Width is
// measured in terminal columns, so wide characters count as two. Strings
// already at or past the width pass through unchanged; an empty prefix is a
// no-op.
func Align() Renderer {
	return func(v any, spec string) (string, error) {
		s := defaultString(v)
		if spec == "" {
			return s, nil
		}
		dir := spec[0]
		if dir != '<' && dir != '>' && dir != '^' {
			return "", fmt.Errorf("%w: %q is not an alignment", ErrBadSpec, spec)
		}
		width, err := strconv.Atoi(spec[1:])
		if err != nil || width < 0 {
			return "", fmt.Errorf("%w: %q is not an alignment", ErrBadSpec, spec)
		}
		return padCell(s, width, dir), nil
	}
}

func padCell(s string, width int, dir byte) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch dir {
	case '<':
		return s + strings.Repeat(" ", gap)
	case '>':
		return strings.Repeat(" ", gap) + s
	default: // '^'
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
}

package specfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writef interpolates brace placeholders in format through the registry and
// writes the result to w. Placeholder syntax:
//
//	{}       next argument, empty spec
//	{1}      argument by index, empty spec
//	{:.2cm}  next argument, spec ".2cm"
//	{1:.2cm} argument by index with spec
//	{{  }}   literal braces
//
// Automatic and indexed placeholders may not be mixed in one format string.
// Malformed placeholders and out-of-range indexes return an error wrapping
// [ErrBadFormat]; renderer errors propagate unmodified.
func (r *Registry) Writef(w io.Writer, format string, args ...any) error {
	next := 0
	var auto, indexed bool
	for i := 0; i < len(format); {
		switch format[i] {
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				if _, err := io.WriteString(w, "}"); err != nil {
					return err
				}
				i += 2
				continue
			}
			return fmt.Errorf("%w: single '}' at byte %d", ErrBadFormat, i)
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				if _, err := io.WriteString(w, "{"); err != nil {
					return err
				}
				i += 2
				continue
			}
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return fmt.Errorf("%w: unclosed '{' at byte %d", ErrBadFormat, i)
			}
			field := format[i+1 : i+end]
			i += end + 1
			idx, spec, _ := strings.Cut(field, ":")
			var arg any
			if idx == "" {
				if indexed {
					return fmt.Errorf("%w: cannot mix automatic and indexed placeholders", ErrBadFormat)
				}
				auto = true
				if next >= len(args) {
					return fmt.Errorf("%w: placeholder %d has no argument", ErrBadFormat, next)
				}
				arg = args[next]
				next++
			} else {
				if auto {
					return fmt.Errorf("%w: cannot mix automatic and indexed placeholders", ErrBadFormat)
				}
				indexed = true
				n, err := strconv.Atoi(idx)
				if err != nil || n < 0 {
					return fmt.Errorf("%w: bad argument index %q", ErrBadFormat, idx)
				}
				if n >= len(args) {
					return fmt.Errorf("%w: argument index %d out of range", ErrBadFormat, n)
				}
				arg = args[n]
			}
			s, err := r.Format(arg, spec)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		default:
			j := i
			for j < len(format) && format[j] != '{' && format[j] != '}' {
				j++
			}
			if _, err := io.WriteString(w, format[i:j]); err != nil {
				return err
			}
			i = j
		}
	}
	return nil
}

// Formatf interpolates brace placeholders and returns the result. It is a
// buffering wrapper around [Registry.Writef].
func (r *Registry) Formatf(format string, args ...any) (string, error) {
	var b strings.Builder
	if err := r.Writef(&b, format, args...); err != nil {
		return "", err
	}
	return b.String(), nil
}

package specfmt

import "fmt"

// Format renders v according to spec. The resolved renderer receives the
// unmatched prefix of spec; its error, if any, propagates unmodified. When
// no registered key matches, Format degrades to the default conversion and
// never returns an error.
func (r *Registry) Format(v any, spec string) (string, error) {
	if fn, prefix, ok := r.Resolve(v, spec); ok {
		return fn(v, prefix)
	}
	return defaultString(v), nil
}

// defaultString is the ambient conversion used when no renderer matches.
func defaultString(v any) string {
	switch s := v.(type) {
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}

// Wrap binds v and spec into a [fmt.Stringer], so registered renderings can
// flow through fmt verbs and text/template actions:
//
//	fmt.Printf("span: %s\n", reg.Wrap(3.2, ".2cm"))
func (r *Registry) Wrap(v any, spec string) fmt.Stringer {
	return wrapped{r: r, v: v, spec: spec}
}

type wrapped struct {
	r    *Registry
	v    any
	spec string
}

// String renders the wrapped value. A renderer error cannot surface through
// fmt.Stringer, so it is reported inline in fmt's error notation.
func (w wrapped) String() string {
	s, err := w.r.Format(w.v, w.spec)
	if err != nil {
		return fmt.Sprintf("%%!%s(ERROR=%v)", w.spec, err)
	}
	return s
}

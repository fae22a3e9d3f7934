package specfmt

import "reflect"

// Resolve picks the renderer for v and spec. Among every registered key
// that is a suffix of spec the longest wins; length ties go to the table
// with higher precedence: per-type registrations, then the value's own
// [Formattable] table, then global registrations. The returned string is
// spec with the matched suffix removed. ok is false when no key matches;
// that is not an error, callers fall back to default conversion.
//
// The empty key is a suffix of every spec, so a registered default renderer
// matches whenever nothing longer does.
func (r *Registry) Resolve(v any, spec string) (Renderer, string, bool) {
	var (
		fn   Renderer
		size = -1
	)
	consider := func(f Renderer, key string, ok bool) {
		if ok && len(key) > size {
			fn, size = f, len(key)
		}
	}
	if tbl := r.types[reflect.TypeOf(v)]; tbl != nil {
		consider(tbl.match(spec))
	}
	if f, ok := v.(Formattable); ok {
		consider(matchMap(f.Renderers(), spec))
	}
	consider(r.global.match(spec))
	if size < 0 {
		return nil, "", false
	}
	return fn, spec[:len(spec)-size], true
}

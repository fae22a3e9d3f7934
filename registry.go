package specfmt

import (
	"reflect"
	"strings"
)

// Registry maps specifier keys to renderers at two levels: a per-type table
// consulted first and a global table. Registration is last-write-wins and
// meant for setup time; once populated, a Registry is safe for concurrent
// reads. The zero value is ready to use.
type Registry struct {
	global table
	types  map[reflect.Type]*table
}

// table is one key→renderer mapping with insertion order preserved.
type table struct {
	renderers map[string]Renderer
	keys      []string
}

func (t *table) set(key string, fn Renderer) {
	if t.renderers == nil {
		t.renderers = make(map[string]Renderer)
	}
	if _, ok := t.renderers[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.renderers[key] = fn
}

// match returns the renderer under the longest registered key that is a
// suffix of spec. Two distinct keys of equal length cannot both be suffixes
// of the same spec, so length alone decides.
func (t *table) match(spec string) (Renderer, string, bool) {
	best := -1
	var key string
	for _, k := range t.keys {
		if len(k) > best && strings.HasSuffix(spec, k) {
			best, key = len(k), k
		}
	}
	if best < 0 {
		return nil, "", false
	}
	return t.renderers[key], key, true
}

// matchMap is match for an unordered table provided by a [Formattable].
// Uniqueness of the longest matching suffix makes the result deterministic
// despite map iteration order.
func matchMap(m map[string]Renderer, spec string) (Renderer, string, bool) {
	best := -1
	var key string
	for k := range m {
		if len(k) > best && strings.HasSuffix(spec, k) {
			best, key = len(k), k
		}
	}
	if best < 0 {
		return nil, "", false
	}
	return m[key], key, true
}

// Register registers fn as a global renderer under each key. Calling with
// no keys registers the empty key, the default renderer. Re-registering a
// key overwrites the previous renderer.
func (r *Registry) Register(fn Renderer, keys ...string) {
	if len(keys) == 0 {
		keys = []string{""}
	}
	for _, k := range keys {
		r.global.set(k, fn)
	}
}

// RegisterType registers fn under each key for values of type t only.
// Per-type keys shadow same-length global keys for values of that type.
// Calling with no keys registers the empty key.
func (r *Registry) RegisterType(t reflect.Type, fn Renderer, keys ...string) {
	if r.types == nil {
		r.types = make(map[reflect.Type]*table)
	}
	tbl := r.types[t]
	if tbl == nil {
		tbl = &table{}
		r.types[t] = tbl
	}
	if len(keys) == 0 {
		keys = []string{""}
	}
	for _, k := range keys {
		tbl.set(k, fn)
	}
}

// RegisterFor registers a typed rendering function (commonly a method
// expression like T.Render) for values of type T under each key. The
// function is wrapped in a [Renderer] that asserts its receiver type.
func RegisterFor[T any](r *Registry, fn func(T, string) (string, error), keys ...string) {
	r.RegisterType(reflect.TypeOf((*T)(nil)).Elem(), func(v any, spec string) (string, error) {
		return fn(v.(T), spec)
	}, keys...)
}

package specfmt

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBadSpec         = errors.New("malformed spec")
	ErrBadValue        = errors.New("unrenderable value")
	ErrBadFormat       = errors.New("malformed format string")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidProfile  = errors.New("invalid profile")
)

// Renderer produces the string form of a value for a resolved specifier.
// The spec argument is the remainder of the specifier after the matched key
// has been stripped: for spec ".2cm" resolved under key "cm", a Renderer
// receives ".2". Renderers that don't take a sub-format simply ignore it.
type Renderer func(v any, spec string) (string, error)

// Formattable lets a type carry its own renderer table. The table is
// consulted after per-type registrations and before global ones. Keys are
// specifier keys, matched by longest suffix like every other table.
type Formattable interface {
	Renderers() map[string]Renderer
}

// Default is the process-wide registry used by the package-level functions.
var Default = new(Registry)

// Register registers fn in [Default]. See [Registry.Register].
func Register(fn Renderer, keys ...string) { Default.Register(fn, keys...) }

// RegisterType registers fn for type t in [Default]. See [Registry.RegisterType].
func RegisterType(t reflect.Type, fn Renderer, keys ...string) {
	Default.RegisterType(t, fn, keys...)
}

// Resolve resolves against [Default]. See [Registry.Resolve].
func Resolve(v any, spec string) (Renderer, string, bool) { return Default.Resolve(v, spec) }

// Format renders v against [Default]. See [Registry.Format].
func Format(v any, spec string) (string, error) { return Default.Format(v, spec) }

// Wrap binds v and spec against [Default]. See [Registry.Wrap].
func Wrap(v any, spec string) fmt.Stringer { return Default.Wrap(v, spec) }

// Formatf interpolates against [Default]. See [Registry.Formatf].
func Formatf(format string, args ...any) (string, error) { return Default.Formatf(format, args...) }

// Writef interpolates against [Default]. See [Registry.Writef].
func Writef(w io.Writer, format string, args ...any) error {
	return Default.Writef(w, format, args...)
}

// LoadProfile loads a renderer profile into [Default]. See [Registry.LoadProfile].
func LoadProfile(r io.Reader) error { return Default.LoadProfile(r) }

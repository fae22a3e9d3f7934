// Package specfmt customizes a value's string formatting per format
// specifier without embedding that logic in the value's own type. Renderer
// functions are registered under specifier keys, either globally or for a
// single type; at format time the longest registered key that is a suffix
// of the specifier selects the renderer, and the remaining prefix is handed
// to it as a sub-format (precision, width, indent, and so on).
//
//	reg := new(specfmt.Registry)
//	reg.Register(specfmt.Unit("cm"), "cm")
//	s, _ := reg.Format(3.2, ".2cm") // "3.20 cm"
//
// A package-level [Default] registry and mirrored functions cover the
// common single-registry case.
//
// # Registration
//
// Three entry points populate a registry:
//
//   - [Registry.Register] — a global renderer for a set of keys
//   - [Registry.RegisterType] — a renderer for one type, shadowing global
//     keys for values of that type
//   - [RegisterFor] — a typed function or method expression for one type:
//
//	specfmt.RegisterFor(reg, Distance.Centimeters, "cm")
//
// A type can also carry its own table by implementing [Formattable].
// Calling any entry point with no keys registers the empty key, the default
// renderer for that level. Re-registering a key overwrites silently; last
// write wins. Registration is setup-time only: a populated registry is
// safe for concurrent reads, but concurrent registration is not supported.
//
// # Resolution
//
// [Registry.Resolve] selects among all registered keys the longest one that
// is a suffix of the specifier. Length ties are broken by table precedence:
// per-type, then [Formattable], then global. The empty key is a suffix of
// everything and therefore matches only when nothing longer does. No match
// is not an error: [Registry.Format] degrades to the default conversion
// (fmt.Stringer, error, then fmt.Sprint).
//
// # Formatting
//
// [Registry.Format] is the core entry point. [Registry.Wrap] adapts a value
// and specifier into a [fmt.Stringer] so renderings compose with fmt verbs
// and templates:
//
//	fmt.Printf("width: %s\n", reg.Wrap(w, ".1mm"))
//
// Renderer errors propagate unmodified from Format; Wrap reports them
// inline in fmt's error notation, since String cannot return one.
//
// # Brace Placeholders
//
// [Registry.Formatf] and [Registry.Writef] interpolate format strings whose
// placeholders route through the registry:
//
//	reg.Formatf("{} is {:.1cm} tall", name, height)
//	reg.Formatf("{0:B} of {1:B}", used, total)
//
// # Templates
//
// [Registry.TemplateFunc] plugs a registry into a [text/template.FuncMap].
// [TemplateRenderer] goes the other way, compiling a template into a
// [Renderer] that executes against a [TemplateData].
//
// # Profiles
//
// [Registry.LoadProfile] registers renderers declared in a YAML document,
// each entry pairing a key set with a template body. See the example in the
// method documentation.
//
// # Built-in Renderers
//
// [Unit], [Bytes], [Align], [JSONRenderer], and [YAMLRenderer] are ready
// renderers for common specifier vocabularies. None are registered by
// default; callers pick their own keys.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrBadSpec] — a built-in renderer received a malformed sub-format
//   - [ErrBadValue] — a built-in renderer received a value it cannot render
//   - [ErrBadFormat] — malformed Formatf/Writef format string
//   - [ErrInvalidTemplate] — invalid template syntax
//   - [ErrInvalidProfile] — undecodable or incomplete profile document
package specfmt

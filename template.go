package specfmt

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateFunc returns a function for [template.FuncMap], so templates can
// render values through the registry:
//
//	tmpl.Funcs(template.FuncMap{"formatspec": reg.TemplateFunc()})
//	// {{formatspec ".2cm" .Width}}
func (r *Registry) TemplateFunc() func(spec string, v any) (string, error) {
	return func(spec string, v any) (string, error) {
		return r.Format(v, spec)
	}
}

// TemplateData is the dot passed to [TemplateRenderer] templates. Spec
// holds the unmatched prefix of the specifier.
type TemplateData struct {
	Value any
	Spec  string
}

// TemplateRenderer compiles a Go text/template into a [Renderer]. The
// template executes against a [TemplateData]. Parse errors wrap
// [ErrInvalidTemplate].
func TemplateRenderer(tmplStr string) (Renderer, error) {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(v any, spec string) (string, error) {
		var b strings.Builder
		if err := tmpl.Execute(&b, TemplateData{Value: v, Spec: spec}); err != nil {
			return "", err
		}
		return b.String(), nil
	}, nil
}

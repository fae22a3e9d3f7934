package specfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// profile is the YAML document accepted by [Registry.LoadProfile].
type profile struct {
	Renderers []profileEntry `yaml:"renderers"`
}

type profileEntry struct {
	Keys     []string `yaml:"keys"`
	Template string   `yaml:"template"`
}

// LoadProfile reads a YAML renderer profile and registers its entries as
// global renderers. Each entry maps a key set to a template rendered via
// [TemplateRenderer]; an entry with no keys registers the default key.
//
//	renderers:
//	  - keys: ["cm", "mm"]
//	    template: '{{printf "%v%s" .Value .Spec}}'
//	  - template: "{{.Value}}"
//
// Decode and template errors wrap [ErrInvalidProfile]. Entries are
// registered in document order, so a later entry overwrites an earlier one
// registered under the same key.
func (r *Registry) LoadProfile(rd io.Reader) error {
	var p profile
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	for i, e := range p.Renderers {
		if e.Template == "" {
			return fmt.Errorf("%w: renderer %d has no template", ErrInvalidProfile, i)
		}
		fn, err := TemplateRenderer(e.Template)
		if err != nil {
			return fmt.Errorf("%w: renderer %d: %s", ErrInvalidProfile, i, err)
		}
		r.Register(fn, e.Keys...)
	}
	return nil
}

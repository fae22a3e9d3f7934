package specfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSONRenderer returns a renderer that encodes the value as JSON. An empty
// spec prefix produces compact output; a digit prefix selects the indent
// width ("2" indents with two spaces).
func JSONRenderer() Renderer {
	return func(v any, spec string) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if spec != "" {
			n, err := strconv.Atoi(spec)
			if err != nil || n < 0 {
				return "", fmt.Errorf("%w: %q is not an indent", ErrBadSpec, spec)
			}
			enc.SetIndent("", strings.Repeat(" ", n))
		}
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
}

// YAMLRenderer returns a renderer that encodes the value as YAML. A digit
// spec prefix selects the indent width; the encoder requires it to be
// positive.
func YAMLRenderer() Renderer {
	return func(v any, spec string) (string, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if spec != "" {
			n, err := strconv.Atoi(spec)
			if err != nil || n <= 0 {
				return "", fmt.Errorf("%w: %q is not an indent", ErrBadSpec, spec)
			}
			enc.SetIndent(n)
		}
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
}

package specfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Unit returns a renderer that formats a numeric value followed by a space
// and the unit. The spec prefix selects precision in the form ".N":
//
//	reg.Register(specfmt.Unit("cm"), "cm")
//	reg.Format(3.2, ".2cm") // "3.20 cm"
//
// An empty prefix uses the shortest representation. A non-numeric value
// returns an error wrapping [ErrBadValue]; a malformed prefix wraps
// [ErrBadSpec].
func Unit(unit string) Renderer {
	return func(v any, spec string) (string, error) {
		f, err := toFloat(v)
		if err != nil {
			return "", err
		}
		prec := -1
		if spec != "" {
			if prec, err = parsePrecision(spec); err != nil {
				return "", err
			}
		}
		return strconv.FormatFloat(f, 'f', prec, 64) + " " + unit, nil
	}
}

// Bytes returns a renderer for IEC byte sizes ("1.5 KiB"). The spec prefix
// selects precision like [Unit]; the default is one decimal once scaled and
// none for plain bytes.
func Bytes() Renderer {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	return func(v any, spec string) (string, error) {
		f, err := toFloat(v)
		if err != nil {
			return "", err
		}
		prec := -1
		if spec != "" {
			if prec, err = parsePrecision(spec); err != nil {
				return "", err
			}
		}
		i := 0
		for f >= 1024 && i < len(units)-1 {
			f /= 1024
			i++
		}
		if prec < 0 {
			if i == 0 {
				prec = 0
			} else {
				prec = 1
			}
		}
		return strconv.FormatFloat(f, 'f', prec, 64) + " " + units[i], nil
	}
}

func parsePrecision(spec string) (int, error) {
	rest, ok := strings.CutPrefix(spec, ".")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a precision", ErrBadSpec, spec)
	}
	p, err := strconv.Atoi(rest)
	if err != nil || p < 0 {
		return 0, fmt.Errorf("%w: %q is not a precision", ErrBadSpec, spec)
	}
	return p, nil
}

func toFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("%w: %T is not numeric", ErrBadValue, v)
	}
}

package server

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"
)

// Value is an extras value. It is one of string, bool, int64, float64,
// []Value or map[string]Value.
type Value = any

// ToValue converts v into its Value representation.
// Strings must be valid UTF-8. Unsigned integers must fit in an int64.
func ToValue(v any) (Value, error) {
	switch val := v.(type) {
	case string:
		if !utf8.ValidString(val) {
			return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidValue)
		}
		return val, nil
	case bool:
		return val, nil
	case []any:
		out := make([]Value, 0, len(val))
		for i, item := range val {
			conv, err := ToValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, conv)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]Value, len(val))
		for k, item := range val {
			conv, err := ToValue(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = conv
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidValue)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrInvalidValue, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

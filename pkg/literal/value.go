package literal

import (
	"encoding/json"
	"fmt"
)

// undefinedValue marks the JavaScript `undefined` value
type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined is held by a Value resolved from `undefined`.
var Undefined any = undefinedValue{}

// Value is a statically resolved constant.
//
// V holds one of: string, float64, bool, nil (JavaScript null),
// Undefined, []any or map[string]any whose elements are themselves
// values of these types.
type Value struct {
	V any
}

// IsTrue reports whether the value is exactly the boolean true
func (v Value) IsTrue() bool {
	b, ok := v.V.(bool)
	return ok && b
}

// IsUndefined reports whether the value is JavaScript undefined
func (v Value) IsUndefined() bool {
	_, ok := v.V.(undefinedValue)
	return ok
}

// String renders the value the way it would appear in source
func (v Value) String() string {
	switch x := v.V.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	case undefinedValue:
		return x.String()
	default:
		data, err := json.Marshal(plain(x))
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// Interface returns V with Undefined replaced by nil, suitable for
// encoding.
func (v Value) Interface() any {
	return plain(v.V)
}

// MarshalJSON encodes the resolved value; undefined becomes null
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(plain(v.V))
}

// MarshalYAML encodes the resolved value; undefined becomes null
func (v Value) MarshalYAML() (any, error) {
	return plain(v.V), nil
}

func plain(x any) any {
	switch t := x.(type) {
	case undefinedValue:
		return nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = plain(el)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			out[k] = plain(el)
		}
		return out
	default:
		return t
	}
}

// truthy follows JavaScript's ToBoolean
func truthy(x any) bool {
	switch t := x.(type) {
	case nil, undefinedValue:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && t == t
	default:
		return true
	}
}

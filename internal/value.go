package internal

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Kind discriminates the JSON value universe. Every value reachable
// inside a validated container has exactly one kind; anything else
// classifies as KindInvalid.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// KindOf classifies a raw value. Integer and float kinds are distinct,
// and bool is never an int, regardless of Go conversion rules.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindInvalid
	}
}

// IsContainer reports whether v is an Object or Array.
func IsContainer(v any) bool {
	k := KindOf(v)
	return k == KindObject || k == KindArray
}

// AsInt64 normalizes an int-kinded value to int64. ok is false when the
// value is not int-kinded or is a uint64 beyond the int64 range.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// AsFloat64 normalizes a float-kinded value to float64.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// asNumber widens any numeric value to float64 for cross-kind ordering.
func asNumber(v any) (float64, bool) {
	if f, ok := AsFloat64(v); ok {
		return f, true
	}
	if i, ok := AsInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// DeepEqual compares two model values structurally. Integer widths are
// normalized before comparing, but kinds never cross: an int value is
// never equal to a float value, and bool never equals anything numeric.
func DeepEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindInt:
		ia, oka := AsInt64(a)
		ib, okb := AsInt64(b)
		if oka && okb {
			return ia == ib
		}
		// uint64 values beyond int64 range compare directly.
		return a == b
	case KindFloat:
		fa, _ := AsFloat64(a)
		fb, _ := AsFloat64(b)
		return fa == fb
	case KindString:
		return a.(string) == b.(string)
	case KindObject:
		ma, mb := a.(map[string]any), b.(map[string]any)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !DeepEqual(va, vb) {
				return false
			}
		}
		return true
	case KindArray:
		sa, sb := a.([]any), b.([]any)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !DeepEqual(sa[i], sb[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two model values. Numeric values order numerically
// across the int and float kinds. Arrays order lexicographically,
// element by element. ok is false for unorderable pairs: objects, and
// any two values of differing non-numeric kinds.
func Compare(a, b any) (int, bool) {
	ka, kb := KindOf(a), KindOf(b)
	if na, aok := asNumber(a); aok {
		if nb, bok := asNumber(b); bok {
			return compareNumeric(a, b, na, nb), true
		}
		return 0, false
	}
	if ka != kb {
		return 0, false
	}
	switch ka {
	case KindNull:
		return 0, true
	case KindBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0, true
		case bb:
			return -1, true
		default:
			return 1, true
		}
	case KindString:
		sa, sb := a.(string), b.(string)
		switch {
		case sa < sb:
			return -1, true
		case sa > sb:
			return 1, true
		default:
			return 0, true
		}
	case KindArray:
		la, lb := a.([]any), b.([]any)
		for i := 0; i < len(la) && i < len(lb); i++ {
			c, ok := Compare(la[i], lb[i])
			if !ok {
				return 0, false
			}
			if c != 0 {
				return c, true
			}
		}
		switch {
		case len(la) < len(lb):
			return -1, true
		case len(la) > len(lb):
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func compareNumeric(a, b any, na, nb float64) int {
	// Same-kind integers compare exactly to avoid float rounding.
	if ia, ok := AsInt64(a); ok {
		if ib, ok := AsInt64(b); ok {
			switch {
			case ia < ib:
				return -1
			case ia > ib:
				return 1
			default:
				return 0
			}
		}
	}
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}

// DeepCopy returns a structurally independent copy of a model value.
// Scalars are returned as-is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = DeepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = DeepCopy(e)
		}
		return out
	default:
		return v
	}
}

// Repr renders a value for error messages, truncated so that large
// containers do not flood the message.
func Repr(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		s = strconv.Quote(t)
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) <= MaxReprLen {
		return s
	}
	cut := MaxReprLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

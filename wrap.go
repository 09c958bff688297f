package sane

import "github.com/sanedata/sane/internal"

// KindOf classifies a raw value into its kind, or an invalid kind for
// anything outside the value model.
func KindOf(v any) Kind {
	return internal.KindOf(v)
}

// Wrap attaches a façade to an existing raw container without copying,
// validating it recursively. Dispatches on the container kind: a
// map[string]any becomes a *Dict, a []any becomes a *List. Already
// wrapped containers pass through unchanged.
func Wrap(v any) (any, error) {
	switch node := v.(type) {
	case *Dict, *List:
		return node, nil
	case map[string]any:
		return WrapDict(node)
	case []any:
		return WrapList(node)
	default:
		return nil, newValueError("wrap", nil, v, "not an object or array")
	}
}

// WrapUnchecked is Wrap without validation, for data already known to
// conform.
func WrapUnchecked(v any) (any, error) {
	switch node := v.(type) {
	case *Dict, *List:
		return node, nil
	case map[string]any:
		return WrapDictUnchecked(node), nil
	case []any:
		return WrapListUnchecked(node), nil
	default:
		return nil, newValueError("wrap", nil, v, "not an object or array")
	}
}

// Package sane provides a disciplined façade over JSON-shaped nested
// data: path-addressed access with explicit, checked types over plain
// map[string]any and []any containers.
//
// The package removes ad hoc assumptions ("this field is a list of
// objects with a string name") from code that consumes loosely typed
// nested data, without a schema-validation layer.
//
// # Basic Usage
//
// Wrap freshly unmarshalled JSON and read through paths:
//
//	var raw map[string]any
//	_ = json.Unmarshal(body, &raw)
//	d := sane.WrapDictUnchecked(raw)
//
//	login, err := d.GetString([]any{"user", "login"})
//	labels, err := d.Get("labels", sane.ArrayOf(sane.Object))
//
// Writes autovivify missing intermediate objects, atomically:
//
//	err = d.Set([]any{"a", "b", "c"}, 1) // {"a": {"b": {"c": 1}}}
//
// A path is a single string key, a single int index, or a sequence of
// those ([]any, []string, []int). There is no delimiter-string syntax.
// Negative indexes address from the end.
//
// # Type Descriptors
//
// Leaf values are checked against descriptors: the tags Null, Bool,
// Int, Float, String, Object, Array, the Number union, AnyOf unions,
// and the one-level homogeneous forms ArrayOf(T) and ObjectOf(T).
// Int never accepts float values and vice versa; bool is never an int.
//
// # Errors
//
// Failures carry the exact (sub)path and offending value, and match
// sentinel families through errors.Is: ErrLookup for missing data
// (ErrKeyNotFound, ErrIndexOutOfRange, ErrValueNotFound), ErrData for
// malformed data (ErrInvalidStructure, ErrInvalidValue), plus the
// programmer errors ErrPathSyntax and ErrTypeSpec.
//
// # Aliasing
//
// Wrapping is by reference: a façade holds a non-owning handle to the
// raw container, mutations act through that handle, and two façades
// over the same container observe each other's changes. Nothing here
// is safe for concurrent mutation; callers serialize access.
package sane

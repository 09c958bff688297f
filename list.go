package sane

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sanedata/sane/internal"
)

// List is a list-like façade over a raw []any. Element mutation acts
// on the shared backing array and is visible through every alias;
// length-changing operations (Append, Insert, Pop, Delete, ...) re-seat
// the slice header held by this List, so their effect is observed
// through the façade and its Unwrap, not through slice headers handed
// out earlier.
//
// List is not safe for concurrent mutation; callers serialize access.
type List struct {
	data []any
}

// NewList returns an empty List.
func NewList() *List {
	return &List{data: []any{}}
}

// NewListFrom builds a List from a raw slice or another List. The
// top-level elements are copied and validated; nested containers are
// shared, as with a native shallow copy.
func NewListFrom(src any) (*List, error) {
	l := NewList()
	if err := l.Extend(src); err != nil {
		return nil, err
	}
	return l, nil
}

// WrapList attaches a List to an existing slice without copying, after
// validating it recursively against the value model.
func WrapList(s []any) (*List, error) {
	const op = "wrap"
	if err := validateValue(op, s, nil); err != nil {
		return nil, err
	}
	return &List{data: s}, nil
}

// WrapListUnchecked attaches a List to an existing slice without
// copying and without validation.
func WrapListUnchecked(s []any) *List {
	return &List{data: s}
}

// Unwrap returns the underlying slice without copying.
func (l *List) Unwrap() []any {
	return l.data
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.data)
}

// Get resolves a path and returns the value at its end, wrapped if it
// is a container. Negative indexes address from the end.
func (l *List) Get(path any, typ ...Type) (any, error) {
	return containerGet("get", l.data, path, typ)
}

// GetOr is Get with a default for missing data. The default covers
// missing keys and indexes only; a type mismatch still fails.
func (l *List) GetOr(path, def any, typ ...Type) (any, error) {
	return containerGetOr("get", l.data, path, def, typ)
}

// GetString resolves a path and requires a string at its end.
func (l *List) GetString(path any) (string, error) {
	v, err := l.Get(path, String)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// GetInt resolves a path and requires an int-kinded value at its end.
func (l *List) GetInt(path any) (int, error) {
	v, err := l.Get(path, Int)
	if err != nil {
		return 0, err
	}
	n, _ := internal.AsInt64(v)
	return int(n), nil
}

// GetFloat64 resolves a path and requires a float-kinded value.
func (l *List) GetFloat64(path any) (float64, error) {
	v, err := l.Get(path, Float)
	if err != nil {
		return 0, err
	}
	f, _ := internal.AsFloat64(v)
	return f, nil
}

// GetBool resolves a path and requires a bool at its end.
func (l *List) GetBool(path any) (bool, error) {
	v, err := l.Get(path, Bool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetDict resolves a path and requires an Object at its end.
func (l *List) GetDict(path any) (*Dict, error) {
	v, err := l.Get(path, Object)
	if err != nil {
		return nil, err
	}
	return v.(*Dict), nil
}

// GetList resolves a path and requires an Array at its end.
func (l *List) GetList(path any) (*List, error) {
	v, err := l.Get(path, Array)
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

// Set writes value at path. Existing Array slots are replaced in
// place; Arrays are never extended by path writes, and missing Object
// links below the root autovivify per the write rules.
func (l *List) Set(path, value any, typ ...Type) error {
	return containerSet("set", l.data, path, value, typ)
}

// SetDefault returns the value at path, writing and returning the
// default when the path is missing and writable.
func (l *List) SetDefault(path, def any, typ ...Type) (any, error) {
	return containerSetDefault("setdefault", l.data, path, def, typ)
}

// Delete removes the value at path. Removing a top-level element
// shrinks this List.
func (l *List) Delete(path any) error {
	segs, err := parsePath("delete", path)
	if err != nil {
		return err
	}
	newRoot, err := resolveDelete("delete", l.data, segs)
	if err != nil {
		return err
	}
	l.data = newRoot.([]any)
	return nil
}

// Pop removes the value at path and returns it, wrapped if it is a
// container. Pop(-1) pops the last element.
func (l *List) Pop(path any, typ ...Type) (any, error) {
	v, newRoot, err := containerPop("pop", l.data, path, typ)
	if err != nil {
		return nil, err
	}
	l.data = newRoot.([]any)
	return v, nil
}

// PopOr is Pop with a default for missing data.
func (l *List) PopOr(path, def any, typ ...Type) (any, error) {
	v, err := l.Pop(path, typ...)
	if err != nil {
		if errors.Is(err, ErrLookup) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

// Contains reports whether path points to an existing value that also
// satisfies the optional type descriptor. It never fails for data
// reasons; malformed paths or descriptors panic.
func (l *List) Contains(path any, typ ...Type) bool {
	return containerContains("contains", l.data, path, typ)
}

// ContainsValue reports whether an element deeply equal to value is
// present, optionally requiring value to satisfy a type descriptor
// first; a descriptor mismatch is false, not an error.
func (l *List) ContainsValue(value any, typ ...Type) bool {
	const op = "contains"
	t, err := optType(op, typ)
	if err != nil {
		panic(err)
	}
	cleaned, err := cleanValue(op, value, t)
	if err != nil {
		if errors.Is(err, ErrData) {
			return false
		}
		panic(err)
	}
	for _, e := range l.data {
		if internal.DeepEqual(e, cleaned) {
			return true
		}
	}
	return false
}

// Append adds value at the end.
func (l *List) Append(value any, typ ...Type) error {
	const op = "append"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return err
	}
	l.data = append(l.data, value)
	return nil
}

// Extend appends every element of a raw slice or another List. All
// elements are validated before the first is appended.
func (l *List) Extend(src any, typ ...Type) error {
	const op = "extend"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	var elems []any
	switch s := src.(type) {
	case *List:
		elems = s.data
	case []any:
		for i, e := range s {
			if err := validateValue(op, e, []internal.Segment{internal.IndexSegment(i)}); err != nil {
				return err
			}
		}
		elems = s
	default:
		return newValueError(op, nil, src, "expected a []any or *List")
	}
	if t != nil {
		for i, e := range elems {
			if err := checkType(op, e, *t, []internal.Segment{internal.IndexSegment(i)}); err != nil {
				return err
			}
		}
	}
	l.data = append(l.data, elems...)
	return nil
}

// Insert places value at index, clamping out-of-range indexes like the
// native insert. Negative indexes address from the end.
func (l *List) Insert(index int, value any, typ ...Type) error {
	const op = "insert"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return err
	}
	if index < 0 {
		index += len(l.data)
	}
	if index < 0 {
		index = 0
	}
	if index > len(l.data) {
		index = len(l.data)
	}
	l.data = slices.Insert(l.data, index, value)
	return nil
}

// Remove deletes the first element deeply equal to value.
func (l *List) Remove(value any, typ ...Type) error {
	const op = "remove"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return err
	}
	for i, e := range l.data {
		if internal.DeepEqual(e, value) {
			l.data = slices.Delete(l.data, i, i+1)
			return nil
		}
	}
	return &Error{Op: op, Value: value,
		Message: fmt.Sprintf("value not in array: %s", internal.Repr(value)),
		Err:     ErrValueNotFound}
}

// Index returns the position of the first element deeply equal to
// value.
func (l *List) Index(value any, typ ...Type) (int, error) {
	const op = "index"
	t, err := optType(op, typ)
	if err != nil {
		return 0, err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return 0, err
	}
	for i, e := range l.data {
		if internal.DeepEqual(e, value) {
			return i, nil
		}
	}
	return 0, &Error{Op: op, Value: value,
		Message: fmt.Sprintf("value not in array: %s", internal.Repr(value)),
		Err:     ErrValueNotFound}
}

// Count returns how many elements are deeply equal to value.
func (l *List) Count(value any, typ ...Type) (int, error) {
	const op = "count"
	t, err := optType(op, typ)
	if err != nil {
		return 0, err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range l.data {
		if internal.DeepEqual(e, value) {
			n++
		}
	}
	return n, nil
}

// Values returns the elements, each checked against the optional type
// descriptor and wrapped when a container. A mismatch fails at the
// offending element.
func (l *List) Values(typ ...Type) ([]any, error) {
	const op = "values"
	t, err := optType(op, typ)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(l.data))
	for i, e := range l.data {
		if t != nil {
			if err := checkType(op, e, *t, []internal.Segment{internal.IndexSegment(i)}); err != nil {
				return nil, err
			}
		}
		out = append(out, wrapReturned(e))
	}
	return out, nil
}

// ForEach visits elements in order. Each element is checked against
// the optional type descriptor right before fn sees it, so a mismatch
// stops iteration at the offending element. fn returning false stops
// early.
func (l *List) ForEach(fn func(index int, value any) bool, typ ...Type) error {
	const op = "foreach"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	for i, e := range l.data {
		if t != nil {
			if err := checkType(op, e, *t, []internal.Segment{internal.IndexSegment(i)}); err != nil {
				return err
			}
		}
		if !fn(i, wrapReturned(e)) {
			return nil
		}
	}
	return nil
}

// CheckTypes validates every element against a type descriptor.
func (l *List) CheckTypes(t Type) error {
	const op = "check_types"
	if err := resolveType(op, t); err != nil {
		return err
	}
	for i, e := range l.data {
		if err := checkType(op, e, t, []internal.Segment{internal.IndexSegment(i)}); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all elements.
func (l *List) Clear() {
	l.data = l.data[:0]
}

// Reverse reverses in place.
func (l *List) Reverse() {
	slices.Reverse(l.data)
}

// Sort orders elements ascending: numerics numerically (across int and
// float), strings lexicographically, arrays element-wise. Unorderable
// contents fail with an invalid-value error and leave the List
// unchanged.
func (l *List) Sort() error {
	const op = "sort"
	var sortErr error
	backup := slices.Clone(l.data)
	slices.SortStableFunc(l.data, func(a, b any) int {
		c, ok := internal.Compare(a, b)
		if !ok && sortErr == nil {
			sortErr = newValueError(op, nil, b,
				fmt.Sprintf("cannot order %s against %s", internal.KindOf(b), internal.KindOf(a)))
		}
		return c
	})
	if sortErr != nil {
		copy(l.data, backup)
		return sortErr
	}
	return nil
}

// SortFunc orders elements with a caller-supplied less function over
// raw values.
func (l *List) SortFunc(less func(a, b any) bool) {
	slices.SortStableFunc(l.data, func(a, b any) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// Concat returns a new List holding this List's elements followed by
// other's (a raw slice or another List).
func (l *List) Concat(other any) (*List, error) {
	out := &List{data: slices.Clone(l.data)}
	if err := out.Extend(other); err != nil {
		return nil, err
	}
	return out, nil
}

// Copy returns a List over a shallow copy of the slice.
func (l *List) Copy() *List {
	return &List{data: slices.Clone(l.data)}
}

// DeepCopy returns a List over a structurally independent copy.
func (l *List) DeepCopy() *List {
	return &List{data: internal.DeepCopy(l.data).([]any)}
}

// Equal reports deep structural equality with another List or raw
// slice. Wrapper identity is irrelevant.
func (l *List) Equal(other any) bool {
	switch o := other.(type) {
	case *List:
		return internal.DeepEqual(l.data, o.data)
	case []any:
		return internal.DeepEqual(l.data, o)
	default:
		return false
	}
}

// Compare orders this List against another List or raw slice,
// lexicographically element by element. Unorderable element pairs fail
// with an invalid-value error.
func (l *List) Compare(other any) (int, error) {
	const op = "compare"
	var data []any
	switch o := other.(type) {
	case *List:
		data = o.data
	case []any:
		data = o
	default:
		return 0, newValueError(op, nil, other, "expected a []any or *List")
	}
	c, ok := internal.Compare(l.data, data)
	if !ok {
		return 0, newValueError(op, nil, other, "arrays are not orderable")
	}
	return c, nil
}

// Less reports whether this List orders before other.
func (l *List) Less(other any) (bool, error) {
	c, err := l.Compare(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

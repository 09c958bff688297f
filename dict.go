package sane

import (
	"errors"
	"maps"

	"github.com/sanedata/sane/internal"
)

// Dict is a dict-like façade over a raw map[string]any. It holds the
// map by reference: mutations act through that reference and are
// visible to every other holder, wrapped or not. Two Dicts may wrap
// the same map; that aliasing is intentional.
//
// Dict is not safe for concurrent mutation; callers serialize access.
type Dict struct {
	data map[string]any
}

// Item is a key/value pair yielded by Dict.Items.
type Item struct {
	Key   string
	Value any
}

// NewDict returns an empty Dict backed by a fresh map.
func NewDict() *Dict {
	return &Dict{data: make(map[string]any)}
}

// NewDictFrom builds a Dict from a raw map or another Dict. The
// top-level entries are copied and validated; nested containers are
// shared, as with a native shallow copy.
func NewDictFrom(src any) (*Dict, error) {
	d := NewDict()
	if err := d.Update(src); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDictFromKeys builds a Dict mapping every key to value, like the
// native fromkeys. All keys share the same value reference.
func NewDictFromKeys(keys []string, value any) (*Dict, error) {
	const op = "fromkeys"
	value, err := cleanValue(op, value, nil)
	if err != nil {
		return nil, err
	}
	d := NewDict()
	for _, k := range keys {
		d.data[k] = value
	}
	return d, nil
}

// WrapDict attaches a Dict to an existing map without copying, after
// validating it recursively against the value model.
func WrapDict(m map[string]any) (*Dict, error) {
	const op = "wrap"
	if m == nil {
		return nil, newValueError(op, nil, m, "cannot wrap a nil map")
	}
	if err := validateValue(op, m, nil); err != nil {
		return nil, err
	}
	return &Dict{data: m}, nil
}

// WrapDictUnchecked attaches a Dict to an existing map without copying
// and without validation. Intended for data already known to conform,
// such as freshly unmarshalled JSON.
func WrapDictUnchecked(m map[string]any) *Dict {
	return &Dict{data: m}
}

// Unwrap returns the underlying map without copying. The same reference
// this Dict mutates through.
func (d *Dict) Unwrap() map[string]any {
	return d.data
}

// Len returns the number of top-level entries.
func (d *Dict) Len() int {
	return len(d.data)
}

// Get resolves a path and returns the value at its end, wrapped if it
// is a container. An optional type descriptor is enforced at the leaf.
func (d *Dict) Get(path any, typ ...Type) (any, error) {
	return containerGet("get", d.data, path, typ)
}

// GetOr is Get with a default for missing data. The default covers
// missing keys and indexes only; a type mismatch still fails.
func (d *Dict) GetOr(path, def any, typ ...Type) (any, error) {
	return containerGetOr("get", d.data, path, def, typ)
}

// GetString resolves a path and requires a string at its end.
func (d *Dict) GetString(path any) (string, error) {
	v, err := d.Get(path, String)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// GetInt resolves a path and requires an int-kinded value at its end.
func (d *Dict) GetInt(path any) (int, error) {
	v, err := d.Get(path, Int)
	if err != nil {
		return 0, err
	}
	n, _ := internal.AsInt64(v)
	return int(n), nil
}

// GetFloat64 resolves a path and requires a float-kinded value at its
// end. Int values do not satisfy it; use Get with Number for either.
func (d *Dict) GetFloat64(path any) (float64, error) {
	v, err := d.Get(path, Float)
	if err != nil {
		return 0, err
	}
	f, _ := internal.AsFloat64(v)
	return f, nil
}

// GetBool resolves a path and requires a bool at its end.
func (d *Dict) GetBool(path any) (bool, error) {
	v, err := d.Get(path, Bool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetDict resolves a path and requires an Object at its end.
func (d *Dict) GetDict(path any) (*Dict, error) {
	v, err := d.Get(path, Object)
	if err != nil {
		return nil, err
	}
	return v.(*Dict), nil
}

// GetList resolves a path and requires an Array at its end.
func (d *Dict) GetList(path any) (*List, error) {
	v, err := d.Get(path, Array)
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

// Set writes value at path, creating missing intermediate Objects.
// The write is atomic: on any failure the structure is unchanged.
func (d *Dict) Set(path, value any, typ ...Type) error {
	return containerSet("set", d.data, path, value, typ)
}

// SetDefault returns the value at path, writing and returning the
// default when the path is missing.
func (d *Dict) SetDefault(path, def any, typ ...Type) (any, error) {
	return containerSetDefault("setdefault", d.data, path, def, typ)
}

// Delete removes the value at path. Missing links fail like a read.
func (d *Dict) Delete(path any) error {
	segs, err := parsePath("delete", path)
	if err != nil {
		return err
	}
	_, err = resolveDelete("delete", d.data, segs)
	return err
}

// Pop removes the value at path and returns it, wrapped if it is a
// container.
func (d *Dict) Pop(path any, typ ...Type) (any, error) {
	v, _, err := containerPop("pop", d.data, path, typ)
	return v, err
}

// PopOr is Pop with a default for missing data.
func (d *Dict) PopOr(path, def any, typ ...Type) (any, error) {
	v, err := d.Pop(path, typ...)
	if err != nil {
		if errors.Is(err, ErrLookup) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

// PopItem removes and returns the first entry in sorted key order.
func (d *Dict) PopItem() (string, any, error) {
	if len(d.data) == 0 {
		return "", nil, &Error{Op: "popitem", Message: "object is empty", Err: ErrKeyNotFound}
	}
	key := sortedKeys(d.data)[0]
	value := d.data[key]
	delete(d.data, key)
	return key, wrapReturned(value), nil
}

// Contains reports whether path points to an existing value that also
// satisfies the optional type descriptor. It never fails for data
// reasons; malformed paths or descriptors panic.
func (d *Dict) Contains(path any, typ ...Type) bool {
	return containerContains("contains", d.data, path, typ)
}

// Keys returns the top-level keys in sorted order.
func (d *Dict) Keys() []string {
	return sortedKeys(d.data)
}

// Values returns the top-level values in sorted key order, each checked
// against the optional type descriptor and wrapped when a container.
// A mismatch fails at the offending element.
func (d *Dict) Values(typ ...Type) ([]any, error) {
	const op = "values"
	t, err := optType(op, typ)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(d.data))
	for _, key := range d.Keys() {
		v := d.data[key]
		if t != nil {
			if err := checkType(op, v, *t, []internal.Segment{internal.KeySegment(key)}); err != nil {
				return nil, err
			}
		}
		out = append(out, wrapReturned(v))
	}
	return out, nil
}

// Items returns the top-level entries in sorted key order, with the
// same type enforcement as Values.
func (d *Dict) Items(typ ...Type) ([]Item, error) {
	const op = "items"
	t, err := optType(op, typ)
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(d.data))
	for _, key := range d.Keys() {
		v := d.data[key]
		if t != nil {
			if err := checkType(op, v, *t, []internal.Segment{internal.KeySegment(key)}); err != nil {
				return nil, err
			}
		}
		out = append(out, Item{Key: key, Value: wrapReturned(v)})
	}
	return out, nil
}

// ForEach visits entries in sorted key order. Each value is checked
// against the optional type descriptor right before fn sees it, so a
// mismatch stops iteration at the offending element. fn returning
// false stops early.
func (d *Dict) ForEach(fn func(key string, value any) bool, typ ...Type) error {
	const op = "foreach"
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	for _, key := range d.Keys() {
		v := d.data[key]
		if t != nil {
			if err := checkType(op, v, *t, []internal.Segment{internal.KeySegment(key)}); err != nil {
				return err
			}
		}
		if !fn(key, wrapReturned(v)) {
			return nil
		}
	}
	return nil
}

// CheckTypes validates every top-level value against a type descriptor.
func (d *Dict) CheckTypes(t Type) error {
	const op = "check_types"
	if err := resolveType(op, t); err != nil {
		return err
	}
	for _, key := range d.Keys() {
		if err := checkType(op, d.data[key], t, []internal.Segment{internal.KeySegment(key)}); err != nil {
			return err
		}
	}
	return nil
}

// Update merges entries from a raw map or another Dict, validating
// every incoming value before the first entry is written.
func (d *Dict) Update(src any) error {
	const op = "update"
	switch s := src.(type) {
	case *Dict:
		maps.Copy(d.data, s.data)
		return nil
	case map[string]any:
		for _, key := range sortedKeys(s) {
			if err := validateValue(op, s[key], []internal.Segment{internal.KeySegment(key)}); err != nil {
				return err
			}
		}
		maps.Copy(d.data, s)
		return nil
	default:
		return newValueError(op, nil, src, "expected a map[string]any or *Dict")
	}
}

// Clear removes all entries.
func (d *Dict) Clear() {
	clear(d.data)
}

// Copy returns a Dict over a shallow copy of the map: top-level entries
// are independent, nested containers shared.
func (d *Dict) Copy() *Dict {
	return &Dict{data: maps.Clone(d.data)}
}

// DeepCopy returns a Dict over a structurally independent copy.
func (d *Dict) DeepCopy() *Dict {
	return &Dict{data: internal.DeepCopy(d.data).(map[string]any)}
}

// Equal reports deep structural equality with another Dict or raw map.
// Wrapper identity is irrelevant; only unwrapped content counts.
func (d *Dict) Equal(other any) bool {
	switch o := other.(type) {
	case *Dict:
		return internal.DeepEqual(d.data, o.data)
	case map[string]any:
		return internal.DeepEqual(d.data, o)
	default:
		return false
	}
}

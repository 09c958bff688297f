package sane

import (
	"errors"
	"slices"

	"github.com/sanedata/sane/internal"
)

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// appendSegment extends a path without aliasing the caller's slice.
func appendSegment(path []internal.Segment, seg internal.Segment) []internal.Segment {
	out := make([]internal.Segment, len(path)+1)
	copy(out, path)
	out[len(path)] = seg
	return out
}

// cleanValue prepares a caller-supplied value for insertion: façades
// are unwrapped to their raw containers, everything else is validated
// against the value model, and an explicit type descriptor is enforced
// when present. Runs entirely before any mutation.
func cleanValue(op string, value any, t *Type) (any, error) {
	switch w := value.(type) {
	case *Dict:
		value = w.data
	case *List:
		value = w.data
	default:
		if err := validateValue(op, value, nil); err != nil {
			return nil, err
		}
	}
	if t != nil {
		if err := checkType(op, value, *t, nil); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// wrapReturned attaches a transient façade to a nested raw container
// before it is handed back to the caller. Scalars pass through.
// Repeated access to the same nested structure produces distinct
// façades referencing the same underlying data.
func wrapReturned(v any) any {
	switch node := v.(type) {
	case map[string]any:
		return WrapDictUnchecked(node)
	case []any:
		return WrapListUnchecked(node)
	default:
		return v
	}
}

func containerGet(op string, root, pathLike any, typ []Type) (any, error) {
	t, err := optType(op, typ)
	if err != nil {
		return nil, err
	}
	segs, err := parsePath(op, pathLike)
	if err != nil {
		return nil, err
	}
	v, err := resolveRead(op, root, segs)
	if err != nil {
		return nil, err
	}
	if t != nil {
		if err := checkType(op, v, *t, segs); err != nil {
			return nil, err
		}
	}
	return wrapReturned(v), nil
}

// containerGetOr converts missing-data failures into the supplied
// default. Data and programmer errors still propagate.
func containerGetOr(op string, root, pathLike, def any, typ []Type) (any, error) {
	v, err := containerGet(op, root, pathLike, typ)
	if err != nil {
		if errors.Is(err, ErrLookup) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

func containerSet(op string, root, pathLike, value any, typ []Type) error {
	t, err := optType(op, typ)
	if err != nil {
		return err
	}
	segs, err := parsePath(op, pathLike)
	if err != nil {
		return err
	}
	value, err = cleanValue(op, value, t)
	if err != nil {
		return err
	}
	return resolveWrite(op, root, segs, value)
}

func containerSetDefault(op string, root, pathLike, def any, typ []Type) (any, error) {
	t, err := optType(op, typ)
	if err != nil {
		return nil, err
	}
	segs, err := parsePath(op, pathLike)
	if err != nil {
		return nil, err
	}
	v, err := resolveRead(op, root, segs)
	if err != nil {
		if !errors.Is(err, ErrLookup) {
			return nil, err
		}
		cleaned, cerr := cleanValue(op, def, t)
		if cerr != nil {
			return nil, cerr
		}
		if werr := resolveWrite(op, root, segs, cleaned); werr != nil {
			return nil, werr
		}
		return wrapReturned(cleaned), nil
	}
	if t != nil {
		if terr := checkType(op, v, *t, segs); terr != nil {
			return nil, terr
		}
	}
	// The default is validated even when an existing value was found,
	// so the call site stays strict regardless of container contents.
	if _, cerr := cleanValue(op, def, t); cerr != nil {
		return nil, cerr
	}
	return wrapReturned(v), nil
}

// containerPop reads, type-checks, then deletes. Returns the wrapped
// value and the possibly re-seated root.
func containerPop(op string, root, pathLike any, typ []Type) (any, any, error) {
	t, err := optType(op, typ)
	if err != nil {
		return nil, root, err
	}
	segs, err := parsePath(op, pathLike)
	if err != nil {
		return nil, root, err
	}
	v, err := resolveRead(op, root, segs)
	if err != nil {
		return nil, root, err
	}
	if t != nil {
		if err := checkType(op, v, *t, segs); err != nil {
			return nil, root, err
		}
	}
	newRoot, err := resolveDelete(op, root, segs)
	if err != nil {
		return nil, root, err
	}
	return wrapReturned(v), newRoot, nil
}

// containerContains never fails for data reasons: missing data and
// data errors become false. Programmer errors (malformed path or type
// descriptor) panic, since a predicate has no error channel.
func containerContains(op string, root, pathLike any, typ []Type) bool {
	_, err := containerGet(op, root, pathLike, typ)
	if err == nil {
		return true
	}
	if errors.Is(err, ErrLookup) || errors.Is(err, ErrData) {
		return false
	}
	panic(err)
}

package sane

import "github.com/sanedata/sane/internal"

// PathSegment is one normalized step of a path.
// Alias to the internal representation, following the same convention
// as the error and kind types.
type PathSegment = internal.Segment

// parsePath normalizes a path-like value into a canonical segment
// sequence. Accepted forms: a single string key, a single int index
// (int, int32 or int64), or a non-empty sequence of those ([]any,
// []string or []int). Anything else is a path-syntax error, detected
// here rather than during traversal.
func parsePath(op string, pathLike any) ([]internal.Segment, error) {
	switch p := pathLike.(type) {
	case string:
		return []internal.Segment{internal.KeySegment(p)}, nil
	case int:
		return []internal.Segment{internal.IndexSegment(p)}, nil
	case int32:
		return []internal.Segment{internal.IndexSegment(int(p))}, nil
	case int64:
		return []internal.Segment{internal.IndexSegment(int(p))}, nil
	case []string:
		if len(p) == 0 {
			return nil, newPathSyntaxError(op, pathLike, "empty path")
		}
		segs := make([]internal.Segment, len(p))
		for i, key := range p {
			segs[i] = internal.KeySegment(key)
		}
		return segs, nil
	case []int:
		if len(p) == 0 {
			return nil, newPathSyntaxError(op, pathLike, "empty path")
		}
		segs := make([]internal.Segment, len(p))
		for i, idx := range p {
			segs[i] = internal.IndexSegment(idx)
		}
		return segs, nil
	case []any:
		if len(p) == 0 {
			return nil, newPathSyntaxError(op, pathLike, "empty path")
		}
		segs := make([]internal.Segment, len(p))
		for i, el := range p {
			switch s := el.(type) {
			case string:
				segs[i] = internal.KeySegment(s)
			case int:
				segs[i] = internal.IndexSegment(s)
			case int32:
				segs[i] = internal.IndexSegment(int(s))
			case int64:
				segs[i] = internal.IndexSegment(int(s))
			default:
				return nil, newPathSyntaxError(op, pathLike,
					"path must contain only string keys or int indexes")
			}
		}
		return segs, nil
	default:
		return nil, newPathSyntaxError(op, pathLike,
			"path must be a string key, an int index, or a sequence of those")
	}
}

// checkRootKind rejects paths that can never address the root container:
// an index into an Object root or a key into an Array root is a
// programmer error, not a data error.
func checkRootKind(op string, root any, path []internal.Segment) error {
	switch internal.KindOf(root) {
	case internal.KindObject:
		if path[0].IsIndex {
			return newPathSyntaxError(op, internal.FormatPath(path),
				"object path must start with a string key")
		}
	case internal.KindArray:
		if !path[0].IsIndex {
			return newPathSyntaxError(op, internal.FormatPath(path),
				"array path must start with an int index")
		}
	}
	return nil
}

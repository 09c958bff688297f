package sane

import "github.com/sanedata/sane/internal"

// Path traversal engine. All path-bearing operations funnel through the
// resolvers in this file. The walk enforces container kinds at every
// step: a string segment requires an Object, an int segment requires an
// Array, and a mismatch reports the sub-path walked so far together
// with the full path. Writes are two-phase so a failed write never
// leaves partially created structure behind.

// stepInto fetches one segment from cur, which has already been
// kind-checked against the segment.
func stepInto(op string, cur any, path []internal.Segment, i int) (any, error) {
	seg := path[i]
	if seg.IsIndex {
		node := cur.([]any)
		idx, ok := internal.NormalizeIndex(seg.Index, len(node))
		if !ok {
			return nil, newIndexError(op, path[:i+1])
		}
		return node[idx], nil
	}
	node := cur.(map[string]any)
	v, ok := node[seg.Key]
	if !ok {
		return nil, newKeyError(op, path[:i+1])
	}
	return v, nil
}

// checkStep verifies that cur is the container kind segment i requires.
func checkStep(op string, cur any, path []internal.Segment, i int) error {
	seg := path[i]
	if seg.IsIndex {
		if _, ok := cur.([]any); !ok {
			return newStructureError(op, path[:i], path, internal.KindArray, cur)
		}
		return nil
	}
	if _, ok := cur.(map[string]any); !ok {
		return newStructureError(op, path[:i], path, internal.KindObject, cur)
	}
	return nil
}

// resolveRead walks the full path and returns the raw value at its end.
func resolveRead(op string, root any, path []internal.Segment) (any, error) {
	if err := checkRootKind(op, root, path); err != nil {
		return nil, err
	}
	cur := root
	for i := range path {
		if err := checkStep(op, cur, path, i); err != nil {
			return nil, err
		}
		v, err := stepInto(op, cur, path, i)
		if err != nil {
			return nil, err
		}
		cur = v
	}
	return cur, nil
}

// resolveWrite sets value at path, creating missing intermediate
// Objects. It is two-phase: phase 1 proves that every step is either
// present and compatible or creatable, phase 2 commits. Autovivification
// applies only to missing Object keys; a missing link that would require
// creating or extending an Array fails before any mutation. A failed
// write therefore leaves root completely unchanged.
func resolveWrite(op string, root any, path []internal.Segment, value any) error {
	if err := checkRootKind(op, root, path); err != nil {
		return err
	}

	// Phase 1: dry walk over all non-final segments.
	cur := root
	createFrom := -1
	var createParent map[string]any
	for i := 0; i < len(path)-1; i++ {
		if err := checkStep(op, cur, path, i); err != nil {
			return err
		}
		seg := path[i]
		if seg.IsIndex {
			node := cur.([]any)
			idx, ok := internal.NormalizeIndex(seg.Index, len(node))
			if !ok {
				// Arrays are never autovivified or extended.
				return newIndexError(op, path[:i+1])
			}
			cur = node[idx]
			continue
		}
		node := cur.(map[string]any)
		v, ok := node[seg.Key]
		if !ok {
			createFrom = i
			createParent = node
			break
		}
		cur = v
	}

	if createFrom >= 0 {
		// Every link from the first missing segment onward will be a
		// freshly created Object, so every remaining segment must be a
		// key. An index segment here would require creating an Array.
		for j := createFrom + 1; j < len(path); j++ {
			if path[j].IsIndex {
				return newStructureError(op, path[:j], path, internal.KindObject, []any(nil))
			}
		}
		// Phase 2: materialize the missing Objects, then set the leaf.
		node := createParent
		for j := createFrom; j < len(path)-1; j++ {
			next := make(map[string]any)
			node[path[j].Key] = next
			node = next
		}
		node[path[len(path)-1].Key] = value
		return nil
	}

	// No creation needed: the final parent exists, set into it.
	last := len(path) - 1
	if err := checkStep(op, cur, path, last); err != nil {
		return err
	}
	seg := path[last]
	if seg.IsIndex {
		node := cur.([]any)
		idx, ok := internal.NormalizeIndex(seg.Index, len(node))
		if !ok {
			return newIndexError(op, path)
		}
		node[idx] = value
		return nil
	}
	cur.(map[string]any)[seg.Key] = value
	return nil
}

// resolveDelete removes the value at path. Deletion never autovivifies;
// a missing link fails exactly like a read. Removing an Array element
// shrinks a slice, which rewrites the parent's slot; the possibly
// updated root is returned so the façade can re-seat its own header.
func resolveDelete(op string, root any, path []internal.Segment) (any, error) {
	if err := checkRootKind(op, root, path); err != nil {
		return nil, err
	}
	return deleteAt(op, root, path, 0)
}

func deleteAt(op string, cur any, path []internal.Segment, depth int) (any, error) {
	if err := checkStep(op, cur, path, depth); err != nil {
		return nil, err
	}
	seg := path[depth]
	last := depth == len(path)-1

	if seg.IsIndex {
		node := cur.([]any)
		idx, ok := internal.NormalizeIndex(seg.Index, len(node))
		if !ok {
			return nil, newIndexError(op, path[:depth+1])
		}
		if last {
			return append(node[:idx], node[idx+1:]...), nil
		}
		nv, err := deleteAt(op, node[idx], path, depth+1)
		if err != nil {
			return nil, err
		}
		node[idx] = nv
		return node, nil
	}

	node := cur.(map[string]any)
	v, ok := node[seg.Key]
	if !ok {
		return nil, newKeyError(op, path[:depth+1])
	}
	if last {
		delete(node, seg.Key)
		return node, nil
	}
	nv, err := deleteAt(op, v, path, depth+1)
	if err != nil {
		return nil, err
	}
	node[seg.Key] = nv
	return node, nil
}

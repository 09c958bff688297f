package sane

import (
	"fmt"

	"github.com/sanedata/sane/internal"
)

// validateValue recursively checks that v conforms to the value model:
// null, bool, int, float, string, or a map[string]any / []any container
// of those. The first offending value is reported with its exact
// sub-path. Keys iterate in sorted order so the first offender is
// deterministic.
func validateValue(op string, v any, at []internal.Segment) error {
	switch node := v.(type) {
	case map[string]any:
		for _, key := range sortedKeys(node) {
			if err := validateValue(op, node[key], appendSegment(at, internal.KeySegment(key))); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, e := range node {
			if err := validateValue(op, e, appendSegment(at, internal.IndexSegment(i))); err != nil {
				return err
			}
		}
		return nil
	default:
		if internal.KindOf(v) == internal.KindInvalid {
			return newValueError(op, at, v, fmt.Sprintf("invalid value of type %T", v))
		}
		return nil
	}
}

package sane

import (
	"fmt"
	"strings"

	"github.com/sanedata/sane/internal"
)

// Kind is the discriminant of the JSON value universe.
// It is defined in the internal package and aliased here for callers.
type Kind = internal.Kind

type kindMask uint16

func maskOf(k Kind) kindMask {
	return 1 << k
}

func (m kindMask) has(k Kind) bool {
	return m&maskOf(k) != 0
}

// String renders a mask as a union of kind names, e.g. "int or float".
func (m kindMask) String() string {
	var names []string
	for k := internal.KindNull; k <= internal.KindArray; k++ {
		if m.has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, " or ")
}

// Type is a canonical type descriptor: a scalar/container tag (possibly
// a union of tags), a homogeneous Array-of-T, or a homogeneous
// Object-of-T with string keys. The zero Type is not a valid
// descriptor; operations receiving one fail with ErrTypeSpec.
type Type struct {
	mask      kindMask // accepted kinds at the addressed location
	elem      kindMask // element kinds for ArrayOf/ObjectOf, zero otherwise
	malformed string   // diagnosis when the descriptor was built incorrectly
}

func tagType(k Kind) Type {
	return Type{mask: maskOf(k)}
}

// Scalar and container tags. Int never accepts Float values and vice
// versa; Bool never satisfies Int. Number is the explicit Int-or-Float
// union for callers that accept either.
var (
	Null   = tagType(internal.KindNull)
	Bool   = tagType(internal.KindBool)
	Int    = tagType(internal.KindInt)
	Float  = tagType(internal.KindFloat)
	String = tagType(internal.KindString)
	Object = tagType(internal.KindObject)
	Array  = tagType(internal.KindArray)
	Number = Type{mask: maskOf(internal.KindInt) | maskOf(internal.KindFloat)}
)

// AnyOf combines tag descriptors into a union of acceptable tags.
// ArrayOf/ObjectOf descriptors cannot participate in unions.
func AnyOf(types ...Type) Type {
	if len(types) == 0 {
		return Type{malformed: "empty type union"}
	}
	var m kindMask
	for _, t := range types {
		if t.malformed != "" {
			return t
		}
		if t.elem != 0 {
			return Type{malformed: "type union must contain only scalar or container tags"}
		}
		if t.mask == 0 {
			return Type{malformed: "zero type descriptor in union"}
		}
		m |= t.mask
	}
	return Type{mask: m}
}

// ArrayOf describes a homogeneous array whose every element matches t.
// Element descriptors deeper than one container level are rejected.
func ArrayOf(t Type) Type {
	elem, diag := elementMask("array", t)
	if diag != "" {
		return Type{malformed: diag}
	}
	return Type{mask: maskOf(internal.KindArray), elem: elem}
}

// ObjectOf describes a homogeneous object whose every value matches t.
// Keys are always strings. Element descriptors deeper than one
// container level are rejected.
func ObjectOf(t Type) Type {
	elem, diag := elementMask("object", t)
	if diag != "" {
		return Type{malformed: diag}
	}
	return Type{mask: maskOf(internal.KindObject), elem: elem}
}

func elementMask(container string, t Type) (kindMask, string) {
	if t.malformed != "" {
		return 0, t.malformed
	}
	if t.elem != 0 {
		return 0, container + " element type must not itself be ArrayOf or ObjectOf"
	}
	if t.mask == 0 {
		return 0, "zero type descriptor for " + container + " element"
	}
	return t.mask, ""
}

// String renders the descriptor in error messages: "int", "int or
// float", "[string]" for arrays, "{str: bool}" for objects.
func (t Type) String() string {
	if t.malformed != "" || t.mask == 0 {
		return "<invalid type>"
	}
	if t.elem != 0 {
		if t.mask.has(internal.KindArray) {
			return fmt.Sprintf("[%s]", t.elem)
		}
		return fmt.Sprintf("{str: %s}", t.elem)
	}
	return t.mask.String()
}

// resolveType rejects malformed descriptors before any traversal work.
func resolveType(op string, t Type) error {
	if t.malformed != "" {
		return newTypeSpecError(op, t.malformed)
	}
	if t.mask == 0 {
		return newTypeSpecError(op, "zero type descriptor")
	}
	return nil
}

// optType normalizes the trailing variadic type argument carried by
// most operations: absent, or exactly one valid descriptor.
func optType(op string, typ []Type) (*Type, error) {
	switch len(typ) {
	case 0:
		return nil, nil
	case 1:
		if err := resolveType(op, typ[0]); err != nil {
			return nil, err
		}
		return &typ[0], nil
	default:
		return nil, newTypeSpecError(op, "at most one type descriptor is allowed")
	}
}

// checkType enforces a resolved descriptor against a value found at
// path. For ArrayOf/ObjectOf the error names the offending element's
// exact path.
func checkType(op string, value any, t Type, path []internal.Segment) error {
	k := internal.KindOf(value)
	if !t.mask.has(k) {
		return newValueError(op, path, value,
			fmt.Sprintf("expected %s, got %s", t, k))
	}
	if t.elem == 0 {
		return nil
	}
	switch node := value.(type) {
	case []any:
		for i, e := range node {
			if ek := internal.KindOf(e); !t.elem.has(ek) {
				return newValueError(op, appendSegment(path, internal.IndexSegment(i)), e,
					fmt.Sprintf("expected %s element, got %s", t.elem, ek))
			}
		}
	case map[string]any:
		for _, key := range sortedKeys(node) {
			e := node[key]
			if ek := internal.KindOf(e); !t.elem.has(ek) {
				return newValueError(op, appendSegment(path, internal.KeySegment(key)), e,
					fmt.Sprintf("expected %s value, got %s", t.elem, ek))
			}
		}
	}
	return nil
}

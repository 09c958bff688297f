package sane

import (
	"errors"
	"fmt"

	"github.com/sanedata/sane/internal"
)

// Sentinel errors forming the error taxonomy. Leaf sentinels identify
// the exact failure; the group sentinels ErrLookup and ErrData match
// whole families through errors.Is, so callers can handle "anything
// missing" or "anything malformed" without enumerating kinds.
var (
	// Group sentinels.
	ErrLookup = errors.New("lookup failed")
	ErrData   = errors.New("data error")

	// Missing-data errors (ErrLookup family).
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrValueNotFound   = errors.New("value not found")

	// Data errors (ErrData family).
	ErrInvalidStructure = errors.New("invalid structure")
	ErrInvalidValue     = errors.New("invalid value")

	// Programmer errors. These indicate incorrect call sites and are
	// not meant to be caught.
	ErrPathSyntax = errors.New("invalid path syntax")
	ErrTypeSpec   = errors.New("invalid type descriptor")
)

// Error is the structured error returned by every operation. It carries
// the operation name, the rendered (sub)path where the failure was
// detected, the offending value when relevant, and a leaf sentinel
// reachable through errors.Is.
type Error struct {
	Op      string // operation that failed
	Path    string // rendered (sub)path where the error occurred
	Value   any    // offending value, when relevant
	Message string // human-readable description
	Err     error  // leaf sentinel
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sane: %s failed at path %s: %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("sane: %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the leaf sentinel for error chain matching.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps the group sentinels onto their members; leaf sentinels are
// matched through Unwrap.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrLookup:
		return e.Err == ErrKeyNotFound || e.Err == ErrIndexOutOfRange || e.Err == ErrValueNotFound
	case ErrData:
		return e.Err == ErrInvalidStructure || e.Err == ErrInvalidValue
	}
	return false
}

func newKeyError(op string, path []internal.Segment) error {
	return &Error{
		Op:      op,
		Path:    internal.FormatPath(path),
		Message: "missing key",
		Err:     ErrKeyNotFound,
	}
}

func newIndexError(op string, path []internal.Segment) error {
	return &Error{
		Op:      op,
		Path:    internal.FormatPath(path),
		Message: "index out of range",
		Err:     ErrIndexOutOfRange,
	}
}

func newStructureError(op string, sub, full []internal.Segment, want internal.Kind, got any) error {
	return &Error{
		Op:   op,
		Path: internal.FormatPath(sub),
		Message: fmt.Sprintf("expected %s, got %s at subpath %s of %s",
			want, internal.KindOf(got), internal.FormatPath(sub), internal.FormatPath(full)),
		Err: ErrInvalidStructure,
	}
}

func newValueError(op string, path []internal.Segment, value any, message string) error {
	e := &Error{
		Op:      op,
		Value:   value,
		Message: fmt.Sprintf("%s: %s", message, internal.Repr(value)),
		Err:     ErrInvalidValue,
	}
	if len(path) > 0 {
		e.Path = internal.FormatPath(path)
	}
	return e
}

func newPathSyntaxError(op string, pathLike any, message string) error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("%s: %s", message, internal.Repr(pathLike)),
		Err:     ErrPathSyntax,
	}
}

func newTypeSpecError(op, message string) error {
	return &Error{
		Op:      op,
		Message: message,
		Err:     ErrTypeSpec,
	}
}

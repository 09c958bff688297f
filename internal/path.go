package internal

import (
	"strconv"
	"strings"
)

// Segment is one step of a resolved path: an Object key or an Array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment returns a Segment addressing an Object key.
func KeySegment(key string) Segment {
	return Segment{Key: key}
}

// IndexSegment returns a Segment addressing an Array index.
// Negative indices address from the end, like native indexing.
func IndexSegment(index int) Segment {
	return Segment{Index: index, IsIndex: true}
}

// String renders a single segment the way it appears in a path.
func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return strconv.Quote(s.Key)
}

// FormatPath renders a path for error messages, e.g. ["items", 2, "name"].
func FormatPath(segs []Segment) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range segs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// NormalizeIndex converts a possibly negative index against a length.
// ok is false when the index falls outside [0, length).
func NormalizeIndex(index, length int) (int, bool) {
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

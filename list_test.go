package sane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapListValidates(t *testing.T) {
	_, err := WrapList([]any{1, []byte{2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "[1]")

	l, err := WrapList([]any{1, "a", nil})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
}

func TestListConstructCopies(t *testing.T) {
	raw := []any{1, map[string]any{"a": 1}}
	l, err := NewListFrom(raw)
	require.NoError(t, err)

	assert.True(t, l.Equal(raw))
	require.NoError(t, l.Append(2))
	assert.Len(t, raw, 2)
	assert.Equal(t, 3, l.Len())

	_, err = NewListFrom([]any{struct{}{}})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestListGet(t *testing.T) {
	l := WrapListUnchecked([]any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
		42,
	})

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.IsType(t, &Dict{}, v)

	name, err := l.GetString([]any{1, "name"})
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	n, err := l.GetInt(-1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = l.Get(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.Get("name")
	assert.ErrorIs(t, err, ErrPathSyntax)

	v, err = l.GetOr(9, "dflt")
	require.NoError(t, err)
	assert.Equal(t, "dflt", v)
}

func TestListSet(t *testing.T) {
	l := WrapListUnchecked([]any{1, 2, 3})

	require.NoError(t, l.Set(1, "two"))
	assert.True(t, l.Equal([]any{1, "two", 3}))

	require.NoError(t, l.Set(-1, "three"))
	assert.True(t, l.Equal([]any{1, "two", "three"}))

	// Arrays are never extended by path writes.
	err := l.Set(3, "four")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = l.Set(0, "str", Int)
	assert.ErrorIs(t, err, ErrInvalidValue)

	// Element mutation is visible through the raw slice.
	raw := []any{map[string]any{}}
	wrapped := WrapListUnchecked(raw)
	require.NoError(t, wrapped.Set([]any{0, "k"}, 1))
	assert.Equal(t, 1, raw[0].(map[string]any)["k"])
}

func TestListAppendExtendInsert(t *testing.T) {
	l := NewList()

	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append("x"))
	require.NoError(t, l.Extend([]any{2, 3}))
	other := WrapListUnchecked([]any{4})
	require.NoError(t, l.Extend(other))
	assert.True(t, l.Equal([]any{1, "x", 2, 3, 4}))

	require.NoError(t, l.Insert(0, "first"))
	require.NoError(t, l.Insert(-1, "penultimate"))
	require.NoError(t, l.Insert(100, "last"))
	assert.Equal(t, "first", l.Unwrap()[0])
	assert.Equal(t, "penultimate", l.Unwrap()[l.Len()-3])
	assert.Equal(t, "last", l.Unwrap()[l.Len()-1])

	assert.ErrorIs(t, l.Append(struct{}{}), ErrInvalidValue)
	assert.ErrorIs(t, l.Append("str", Int), ErrInvalidValue)

	// Extend validates every element before appending any.
	fresh := NewList()
	err := fresh.Extend([]any{1, struct{}{}})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, fresh.Len())

	err = fresh.Extend([]any{1, "x"}, Int)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, fresh.Len())

	// Typed extend.
	require.NoError(t, fresh.Extend([]any{1, 2}, Int))
	assert.Equal(t, 2, fresh.Len())
}

func TestListDeletePopRemove(t *testing.T) {
	l := WrapListUnchecked([]any{"a", "b", "c"})

	require.NoError(t, l.Delete(1))
	assert.True(t, l.Equal([]any{"a", "c"}))

	v, err := l.Pop(-1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.True(t, l.Equal([]any{"a"}))

	_, err = l.Pop(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	v, err = l.PopOr(5, "dflt")
	require.NoError(t, err)
	assert.Equal(t, "dflt", v)

	l = WrapListUnchecked([]any{1, 2, 1})
	require.NoError(t, l.Remove(1))
	assert.True(t, l.Equal([]any{2, 1}))

	err = l.Remove(99)
	assert.ErrorIs(t, err, ErrValueNotFound)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestListNestedPathOps(t *testing.T) {
	l := WrapListUnchecked([]any{
		map[string]any{"tags": []any{"x", "y"}},
	})

	require.NoError(t, l.Set([]any{0, "meta", "flag"}, true))
	ok, err := l.GetBool([]any{0, "meta", "flag"})
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Delete([]any{0, "tags", 0}))
	tags, err := l.GetList([]any{0, "tags"})
	require.NoError(t, err)
	assert.True(t, tags.Equal([]any{"y"}))
}

func TestListContains(t *testing.T) {
	l := WrapListUnchecked([]any{map[string]any{"name": "a"}, 2})

	assert.True(t, l.Contains([]any{0, "name"}))
	assert.True(t, l.Contains(1, Int))
	assert.False(t, l.Contains(1, String))
	assert.False(t, l.Contains(5))
	assert.False(t, l.Contains([]any{1, "x"}))

	assert.True(t, l.ContainsValue(2))
	assert.True(t, l.ContainsValue(map[string]any{"name": "a"}))
	assert.False(t, l.ContainsValue("nope"))
	assert.False(t, l.ContainsValue("nope", Int))
	assert.False(t, l.ContainsValue(struct{}{}))
}

func TestListIndexCount(t *testing.T) {
	l := WrapListUnchecked([]any{1, "x", 1, map[string]any{"k": 1}})

	i, err := l.Index(1)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = l.Index(map[string]any{"k": 1})
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = l.Index(99)
	assert.ErrorIs(t, err, ErrValueNotFound)

	n, err := l.Count(1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Int values are never counted as floats.
	n, err = l.Count(1.0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestListIteration(t *testing.T) {
	l := WrapListUnchecked([]any{1, 2, "three"})

	t.Run("values wraps containers", func(t *testing.T) {
		ll := WrapListUnchecked([]any{[]any{1}})
		values, err := ll.Values()
		require.NoError(t, err)
		assert.IsType(t, &List{}, values[0])
	})

	t.Run("typed iteration fails fast", func(t *testing.T) {
		var seen []int
		err := l.ForEach(func(i int, v any) bool {
			seen = append(seen, i)
			return true
		}, Int)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), "[2]")
		assert.Equal(t, []int{0, 1}, seen)
	})

	t.Run("check_types", func(t *testing.T) {
		assert.Error(t, l.CheckTypes(Int))
		homogeneous := WrapListUnchecked([]any{1, 2})
		assert.NoError(t, homogeneous.CheckTypes(Int))
	})
}

func TestListSortReverse(t *testing.T) {
	l := WrapListUnchecked([]any{3, 1.5, 2})
	require.NoError(t, l.Sort())
	assert.True(t, l.Equal([]any{1.5, 2, 3}))

	l.Reverse()
	assert.True(t, l.Equal([]any{3, 2, 1.5}))

	t.Run("unorderable contents leave the list unchanged", func(t *testing.T) {
		l := WrapListUnchecked([]any{"b", 1, "a"})
		err := l.Sort()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.True(t, l.Equal([]any{"b", 1, "a"}))
	})

	t.Run("sort func", func(t *testing.T) {
		l := WrapListUnchecked([]any{"bb", "a", "ccc"})
		l.SortFunc(func(a, b any) bool {
			return len(a.(string)) < len(b.(string))
		})
		assert.True(t, l.Equal([]any{"a", "bb", "ccc"}))
	})
}

func TestListCompare(t *testing.T) {
	a := WrapListUnchecked([]any{1, 2})
	b := WrapListUnchecked([]any{1, 3})

	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	less, err := a.Less([]any{1, 2, 0})
	require.NoError(t, err)
	assert.True(t, less)

	c, err = a.Compare([]any{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = a.Compare([]any{1, "x"})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = a.Compare("not a list")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestListConcatCopyEqual(t *testing.T) {
	a := WrapListUnchecked([]any{1})
	sum, err := a.Concat([]any{2, 3})
	require.NoError(t, err)
	assert.True(t, sum.Equal([]any{1, 2, 3}))
	assert.Equal(t, 1, a.Len())

	cp := a.Copy()
	require.NoError(t, cp.Append(9))
	assert.Equal(t, 1, a.Len())

	nested := WrapListUnchecked([]any{map[string]any{"k": 1}})
	deep := nested.DeepCopy()
	require.NoError(t, deep.Set([]any{0, "k"}, 2))
	v, err := nested.GetInt([]any{0, "k"})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.True(t, a.Equal([]any{1}))
	assert.False(t, a.Equal([]any{2}))
	assert.False(t, a.Equal("x"))
}

func TestListClear(t *testing.T) {
	l := WrapListUnchecked([]any{1, 2})
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

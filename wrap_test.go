package sane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDispatch(t *testing.T) {
	d, err := Wrap(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.IsType(t, &Dict{}, d)

	l, err := Wrap([]any{1})
	require.NoError(t, err)
	assert.IsType(t, &List{}, l)

	// Already-wrapped containers pass through as-is.
	again, err := Wrap(d)
	require.NoError(t, err)
	assert.Same(t, d, again)

	_, err = Wrap("scalar")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Wrap(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestWrapValidatesRecursively(t *testing.T) {
	_, err := Wrap(map[string]any{"a": []any{[]byte("blob")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), `["a", 0]`)

	// WrapUnchecked skips validation entirely.
	v, err := WrapUnchecked(map[string]any{"a": []any{[]byte("blob")}})
	require.NoError(t, err)
	assert.IsType(t, &Dict{}, v)

	_, err = WrapUnchecked(42)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestWrapSharesData(t *testing.T) {
	raw := map[string]any{"a": 1}
	v, err := Wrap(raw)
	require.NoError(t, err)

	d := v.(*Dict)
	require.NoError(t, d.Set("b", 2))
	assert.Equal(t, 2, raw["b"])
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "object", KindOf(map[string]any{}).String())
	assert.Equal(t, "array", KindOf([]any{}).String())
	assert.Equal(t, "null", KindOf(nil).String())
	assert.Equal(t, "invalid", KindOf(struct{}{}).String())
}

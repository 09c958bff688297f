package sane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"scalar tag", Int, "int"},
		{"container tag", Object, "object"},
		{"number union", Number, "int or float"},
		{"custom union", AnyOf(Null, String), "null or string"},
		{"array of", ArrayOf(Object), "[object]"},
		{"object of", ObjectOf(Bool), "{str: bool}"},
		{"zero type", Type{}, "<invalid type>"},
		{"nested array of", ArrayOf(ArrayOf(Int)), "<invalid type>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestResolveTypeRejectsMalformedDescriptors(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
	}{
		{"zero type", Type{}},
		{"array of array", ArrayOf(ArrayOf(Int))},
		{"array of object-of", ArrayOf(ObjectOf(Int))},
		{"object of array-of", ObjectOf(ArrayOf(String))},
		{"array of zero", ArrayOf(Type{})},
		{"empty union", AnyOf()},
		{"union of array-of", AnyOf(Int, ArrayOf(Int))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resolveType("test", tt.typ)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeSpec)
		})
	}
}

func TestOptType(t *testing.T) {
	got, err := optType("test", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = optType("test", []Type{Int})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, Int, *got)

	_, err = optType("test", []Type{Int, String})
	assert.ErrorIs(t, err, ErrTypeSpec)
}

func TestCheckType(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		typ     Type
		wantErr bool
	}{
		{"string ok", "x", String, false},
		{"int ok", 42, Int, false},
		{"int64 ok", int64(42), Int, false},
		{"bool is not int", true, Int, true},
		{"int is not float", 1, Float, true},
		{"float is not int", 1.0, Int, true},
		{"number accepts int", 1, Number, false},
		{"number accepts float", 1.0, Number, false},
		{"number rejects string", "1", Number, true},
		{"null ok", nil, Null, false},
		{"union", nil, AnyOf(Null, String), false},
		{"object tag", map[string]any{"a": 1}, Object, false},
		{"array tag", []any{1}, Array, false},
		{"array of int ok", []any{1, 2, 3}, ArrayOf(Int), false},
		{"array of int mixed", []any{1, "2"}, ArrayOf(Int), true},
		{"array of object ok", []any{map[string]any{}}, ArrayOf(Object), false},
		{"object of string ok", map[string]any{"a": "x"}, ObjectOf(String), false},
		{"object of string bad value", map[string]any{"a": 1}, ObjectOf(String), true},
		{"array-of rejects object", map[string]any{}, ArrayOf(Int), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkType("test", tt.value, tt.typ, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidValue)
				assert.ErrorIs(t, err, ErrData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckTypeNamesOffendingElementPath(t *testing.T) {
	err := checkType("test", []any{1, "two", 3}, ArrayOf(Int), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1]")
	assert.Contains(t, err.Error(), `"two"`)

	err = checkType("test", map[string]any{"a": 1, "b": "x"}, ObjectOf(Int), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `["b"]`)
}

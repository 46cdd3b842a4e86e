package dtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name string
		k    Kind
		want string
	}{
		{"empty", Empty, "empty"},
		{"object", Object, "object"},
		{"list", List, "list"},
		{"uint32", Uint32, "uint32"},
		{"float64", Float64, "float64"},
		{"bytestr", ByteStr, "bytestr"},
		{"unknown", Kind(200), "unknown_200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.k.String())
		})
	}
}

func TestLookupKind(t *testing.T) {
	names := []string{
		"bool", "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "bytestr",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			k, ok := LookupKind(name)
			require.True(t, ok)
			require.Equal(t, name, k.String())
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, ok := LookupKind("int128")
		require.False(t, ok)
	})
}

func TestKind_IsStructural(t *testing.T) {
	require.True(t, Empty.IsStructural())
	require.True(t, Object.IsStructural())
	require.True(t, List.IsStructural())
	require.False(t, Uint32.IsStructural())
	require.False(t, ByteStr.IsStructural())
}

func TestKind_IsNumeric(t *testing.T) {
	numeric := []Kind{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64}
	for _, k := range numeric {
		require.True(t, k.IsNumeric(), k.String())
	}

	nonNumeric := []Kind{Empty, Object, List, Bool, ByteStr}
	for _, k := range nonNumeric {
		require.False(t, k.IsNumeric(), k.String())
	}
}

func TestNativeSize(t *testing.T) {
	tests := []struct {
		k    Kind
		want int
	}{
		{Bool, 1}, {Int8, 1}, {Uint8, 1},
		{Int16, 2}, {Uint16, 2},
		{Int32, 4}, {Uint32, 4}, {Float32, 4},
		{Int64, 8}, {Uint64, 8}, {Float64, 8},
		{ByteStr, 0}, {Object, 0}, {List, 0}, {Empty, 0},
	}

	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			require.Equal(t, tt.want, NativeSize(tt.k))
		})
	}
}

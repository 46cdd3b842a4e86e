package dtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndian_String(t *testing.T) {
	require.Equal(t, "default", DefaultEndian.String())
	require.Equal(t, "little", LittleEndian.String())
	require.Equal(t, "big", BigEndian.String())
}

func TestEndian_Resolve(t *testing.T) {
	require.Equal(t, hostEndian, DefaultEndian.Resolve())
	require.Equal(t, LittleEndian, LittleEndian.Resolve())
	require.Equal(t, BigEndian, BigEndian.Resolve())
}

func TestEndian_NeedsSwap(t *testing.T) {
	require.False(t, DefaultEndian.NeedsSwap())
	require.False(t, hostEndian.NeedsSwap())

	opposite := LittleEndian
	if hostEndian == LittleEndian {
		opposite = BigEndian
	}
	require.True(t, opposite.NeedsSwap())
}

func TestParseEndian(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Endian
		wantOK  bool
	}{
		{"empty means default", "", DefaultEndian, true},
		{"explicit default", "default", DefaultEndian, true},
		{"little", "little", LittleEndian, true},
		{"big", "big", BigEndian, true},
		{"unknown", "middle", DefaultEndian, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEndian(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

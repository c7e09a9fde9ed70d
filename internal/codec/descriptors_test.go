package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelEnumeration(t *testing.T) {
	tests := []struct {
		name  string
		count int
		first int
		last  int
	}{
		{"gzip", 9, 1, 9},
		{"bzip2", 9, 1, 9},
		{"xz", 10, 0, 9},
		{"zstd", 22, 1, 22},
		{"lz4", 12, 1, 12},
		{"brotli", 11, 1, 11},
		{"gzip-go", 9, 1, 9},
		{"zstd-go", 4, 1, 4},
		{"lz4-go", 10, 0, 9},
		{"brotli-go", 12, 0, 11},
		{"bzip2-go", 9, 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			require.True(t, ok)

			specs := d.Levels()
			require.Len(t, specs, tt.count)
			require.Equal(t, tt.first, *specs[0].Level)
			require.Equal(t, tt.last, *specs[len(specs)-1].Level)

			// Ascending and distinct across the whole domain.
			for i := 1; i < len(specs); i++ {
				require.Greater(t, *specs[i].Level, *specs[i-1].Level)
			}
		})
	}
}

func TestLevelEnumerationNoDomain(t *testing.T) {
	for _, name := range []string{"snappy", "xz-go", "snappy-go"} {
		d, ok := Lookup(name)
		require.True(t, ok, name)

		specs := d.Levels()
		require.Len(t, specs, 1, name)
		require.Nil(t, specs[0].Level, name)
		require.Empty(t, specs[0].Flags, name)
	}
}

func TestZstdUltraSubRange(t *testing.T) {
	d, ok := Lookup("zstd")
	require.True(t, ok)

	for _, spec := range d.Levels() {
		if *spec.Level >= 20 {
			require.Equal(t, []string{"--ultra"}, spec.Flags, "level %d", *spec.Level)
		} else {
			require.Empty(t, spec.Flags, "level %d", *spec.Level)
		}
	}
}

func TestLevelArgRendering(t *testing.T) {
	require.Equal(t, []string{"-5"}, DashLevel(5))
	require.Equal(t, []string{"-19"}, DashLevel(19))
	require.Equal(t, []string{"-q", "11"}, QualityLevel(11))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("ppmd")
	require.False(t, ok)
}

func TestNamesCoverKnown(t *testing.T) {
	names := Names()
	require.Len(t, names, len(Known()))
	for _, name := range names {
		_, ok := Lookup(name)
		require.True(t, ok, name)
	}
}

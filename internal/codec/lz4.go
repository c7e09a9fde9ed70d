package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Levels maps the benchmark's 0-9 domain onto the library's named
// constants: 0 is the fast path, 1-9 the HC levels. An explicit table avoids
// depending on the bit layout of lz4.CompressionLevel.
var lz4Levels = []lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

// The frame format is used rather than raw blocks so that incompressible
// input (and the 1-byte corpus edge case) still round-trips.

func lz4Compress(data []byte, level int) ([]byte, error) {
	if level < 0 || level >= len(lz4Levels) {
		return nil, fmt.Errorf("lz4 level %d out of range", level)
	}
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

package runner

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/packbench/packbench/internal/codec"
	"github.com/packbench/packbench/internal/result"
)

const mebibyte = 1 << 20

// ErrIntegrity reports a round trip whose output does not reproduce the
// corpus. It is a silent-corruption detector: decompression itself may have
// reported success.
var ErrIntegrity = errors.New("integrity check failed")

// TrialConfig identifies one matrix cell: a codec at one level, with the
// sub-range flags and binary variant that apply. Two configs with identical
// fields are interchangeable; a config is never mutated after construction.
type TrialConfig struct {
	Codec   *codec.Descriptor
	Level   *int
	Flags   []string
	Binary  string // pipe binary actually used; empty for in-process codecs
	Version string
}

// Label renders the cell for progress output, e.g. "zstd (Level 20)".
func (c *TrialConfig) Label() string {
	if c.Level == nil {
		return c.Codec.Name
	}
	return fmt.Sprintf("%s (Level %d)", c.Codec.Name, *c.Level)
}

// Run executes one full trial: compress, decompress, verify, measure. The
// timed windows cover only the strategy calls; corpus loading, metadata
// collection and report serialization all happen outside them. Any error
// aborts this trial only, and a compression failure short-circuits before
// decompression is attempted.
func Run(strategy codec.Strategy, cfg *TrialConfig, corpus []byte) (*result.TrialResult, error) {
	start := time.Now()
	compressed, err := strategy.Compress(corpus, cfg.Level, cfg.Flags)
	if err != nil {
		return nil, err
	}
	compTime := time.Since(start)

	start = time.Now()
	decompressed, err := strategy.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	decompTime := time.Since(start)

	if len(decompressed) != len(corpus) {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrIntegrity, len(decompressed), len(corpus))
	}
	if !bytes.Equal(decompressed, corpus) {
		return nil, fmt.Errorf("%w: output differs from corpus", ErrIntegrity)
	}

	return &result.TrialResult{
		Method:                      cfg.Codec.Name,
		Level:                       cfg.Level,
		Flags:                       cfg.Flags,
		Binary:                      cfg.Binary,
		Version:                     cfg.Version,
		CompressionTimeSeconds:      round(compTime.Seconds(), 4),
		DecompressionTimeSeconds:    round(decompTime.Seconds(), 4),
		CompressionThroughputMiBs:   round(Throughput(len(corpus), compTime), 2),
		DecompressionThroughputMiBs: round(Throughput(len(corpus), decompTime), 2),
		CompressedSizeBytes:         len(compressed),
	}, nil
}

// Throughput returns MiB/s over the measured window, or 0 when the window
// was too short to measure. The zero guard trades an artificially low
// reading for division safety on sub-resolution trials.
func Throughput(sizeBytes int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return (float64(sizeBytes) / mebibyte) / elapsed.Seconds()
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

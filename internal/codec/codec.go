// Package codec describes the compression codecs the harness can exercise
// and the two execution strategies that run them: piping through an external
// tool, or calling a Go compression library in process.
package codec

import (
	"errors"
	"fmt"
)

// Strategy executes one codec. Both implementations present the same
// contract so the trial runner and matrix driver stay strategy-agnostic.
type Strategy interface {
	// Compress compresses data at the given level. level is nil for codecs
	// without a level knob. flags carry sub-range invocation flags such as
	// zstd's --ultra; in-process codecs ignore them.
	Compress(data []byte, level *int, flags []string) ([]byte, error)

	// Decompress reverses a Compress call made through the same strategy.
	Decompress(data []byte) ([]byte, error)
}

// ErrUnavailable reports a codec that cannot run in this environment,
// typically a pipe binary missing from PATH. The matrix driver skips the
// codec and keeps going.
var ErrUnavailable = errors.New("codec unavailable")

// Phase names the half of the round trip that failed.
type Phase string

const (
	PhaseCompress   Phase = "compression"
	PhaseDecompress Phase = "decompression"
)

// ExecError is the uniform failure shape for both strategies: a non-zero
// exit from a piped tool, or a fault inside a library call, tagged with the
// phase it occurred in. A single ExecError aborts one trial only.
type ExecError struct {
	Phase Phase
	Err   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

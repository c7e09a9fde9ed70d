package codec

import "fmt"

// CompressFunc compresses data in process. Codecs without a level knob
// ignore the level argument.
type CompressFunc func(data []byte, level int) ([]byte, error)

// DecompressFunc reverses a CompressFunc.
type DecompressFunc func(data []byte) ([]byte, error)

// InProcess executes a registered compress/decompress pair directly. Faults,
// including panics out of the underlying library, are converted into the
// same phase-tagged ExecError shape the pipe strategy produces, so the trial
// runner has one failure contract regardless of strategy.
type InProcess struct {
	compress   CompressFunc
	decompress DecompressFunc
}

func NewInProcess(compress CompressFunc, decompress DecompressFunc) *InProcess {
	return &InProcess{compress: compress, decompress: decompress}
}

func (s *InProcess) Compress(data []byte, level *int, _ []string) (out []byte, err error) {
	defer recoverPhase(PhaseCompress, &err)
	lvl := 0
	if level != nil {
		lvl = *level
	}
	out, err = s.compress(data, lvl)
	if err != nil {
		return nil, &ExecError{Phase: PhaseCompress, Err: err}
	}
	return out, nil
}

func (s *InProcess) Decompress(data []byte) (out []byte, err error) {
	defer recoverPhase(PhaseDecompress, &err)
	out, err = s.decompress(data)
	if err != nil {
		return nil, &ExecError{Phase: PhaseDecompress, Err: err}
	}
	return out, nil
}

func recoverPhase(phase Phase, err *error) {
	if r := recover(); r != nil {
		*err = &ExecError{Phase: phase, Err: fmt.Errorf("panic: %v", r)}
	}
}

package codec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// PipeStrategy runs an external compression tool, feeding input on stdin and
// capturing stdout. Compression invokes `tool -c <level args> <flags>`,
// decompression `tool -d -c`, the de facto contract of the classic Unix
// compressors (gzip, bzip2, xz, zstd, lz4, brotli, snzip).
type PipeStrategy struct {
	path      string
	levelArgs func(level int) []string
	timeout   time.Duration
}

// NewPipeStrategy resolves binary on PATH. An unresolvable binary returns
// ErrUnavailable so callers can skip the codec instead of failing the run.
// A timeout of 0 lets external invocations run unbounded.
func NewPipeStrategy(binary string, levelArgs func(int) []string, timeout time.Duration) (*PipeStrategy, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: binary %q not found in PATH", ErrUnavailable, binary)
	}
	if levelArgs == nil {
		levelArgs = DashLevel
	}
	return &PipeStrategy{path: path, levelArgs: levelArgs, timeout: timeout}, nil
}

// DashLevel renders a level the way most tools take it: -1 through -19.
func DashLevel(level int) []string {
	return []string{"-" + strconv.Itoa(level)}
}

// QualityLevel renders a level as a separate -q argument. Brotli rejects
// -10 and -11 in the dash form, so its whole sweep uses -q.
func QualityLevel(level int) []string {
	return []string{"-q", strconv.Itoa(level)}
}

func (s *PipeStrategy) Compress(data []byte, level *int, flags []string) ([]byte, error) {
	args := []string{"-c"}
	if level != nil {
		args = append(args, s.levelArgs(*level)...)
	}
	args = append(args, flags...)
	out, err := s.pipe(args, data)
	if err != nil {
		return nil, &ExecError{Phase: PhaseCompress, Err: err}
	}
	return out, nil
}

func (s *PipeStrategy) Decompress(data []byte) ([]byte, error) {
	out, err := s.pipe([]string{"-d", "-c"}, data)
	if err != nil {
		return nil, &ExecError{Phase: PhaseDecompress, Err: err}
	}
	return out, nil
}

func (s *PipeStrategy) pipe(args []string, input []byte) ([]byte, error) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, s.path, args...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		tool := filepath.Base(s.path)
		if msg := firstLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", tool, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", tool, err)
	}
	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

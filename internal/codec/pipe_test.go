package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTool installs a fake codec executable on PATH for the duration of the
// test and returns the file its invocations append their arguments to.
func writeTool(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.log")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$*\" >> %q\n%s\n", argsFile, body)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

func TestPipeUnavailable(t *testing.T) {
	_, err := NewPipeStrategy("packbench-no-such-tool", nil, 0)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPipeRoundTrip(t *testing.T) {
	argsFile := writeTool(t, "fakezip", "cat")

	strategy, err := NewPipeStrategy("fakezip", nil, 0)
	require.NoError(t, err)

	input := []byte("hello pipe strategy\n")
	level := 5
	compressed, err := strategy.Compress(input, &level, []string{"--ultra"})
	require.NoError(t, err)
	require.Equal(t, input, compressed) // the fake tool is an identity filter

	decompressed, err := strategy.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, input, decompressed)

	// Both invocations carried the documented argument shapes.
	logged, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(logged)), "\n")
	require.Equal(t, []string{"-c -5 --ultra", "-d -c"}, lines)
}

func TestPipeQualityLevelArgs(t *testing.T) {
	argsFile := writeTool(t, "fakebrotli", "cat")

	strategy, err := NewPipeStrategy("fakebrotli", QualityLevel, 0)
	require.NoError(t, err)

	level := 11
	_, err = strategy.Compress([]byte("data"), &level, nil)
	require.NoError(t, err)

	logged, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, "-c -q 11", strings.TrimSpace(string(logged)))
}

func TestPipeNoLevel(t *testing.T) {
	argsFile := writeTool(t, "fakesnzip", "cat")

	strategy, err := NewPipeStrategy("fakesnzip", nil, 0)
	require.NoError(t, err)

	_, err = strategy.Compress([]byte("data"), nil, nil)
	require.NoError(t, err)

	logged, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, "-c", strings.TrimSpace(string(logged)))
}

func TestPipeFailurePhases(t *testing.T) {
	writeTool(t, "brokenzip", "echo 'cannot allocate memory' >&2\nexit 3")

	strategy, err := NewPipeStrategy("brokenzip", nil, 0)
	require.NoError(t, err)

	level := 1
	_, err = strategy.Compress([]byte("data"), &level, nil)
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, PhaseCompress, execErr.Phase)
	require.Contains(t, err.Error(), "cannot allocate memory")

	_, err = strategy.Decompress([]byte("data"))
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, PhaseDecompress, execErr.Phase)
}

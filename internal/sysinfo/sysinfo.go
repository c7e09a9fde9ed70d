// Package sysinfo probes the environment a benchmark run executes in. Every
// probe degrades to a placeholder value instead of returning an error:
// missing metadata must never abort a run.
package sysinfo

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/packbench/packbench/internal/result"
)

const (
	unknownVersion     = "Unknown Version"
	versionCheckFailed = "Version Check Failed"
)

// Collect captures run metadata. Called once per run, after the corpus is
// loaded so its size is known.
func Collect(corpusSize int) result.RunMetadata {
	return result.RunMetadata{
		Timestamp:             time.Now().Format("2006-01-02 15:04:05"),
		Platform:              Platform(),
		CPUModel:              CPUModel(),
		OriginalFileSizeBytes: corpusSize,
	}
}

// Platform describes the operating system, architecture and toolchain.
func Platform() string {
	return fmt.Sprintf("%s/%s (%s)", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// CPUModel returns the processor brand string, falling back to /proc/cpuinfo
// and finally to the bare architecture name.
func CPUModel() string {
	if name := strings.TrimSpace(cpuid.CPU.BrandName); name != "" {
		return name
	}
	if model := procCPUModel("/proc/cpuinfo"); model != "" {
		return model
	}
	return runtime.GOARCH
}

func procCPUModel(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// ToolVersion asks an external tool for its version string and returns the
// first line of whatever it printed on either stream. Some tools exit
// non-zero or answer on stderr for version queries, so the exit status is
// ignored; only an empty answer or an unresolvable binary yields a
// placeholder.
func ToolVersion(binary, flag string) string {
	if flag == "" {
		flag = "--version"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return versionCheckFailed
	}
	out, _ := exec.Command(path, flag).CombinedOutput()
	line, _, _ := strings.Cut(string(out), "\n")
	if line = strings.TrimSpace(line); line == "" {
		return unknownVersion
	}
	return line
}

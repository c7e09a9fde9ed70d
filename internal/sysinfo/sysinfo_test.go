package sysinfo_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/packbench/packbench/internal/sysinfo"
)

func TestPlatformIdempotent(t *testing.T) {
	first := sysinfo.Platform()
	if first == "" {
		t.Fatal("empty platform string")
	}
	if second := sysinfo.Platform(); second != first {
		t.Errorf("platform changed between calls: %q vs %q", first, second)
	}
}

func TestCPUModelIdempotent(t *testing.T) {
	first := sysinfo.CPUModel()
	if first == "" {
		t.Fatal("empty CPU model; probe must degrade to a placeholder, never to nothing")
	}
	if second := sysinfo.CPUModel(); second != first {
		t.Errorf("CPU model changed between calls: %q vs %q", first, second)
	}
}

func TestCollect(t *testing.T) {
	meta := sysinfo.Collect(4096)
	if meta.OriginalFileSizeBytes != 4096 {
		t.Errorf("corpus size = %d, want 4096", meta.OriginalFileSizeBytes)
	}
	if meta.Timestamp == "" || meta.Platform == "" || meta.CPUModel == "" {
		t.Errorf("incomplete metadata: %+v", meta)
	}
}

func TestToolVersionMissingBinary(t *testing.T) {
	got := sysinfo.ToolVersion("packbench-no-such-tool", "--version")
	if got != "Version Check Failed" {
		t.Errorf("got %q, want placeholder", got)
	}
}

func TestToolVersionFirstLine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\necho 'faketool 9.9 (2026)'\necho 'second line ignored'\n"
	if err := os.WriteFile(filepath.Join(dir, "faketool"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if got := sysinfo.ToolVersion("faketool", "--version"); got != "faketool 9.9 (2026)" {
		t.Errorf("got %q", got)
	}
}

func TestToolVersionSilentTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mutetool"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if got := sysinfo.ToolVersion("mutetool", "--version"); got != "Unknown Version" {
		t.Errorf("got %q, want Unknown Version", got)
	}
}

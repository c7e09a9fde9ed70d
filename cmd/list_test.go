package cmd

import (
	"testing"

	"github.com/packbench/packbench/internal/codec"
)

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		desc *codec.Descriptor
		want string
	}{
		{&codec.Descriptor{}, "none"},
		{&codec.Descriptor{Ranges: []codec.LevelRange{{Min: 1, Max: 9}}}, "1-9"},
		{&codec.Descriptor{Ranges: []codec.LevelRange{
			{Min: 1, Max: 19},
			{Min: 20, Max: 22, Flags: []string{"--ultra"}},
		}}, "1-19, 20-22 [--ultra]"},
	}
	for _, tt := range tests {
		if got := levelLabel(tt.desc); got != tt.want {
			t.Errorf("levelLabel = %q, want %q", got, tt.want)
		}
	}
}

func TestStrategyLabel(t *testing.T) {
	pipe := &codec.Descriptor{Name: "gzip", Binary: "gzip"}
	if got := strategyLabel(pipe); got != "pipe (gzip)" {
		t.Errorf("strategyLabel = %q", got)
	}
	inProc := &codec.Descriptor{Name: "gzip-go"}
	if got := strategyLabel(inProc); got != "in-process" {
		t.Errorf("strategyLabel = %q", got)
	}
}

func TestStatusLabelMissing(t *testing.T) {
	d := &codec.Descriptor{Name: "ghost", Binary: "packbench-missing-tool"}
	if got := statusLabel(d); got != "missing" {
		t.Errorf("statusLabel = %q, want missing", got)
	}
	if got := statusLabel(&codec.Descriptor{Name: "gzip-go"}); got != "built-in" {
		t.Errorf("statusLabel = %q, want built-in", got)
	}
}

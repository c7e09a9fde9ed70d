package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/packbench/packbench/internal/codec"
	"github.com/packbench/packbench/internal/report"
	"github.com/packbench/packbench/internal/result"
	"github.com/packbench/packbench/internal/runner"
	"github.com/packbench/packbench/internal/sysinfo"
)

var (
	flagCodec    string
	flagCorpus   string
	flagOutput   string
	flagMaxLevel int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a benchmark run",
		RunE:  runBenchmark,
	}
	cmd.Flags().StringVar(&flagCodec, "codec", "", "filter to a single codec")
	cmd.Flags().StringVar(&flagCorpus, "corpus", "", "corpus file (overrides config)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "report file (overrides config)")
	cmd.Flags().IntVar(&flagMaxLevel, "max-level", 0, "cap level sweeps for quick runs")
	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCorpus != "" {
		cfg.Corpus = flagCorpus
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	codecs := cfg.Codecs
	if flagCodec != "" {
		codecs = []string{flagCodec}
	}
	for _, name := range codecs {
		if _, ok := codec.Lookup(name); !ok {
			return fmt.Errorf("unknown codec %q (known: %s)", name, strings.Join(codec.Names(), ", "))
		}
	}

	// The whole corpus is held in memory so file I/O never lands inside a
	// timed window. A missing corpus is the one input error that kills the
	// run outright.
	corpus, err := os.ReadFile(cfg.Corpus)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	results := runner.RunMatrix(&runner.MatrixOpts{
		Codecs:   codecs,
		Binaries: cfg.Binaries,
		Variants: cfg.Variants,
		MaxLevel: flagMaxLevel,
		Timeout:  time.Duration(cfg.TrialTimeoutSeconds) * time.Second,
	}, corpus)

	rep := &result.Report{
		Metadata: sysinfo.Collect(len(corpus)),
		Results:  results,
	}
	if err := result.WriteReport(cfg.Output, rep); err != nil {
		return err
	}
	fmt.Printf("\nBenchmark complete. Detailed logs saved to %s\n", cfg.Output)

	fmt.Println("\n--- Summary ---")
	return report.Generate(rep, "table", os.Stdout)
}

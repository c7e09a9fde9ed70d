package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/packbench/packbench/internal/result"
)

// MethodSummary aggregates every trial of one (codec, binary) pair.
type MethodSummary struct {
	Method         string  `json:"method"`
	Binary         string  `json:"binary,omitempty"`
	Trials         int     `json:"trials"`
	BestRatio      float64 `json:"best_ratio"`
	BestRatioLevel *int    `json:"best_ratio_level"`
	MaxCompMiBs    float64 `json:"max_compression_throughput_mib_s"`
	MaxDecompMiBs  float64 `json:"max_decompression_throughput_mib_s"`
}

// Generate renders a per-method summary of a stored report. Summaries keep
// matrix enumeration order so successive runs diff cleanly.
func Generate(rep *result.Report, format string, w io.Writer) error {
	summaries := aggregate(rep)
	switch format {
	case "markdown":
		return writeMarkdown(summaries, w)
	case "json":
		return writeJSON(summaries, w)
	default:
		return writeTable(summaries, w)
	}
}

func aggregate(rep *result.Report) []*MethodSummary {
	original := rep.Metadata.OriginalFileSizeBytes
	byKey := map[string]*MethodSummary{}
	var order []string

	for _, r := range rep.Results {
		key := r.Method + "\x00" + r.Binary
		s, ok := byKey[key]
		if !ok {
			s = &MethodSummary{Method: r.Method, Binary: r.Binary}
			byKey[key] = s
			order = append(order, key)
		}
		s.Trials++
		if ratio := r.Ratio(original); ratio > s.BestRatio {
			s.BestRatio = ratio
			s.BestRatioLevel = r.Level
		}
		if r.CompressionThroughputMiBs > s.MaxCompMiBs {
			s.MaxCompMiBs = r.CompressionThroughputMiBs
		}
		if r.DecompressionThroughputMiBs > s.MaxDecompMiBs {
			s.MaxDecompMiBs = r.DecompressionThroughputMiBs
		}
	}

	summaries := make([]*MethodSummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, byKey[key])
	}
	return summaries
}

func writeTable(summaries []*MethodSummary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tBINARY\tTRIALS\tBEST RATIO\tAT LEVEL\tMAX COMP\tMAX DECOMP")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2fx\t%s\t%.2f MiB/s\t%.2f MiB/s\n",
			s.Method, s.Binary, s.Trials, s.BestRatio, levelString(s.BestRatioLevel),
			s.MaxCompMiBs, s.MaxDecompMiBs)
	}
	return tw.Flush()
}

func writeMarkdown(summaries []*MethodSummary, w io.Writer) error {
	fmt.Fprintln(w, "| Method | Binary | Trials | Best Ratio | At Level | Max Comp MiB/s | Max Decomp MiB/s |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %s | %s | %d | %.2fx | %s | %.2f | %.2f |\n",
			s.Method, s.Binary, s.Trials, s.BestRatio, levelString(s.BestRatioLevel),
			s.MaxCompMiBs, s.MaxDecompMiBs)
	}
	return nil
}

func writeJSON(summaries []*MethodSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}

// WriteTrials lists every trial in the report, one row per matrix cell.
func WriteTrials(rep *result.Report, w io.Writer) error {
	original := rep.Metadata.OriginalFileSizeBytes
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tLEVEL\tFLAGS\tCOMP s\tDECOMP s\tCOMP MiB/s\tDECOMP MiB/s\tSIZE\tRATIO")
	fmt.Fprintln(tw, strings.Repeat("-", 100))
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.4f\t%.2f\t%.2f\t%d\t%.2fx\n",
			r.Method, levelString(r.Level), strings.Join(r.Flags, " "),
			r.CompressionTimeSeconds, r.DecompressionTimeSeconds,
			r.CompressionThroughputMiBs, r.DecompressionThroughputMiBs,
			r.CompressedSizeBytes, r.Ratio(original))
	}
	return tw.Flush()
}

func levelString(level *int) string {
	if level == nil {
		return "-"
	}
	return strconv.Itoa(*level)
}

package runner

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/packbench/packbench/internal/codec"
	"github.com/packbench/packbench/internal/result"
	"github.com/packbench/packbench/internal/sysinfo"
)

// MatrixOpts configures one run over the codec × level matrix.
type MatrixOpts struct {
	Descriptors []*codec.Descriptor // defaults to codec.Known()
	Codecs      []string            // name filter; empty selects every known codec
	Binaries    map[string]string   // per-codec default binary overrides
	Variants    map[string][]string // extra binary variants; the full sweep repeats per variant
	MaxLevel    int                 // cap level sweeps for quick runs; 0 = full domain
	Timeout     time.Duration       // per external invocation; 0 = unbounded
	Out         io.Writer           // progress output; defaults to os.Stdout
}

// sweep is one available (codec, binary) pair with its resolved strategy and
// probed version string. One sweep produces one full level walk.
type sweep struct {
	desc     *codec.Descriptor
	binary   string
	strategy codec.Strategy
	version  string
}

// RunMatrix enumerates and executes every selected matrix cell in order and
// returns the successful results. Unavailable codecs are skipped and failed
// trials logged; neither aborts the run. Trials execute strictly
// sequentially so they never contend with each other for CPU or memory
// bandwidth — only the version probes, which touch nothing timed, go through
// the worker pool.
func RunMatrix(opts *MatrixOpts, corpus []byte) []*result.TrialResult {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	descriptors := opts.Descriptors
	if descriptors == nil {
		descriptors = codec.Known()
	}

	sweeps := probeSweeps(selectDescriptors(descriptors, opts.Codecs), opts)

	var results []*result.TrialResult
	lastName := ""
	for _, sw := range sweeps {
		if sw.desc.Name != lastName {
			fmt.Fprintf(out, "\n--- %s ---\n", sw.desc.Name)
			lastName = sw.desc.Name
		}
		for _, spec := range sw.desc.Levels() {
			if opts.MaxLevel > 0 && spec.Level != nil && *spec.Level > opts.MaxLevel {
				continue
			}
			cfg := &TrialConfig{
				Codec:   sw.desc,
				Level:   spec.Level,
				Flags:   spec.Flags,
				Binary:  sw.binary,
				Version: sw.version,
			}
			fmt.Fprintf(out, "--> Testing %s...\n", cfg.Label())
			res, err := Run(sw.strategy, cfg, corpus)
			if err != nil {
				log.Printf("%s: %v", cfg.Label(), err)
				continue
			}
			fmt.Fprintf(out, "[Finished] %-18s | Comp: %8.2f MiB/s | Decomp: %8.2f MiB/s | Ratio: %5.2fx\n",
				cfg.Label(), res.CompressionThroughputMiBs, res.DecompressionThroughputMiBs,
				res.Ratio(len(corpus)))
			results = append(results, res)
		}
	}
	return results
}

// probeSweeps resolves a strategy once per (codec, binary) pair, dropping
// unavailable pairs, then fills in version strings. Availability is decided
// here, up front, rather than deep inside the trial loop.
func probeSweeps(selected []*codec.Descriptor, opts *MatrixOpts) []*sweep {
	var sweeps []*sweep
	for _, d := range selected {
		for _, bin := range binariesFor(d, opts) {
			strategy, err := d.Strategy(bin, opts.Timeout)
			if err != nil {
				log.Printf("skipping %s: %v", d.Name, err)
				continue
			}
			sweeps = append(sweeps, &sweep{desc: d, binary: bin, strategy: strategy})
		}
	}

	// Version probes are metadata, not measurement, so these may run
	// concurrently without corrupting any timing.
	var jobs []Job
	for _, sw := range sweeps {
		jobs = append(jobs, func() error {
			if sw.desc.InProcess() {
				sw.version = sw.desc.Library
				return nil
			}
			sw.version = sysinfo.ToolVersion(sw.binary, sw.desc.VersionFlag)
			return nil
		})
	}
	RunPool(4, jobs)
	return sweeps
}

// binariesFor lists the binaries to sweep for one codec: the default (or its
// configured override) followed by any extra variants. In-process codecs
// have a single, empty binary slot.
func binariesFor(d *codec.Descriptor, opts *MatrixOpts) []string {
	if d.InProcess() {
		return []string{""}
	}
	def := d.Binary
	if override := opts.Binaries[d.Name]; override != "" {
		def = override
	}
	return append([]string{def}, opts.Variants[d.Name]...)
}

func selectDescriptors(all []*codec.Descriptor, names []string) []*codec.Descriptor {
	if len(names) == 0 {
		return all
	}
	byName := make(map[string]*codec.Descriptor, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}
	var selected []*codec.Descriptor
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			log.Printf("unknown codec %q", name)
			continue
		}
		selected = append(selected, d)
	}
	return selected
}

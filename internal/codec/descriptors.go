package codec

import (
	"sort"
	"time"
)

// LevelRange is one inclusive sub-range of a codec's level domain. Flags are
// the extra invocation flags the sub-range requires (zstd's ultra levels
// need --ultra on top of the level itself).
type LevelRange struct {
	Min, Max int
	Flags    []string
}

// LevelSpec is one generated matrix cell within a codec: a concrete level
// plus the flags its sub-range carries. Level is nil for codecs with no
// level concept.
type LevelSpec struct {
	Level *int
	Flags []string
}

// Descriptor statically describes one codec: its name, level domain, and how
// to execute it. A non-empty Binary selects the pipe strategy; otherwise the
// Compress/Decompress funcs run in process. Quirks like brotli's -q level
// syntax live here as data so the runner never branches on codec names.
type Descriptor struct {
	Name        string
	Ranges      []LevelRange
	Binary      string
	VersionFlag string
	LevelArgs   func(level int) []string
	Compress    CompressFunc
	Decompress  DecompressFunc
	Library     string // module path, reported as the version of in-process codecs
}

// InProcess reports whether this codec runs as a library call rather than an
// external tool.
func (d *Descriptor) InProcess() bool { return d.Binary == "" }

// Levels expands the level domain into matrix cells, ascending. A codec with
// no level domain contributes exactly one cell; no cell is ever generated
// outside the declared ranges.
func (d *Descriptor) Levels() []LevelSpec {
	if len(d.Ranges) == 0 {
		return []LevelSpec{{}}
	}
	var specs []LevelSpec
	for _, r := range d.Ranges {
		for l := r.Min; l <= r.Max; l++ {
			level := l
			specs = append(specs, LevelSpec{Level: &level, Flags: r.Flags})
		}
	}
	return specs
}

// Strategy builds the execution strategy for one sweep of this codec.
// binary overrides the descriptor's default tool for pipe codecs and is
// ignored for in-process ones. Returns ErrUnavailable when the tool cannot
// be resolved.
func (d *Descriptor) Strategy(binary string, timeout time.Duration) (Strategy, error) {
	if d.InProcess() {
		return NewInProcess(d.Compress, d.Decompress), nil
	}
	if binary == "" {
		binary = d.Binary
	}
	return NewPipeStrategy(binary, d.LevelArgs, timeout)
}

// bzip2 and lz4 answer -V rather than --version.
const (
	versionLong  = "--version"
	versionShort = "-V"
)

var known = []*Descriptor{
	{Name: "gzip", Binary: "gzip", VersionFlag: versionLong,
		Ranges: []LevelRange{{Min: 1, Max: 9}}},
	{Name: "bzip2", Binary: "bzip2", VersionFlag: versionShort,
		Ranges: []LevelRange{{Min: 1, Max: 9}}},
	{Name: "xz", Binary: "xz", VersionFlag: versionLong,
		Ranges: []LevelRange{{Min: 0, Max: 9}}},
	{Name: "zstd", Binary: "zstd", VersionFlag: versionLong,
		Ranges: []LevelRange{
			{Min: 1, Max: 19},
			{Min: 20, Max: 22, Flags: []string{"--ultra"}},
		}},
	{Name: "lz4", Binary: "lz4", VersionFlag: versionShort,
		Ranges: []LevelRange{{Min: 1, Max: 12}}},
	{Name: "brotli", Binary: "brotli", VersionFlag: versionLong, LevelArgs: QualityLevel,
		Ranges: []LevelRange{{Min: 1, Max: 11}}},
	{Name: "snappy", Binary: "snzip", VersionFlag: versionLong},

	{Name: "gzip-go", Library: "github.com/klauspost/compress/gzip",
		Compress: gzipCompress, Decompress: gzipDecompress,
		Ranges: []LevelRange{{Min: 1, Max: 9}}},
	{Name: "zstd-go", Library: "github.com/klauspost/compress/zstd",
		Compress: zstdCompress, Decompress: zstdDecompress,
		Ranges: []LevelRange{{Min: 1, Max: 4}}},
	{Name: "lz4-go", Library: "github.com/pierrec/lz4/v4",
		Compress: lz4Compress, Decompress: lz4Decompress,
		Ranges: []LevelRange{{Min: 0, Max: 9}}},
	{Name: "brotli-go", Library: "github.com/andybalholm/brotli",
		Compress: brotliCompress, Decompress: brotliDecompress,
		Ranges: []LevelRange{{Min: 0, Max: 11}}},
	{Name: "bzip2-go", Library: "github.com/dsnet/compress/bzip2",
		Compress: bzip2Compress, Decompress: bzip2Decompress,
		Ranges: []LevelRange{{Min: 1, Max: 9}}},
	{Name: "xz-go", Library: "github.com/ulikunitz/xz",
		Compress: xzCompress, Decompress: xzDecompress},
	{Name: "snappy-go", Library: "github.com/klauspost/compress/snappy",
		Compress: snappyCompress, Decompress: snappyDecompress},
}

// Known returns every codec descriptor in enumeration order.
func Known() []*Descriptor {
	out := make([]*Descriptor, len(known))
	copy(out, known)
	return out
}

// Lookup finds a descriptor by name.
func Lookup(name string) (*Descriptor, bool) {
	for _, d := range known {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Names returns all known codec names, sorted.
func Names() []string {
	names := make([]string, 0, len(known))
	for _, d := range known {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

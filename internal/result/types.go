package result

// TrialResult is one successful measurement of a (codec, level, variant)
// cell. Field names and rounding match the persisted artifact schema so runs
// can be diffed against each other.
type TrialResult struct {
	Method  string   `json:"method"`
	Level   *int     `json:"level"`
	Flags   []string `json:"flags,omitempty"`
	Binary  string   `json:"binary,omitempty"`
	Version string   `json:"version"`

	CompressionTimeSeconds      float64 `json:"compression_time_seconds"`
	DecompressionTimeSeconds    float64 `json:"decompression_time_seconds"`
	CompressionThroughputMiBs   float64 `json:"compression_throughput_mib_s"`
	DecompressionThroughputMiBs float64 `json:"decompression_throughput_mib_s"`
	CompressedSizeBytes         int     `json:"compressed_size_bytes"`
}

// Ratio returns originalSize / compressed size. Not persisted; consumers
// recompute it from compressed_size_bytes and the corpus size in metadata.
func (r *TrialResult) Ratio(originalSize int) float64 {
	if r.CompressedSizeBytes == 0 {
		return 0
	}
	return float64(originalSize) / float64(r.CompressedSizeBytes)
}

// RunMetadata is captured once per run.
type RunMetadata struct {
	Timestamp             string `json:"timestamp"`
	Platform              string `json:"platform"`
	CPUModel              string `json:"cpu_model"`
	OriginalFileSizeBytes int    `json:"original_file_size_bytes"`
}

// Report pairs run metadata with the ordered trial results. Result order is
// matrix enumeration order.
type Report struct {
	Metadata RunMetadata    `json:"metadata"`
	Results  []*TrialResult `json:"results"`
}

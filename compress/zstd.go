package compress

// ZstdCompressor compresses payloads with Zstandard, the best-ratio codec of
// the built-ins. Suited to archival of compressed time streams where the blob
// is written once and read rarely.
//
// Two implementations exist behind build tags: the cgo libzstd binding
// (zstd_cgo.go) when cgo is available, and a pure Go implementation
// (zstd_pure.go) otherwise. Both produce standard zstd frames and can
// decompress each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package compress

import (
	"fmt"

	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/format"
)

// Compressor compresses a complete blob payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Internal buffers may be reused across
	// calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload.
	//
	// It returns an error when the data is corrupted or was compressed with
	// an incompatible algorithm. The returned slice is newly allocated and
	// owned by the caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression. All built-in codecs are
// stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}

package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/format"
)

// samplePayload mimics a run-length blob payload: repetitive float64 bit
// patterns followed by small varints.
func samplePayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 64; i++ {
		buf.Write([]byte{0, 0, 0, 0, 0, byte(i), 0x59, 0x40})
	}
	buf.Write([]byte{4, 2, 2, 1, 3})

	return buf.Bytes()
}

func TestGetCodec_KnownTypes(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err, "compression %s", compression)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_UnknownType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compression %s", compression)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "compression %s", compression)
		require.Equal(t, payload, restored, "compression %s", compression)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, restored)
	}
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := samplePayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "compression %s", compression)
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	// Repeated boundary bit patterns should actually shrink under every real
	// codec.
	payload := bytes.Repeat(samplePayload(), 8)

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "compression %s", compression)
	}
}

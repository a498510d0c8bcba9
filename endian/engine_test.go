package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}

func TestBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}

func TestEnginesAppendAndPutAgree(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		appended := engine.AppendUint32(nil, 0xCAFEF00D)

		direct := make([]byte, 4)
		engine.PutUint32(direct, 0xCAFEF00D)

		require.Equal(t, direct, appended)
	}
}

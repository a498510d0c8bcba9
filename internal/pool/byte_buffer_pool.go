package pool

import "sync"

// BlobBufferDefaultSize is the default capacity of a ByteBuffer obtained from
// the pool. Run-length blobs are small (tens of runs is typical for an
// acquisition session), so the default stays modest; oversized buffers are not
// returned to the pool to keep its footprint bounded.
const (
	BlobBufferDefaultSize  = 4 * 1024
	BlobBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a minimal growable byte buffer backed by a plain slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer has capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}
	grown := make([]byte, len(bb.B), 2*cap(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

var blobBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlobBufferDefaultSize)
	},
}

// GetBlobBuffer returns an empty ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := blobBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns the buffer to the pool. Buffers that grew past
// BlobBufferMaxThreshold are dropped instead of pooled.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BlobBufferMaxThreshold {
		return
	}
	blobBufferPool.Put(bb)
}

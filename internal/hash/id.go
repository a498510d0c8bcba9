package hash

import "github.com/cespare/xxhash/v2"

// StreamID computes the xxHash64 of the given stream name.
//
// Blobs carry the hash rather than the name itself, so a fixed-size header
// field identifies which acquisition stream (channel, board, polarimeter) the
// compressed times belong to.
func StreamID(name string) uint64 {
	return xxhash.Sum64String(name)
}

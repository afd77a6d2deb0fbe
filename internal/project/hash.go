package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash used as a cache key.
type Digest [32]byte

// HashBytes digests raw content.
func HashBytes(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

// Combine builds a composite hash: H( parts[0] || parts[1] ... ).
// Callers must pass parts in a deterministic order.
func Combine(parts ...Digest) Digest {
	h := sha256.New()
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

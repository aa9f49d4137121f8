package merkle

import (
	"github.com/libsv/go-bk/crypto"
)

// BuildMerkleRoot builds the merkle tree bottom-up from the given leaf
// hashes (little-endian) and returns the root, also little-endian.
//
// Each level is scanned left to right in steps of two. An unpaired final
// node is paired with itself, never dropped. A single leaf is its own root
// and is returned unchanged, without hashing.
//
// The caller guarantees leaves is non-empty.
func BuildMerkleRoot(leaves [][]byte) []byte {
	level := leaves

	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)

		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}

			combined := make([]byte, 0, len(left)+len(right))
			combined = append(combined, left...)
			combined = append(combined, right...)

			next = append(next, crypto.Sha256d(combined))
		}

		level = next
	}

	return level[0]
}

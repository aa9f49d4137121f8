// Package merkle computes and verifies Bitcoin block merkle roots from
// RPC-shaped transaction data, reproducing Bitcoin Core's byte order and
// pairing conventions.
//
// Hashes cross the package boundary as big-endian hex strings, the way RPC
// displays them. Internally everything is hashed little-endian, so the codec
// here is a plain byte reversal in each direction. All functions are pure and
// safe for concurrent use.
package merkle

import (
	"encoding/hex"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/ordishs/go-utils"

	"github.com/torrejonv/merklecheck/errors"
)

// DecodeBigEndianHex decodes a big-endian display hex string into the
// little-endian byte order used for hashing.
//
// Length is not constrained to 32 bytes here; callers that need the
// invariant enforce it themselves.
func DecodeBigEndianHex(hexBE string) ([]byte, error) {
	b, err := hex.DecodeString(hexBE)
	if err != nil {
		return nil, errors.NewInvalidHexError("invalid hex %q", hexBE, err)
	}

	return bt.ReverseBytes(b), nil
}

// EncodeLittleEndianHex reverses a little-endian hash buffer back into
// big-endian display order and hex encodes it, lowercase.
func EncodeLittleEndianHex(bytesLE []byte) string {
	return utils.ReverseAndHexEncodeSlice(bytesLE)
}

package merkle

import (
	"encoding/hex"
	"strings"

	"github.com/libsv/go-bk/crypto"

	"github.com/torrejonv/merklecheck/errors"
)

// emptyMerkleRootHex is the canonical "no transactions" sentinel.
const emptyMerkleRootHex = "0000000000000000000000000000000000000000000000000000000000000000"

const witnessReservedSize = 32

// EmptyMerkleRoot returns the 64-zero-character sentinel used for blocks
// with no transactions.
func EmptyMerkleRoot() string {
	return emptyMerkleRootHex
}

// BlockVerificationRequest is the input to VerifyBlockMerkleRoot.
//
// WitnessCommitment and WitnessReserved are big-endian hex; WitnessReserved
// defaults to 32 zero bytes when empty.
type BlockVerificationRequest struct {
	Transactions       []TxEntry
	ExpectedMerkleRoot string
	VerifyWitness      bool
	WitnessCommitment  string
	WitnessReserved    string
}

// ComputeMerkleRoot computes the merkle root of the given big-endian txid
// hex strings and returns it as lowercase big-endian hex.
//
// A single txid is its own root and is returned lowercased without hashing.
// Returns ERR_EMPTY_INPUT for an empty list and ERR_INVALID_HEX when a txid
// does not decode.
func ComputeMerkleRoot(txids []string) (string, error) {
	if len(txids) == 0 {
		return "", errors.NewEmptyInputError("cannot compute merkle root from empty transaction list")
	}

	if len(txids) == 1 {
		return strings.ToLower(txids[0]), nil
	}

	leaves := make([][]byte, len(txids))

	for i, txid := range txids {
		b, err := DecodeBigEndianHex(txid)
		if err != nil {
			return "", err
		}

		leaves[i] = b
	}

	return EncodeLittleEndianHex(BuildMerkleRoot(leaves)), nil
}

// VerifyMerkleRoot reports whether the given txids hash to expectedRoot.
//
// An empty expectedRoot is never valid. An empty txid list matches only the
// empty root sentinel. Decode failures yield false, they do not propagate.
func VerifyMerkleRoot(txids []string, expectedRoot string) bool {
	if expectedRoot == "" {
		return false
	}

	if len(txids) == 0 {
		return expectedRoot == emptyMerkleRootHex
	}

	computed, err := ComputeMerkleRoot(txids)
	if err != nil {
		return false
	}

	return computed == strings.ToLower(expectedRoot)
}

// ComputeWitnessMerkleRoot computes the BIP141 witness merkle root of the
// given big-endian wtxid hex strings.
//
// The first entry is the coinbase, whose wtxid is defined by consensus to be
// all zeros; it is replaced unconditionally regardless of the supplied value.
func ComputeWitnessMerkleRoot(wtxids []string) (string, error) {
	if len(wtxids) == 0 {
		return "", errors.NewEmptyInputError("cannot compute witness merkle root from empty wtxids list")
	}

	ids := make([]string, len(wtxids))
	copy(ids, wtxids)
	ids[0] = emptyMerkleRootHex

	return ComputeMerkleRoot(ids)
}

// VerifyWitnessCommitment checks the BIP141 witness commitment: the double
// SHA-256 of the witness merkle root concatenated with the reserved value
// must equal commitmentHex.
//
// With no wtxids or no commitment there is nothing to check and the result
// is vacuously true. reservedHex defaults to 32 zero bytes when empty or
// undecodable. Internal failures yield false, they do not propagate.
func VerifyWitnessCommitment(wtxids []string, commitmentHex string, reservedHex string) bool {
	if len(wtxids) == 0 || commitmentHex == "" {
		return true
	}

	witnessRoot, err := ComputeWitnessMerkleRoot(wtxids)
	if err != nil {
		return false
	}

	witnessRootLE, err := DecodeBigEndianHex(witnessRoot)
	if err != nil {
		return false
	}

	reserved := make([]byte, witnessReservedSize)

	if reservedHex != "" {
		// the reserved value is not a displayed hash, it is used as-is
		if b, decodeErr := hex.DecodeString(reservedHex); decodeErr == nil {
			reserved = b
		}
	}

	combined := make([]byte, 0, len(witnessRootLE)+len(reserved))
	combined = append(combined, witnessRootLE...)
	combined = append(combined, reserved...)

	calculated := hex.EncodeToString(crypto.Sha256d(combined))

	return calculated == strings.ToLower(commitmentHex)
}

// VerifyBlockMerkleRoot verifies a whole block: the transaction merkle root
// and, when requested and a commitment is present, the witness commitment.
//
// The witness check is skipped silently when its preconditions are not met:
// that is not a failure, there is simply nothing to verify.
func VerifyBlockMerkleRoot(req BlockVerificationRequest) bool {
	if req.ExpectedMerkleRoot == "" {
		return false
	}

	txids := ExtractTxIDs(req.Transactions)

	if len(txids) == 0 {
		return req.ExpectedMerkleRoot == emptyMerkleRootHex
	}

	if !VerifyMerkleRoot(txids, req.ExpectedMerkleRoot) {
		return false
	}

	if req.VerifyWitness && req.WitnessCommitment != "" {
		wtxids := ExtractWTxIDs(req.Transactions)
		if len(wtxids) > 0 {
			return VerifyWitnessCommitment(wtxids, req.WitnessCommitment, req.WitnessReserved)
		}
	}

	return true
}

// VerifyGenesisMerkleRoot verifies the genesis special case: at height 0 the
// block holds exactly one transaction and its txid is the merkle root.
// Any other height, transaction count or mismatch yields false.
func VerifyGenesisMerkleRoot(entries []TxEntry, expectedRoot string, blockHeight uint32) bool {
	if blockHeight != 0 {
		return false
	}

	if expectedRoot == "" {
		return false
	}

	txids := ExtractTxIDs(entries)
	if len(txids) != 1 {
		return false
	}

	return strings.ToLower(expectedRoot) == txids[0]
}

package merkle

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/libsv/go-bk/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrejonv/merklecheck/errors"
)

// txids and merkle root of mainnet block 100000
var block100000TxIDs = []string{
	"8c14f0db3df150123e6f3dbbf30f8b955a8249b62ac1d1ff16284aefa3d06d87",
	"fff2525b8931402dd09222c50775608f75787bd2b87e56995a7bdd30f79702c4",
	"6359f0868171b1d194cbee1af2f16ea598ae8fad666d9b012c8ed2b79a236ec4",
	"e9a66845e05d5abc0ad04ec80f774a7e585c6e8db975962d069a522137b80c1d",
}

const block100000MerkleRoot = "f3e94742aca4b5ef85488dc37c06c3282295ffec960994b2c0d5ac2a25a95766"

// txid of the genesis coinbase, also the genesis merkle root
const genesisCoinbaseTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func TestComputeMerkleRootBlock100000(t *testing.T) {
	root, err := ComputeMerkleRoot(block100000TxIDs)
	require.NoError(t, err)
	assert.Equal(t, block100000MerkleRoot, root)
}

func TestComputeMerkleRootSingleTxID(t *testing.T) {
	root, err := ComputeMerkleRoot([]string{strings.ToUpper(genesisCoinbaseTxID)})
	require.NoError(t, err)
	assert.Equal(t, genesisCoinbaseTxID, root, "single txid is returned lowercased, unhashed")
}

func TestComputeMerkleRootEmpty(t *testing.T) {
	_, err := ComputeMerkleRoot(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyInput))
}

func TestComputeMerkleRootInvalidHex(t *testing.T) {
	_, err := ComputeMerkleRoot([]string{block100000TxIDs[0], "not-hex"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidHex))
}

func TestComputeMerkleRootIsDeterministic(t *testing.T) {
	root1, err := ComputeMerkleRoot(block100000TxIDs)
	require.NoError(t, err)

	root2, err := ComputeMerkleRoot(block100000TxIDs)
	require.NoError(t, err)

	assert.Equal(t, root1, root2)
}

func TestComputeMerkleRootReorderChangesRoot(t *testing.T) {
	reordered := []string{
		block100000TxIDs[1],
		block100000TxIDs[0],
		block100000TxIDs[2],
		block100000TxIDs[3],
	}

	root, err := ComputeMerkleRoot(reordered)
	require.NoError(t, err)
	assert.NotEqual(t, block100000MerkleRoot, root)
}

func TestVerifyMerkleRoot(t *testing.T) {
	assert.True(t, VerifyMerkleRoot(block100000TxIDs, block100000MerkleRoot))
	assert.True(t, VerifyMerkleRoot(block100000TxIDs, strings.ToUpper(block100000MerkleRoot)), "comparison is case-insensitive")
	assert.False(t, VerifyMerkleRoot(block100000TxIDs, genesisCoinbaseTxID))
}

func TestVerifyMerkleRootEmptyExpected(t *testing.T) {
	assert.False(t, VerifyMerkleRoot(block100000TxIDs, ""))
	assert.False(t, VerifyMerkleRoot(nil, ""))
}

func TestVerifyMerkleRootEmptyTxIDs(t *testing.T) {
	assert.True(t, VerifyMerkleRoot(nil, EmptyMerkleRoot()))
	assert.False(t, VerifyMerkleRoot(nil, block100000MerkleRoot))
}

func TestVerifyMerkleRootInvalidHexYieldsFalse(t *testing.T) {
	assert.False(t, VerifyMerkleRoot([]string{"xyz", "abc"}, block100000MerkleRoot))
}

func TestComputeWitnessMerkleRootZeroesCoinbase(t *testing.T) {
	wtxids := []string{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		block100000TxIDs[1],
		block100000TxIDs[2],
	}

	root, err := ComputeWitnessMerkleRoot(wtxids)
	require.NoError(t, err)

	// the coinbase wtxid is replaced regardless of its supplied value
	expected, err := ComputeMerkleRoot([]string{EmptyMerkleRoot(), block100000TxIDs[1], block100000TxIDs[2]})
	require.NoError(t, err)
	assert.Equal(t, expected, root)
}

func TestComputeWitnessMerkleRootDoesNotMutateInput(t *testing.T) {
	wtxids := []string{block100000TxIDs[0], block100000TxIDs[1]}

	_, err := ComputeWitnessMerkleRoot(wtxids)
	require.NoError(t, err)
	assert.Equal(t, block100000TxIDs[0], wtxids[0])
}

func TestComputeWitnessMerkleRootEmpty(t *testing.T) {
	_, err := ComputeWitnessMerkleRoot(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyInput))
}

// commitmentFor builds the expected BIP141 commitment by hand so the
// verification path is checked against an independent construction.
func commitmentFor(t *testing.T, wtxids []string, reserved []byte) string {
	t.Helper()

	root, err := ComputeWitnessMerkleRoot(wtxids)
	require.NoError(t, err)

	rootLE, err := DecodeBigEndianHex(root)
	require.NoError(t, err)

	return hex.EncodeToString(crypto.Sha256d(append(append([]byte{}, rootLE...), reserved...)))
}

func TestVerifyWitnessCommitment(t *testing.T) {
	wtxids := []string{block100000TxIDs[0], block100000TxIDs[1], block100000TxIDs[2]}
	commitment := commitmentFor(t, wtxids, make([]byte, 32))

	assert.True(t, VerifyWitnessCommitment(wtxids, commitment, ""))
	assert.True(t, VerifyWitnessCommitment(wtxids, strings.ToUpper(commitment), ""), "comparison is case-insensitive")
	assert.False(t, VerifyWitnessCommitment(wtxids, block100000MerkleRoot, ""))
}

func TestVerifyWitnessCommitmentReservedDefault(t *testing.T) {
	wtxids := []string{block100000TxIDs[0], block100000TxIDs[1]}
	commitment := commitmentFor(t, wtxids, make([]byte, 32))

	zeros := strings.Repeat("00", 32)
	assert.True(t, VerifyWitnessCommitment(wtxids, commitment, zeros), "explicit zero reserved matches the default")
	assert.True(t, VerifyWitnessCommitment(wtxids, commitment, "not-hex"), "undecodable reserved falls back to zeros")
}

func TestVerifyWitnessCommitmentNonZeroReserved(t *testing.T) {
	wtxids := []string{block100000TxIDs[0], block100000TxIDs[1]}

	reserved := make([]byte, 32)
	reserved[0] = 0xab

	commitment := commitmentFor(t, wtxids, reserved)
	assert.True(t, VerifyWitnessCommitment(wtxids, commitment, hex.EncodeToString(reserved)))
	assert.False(t, VerifyWitnessCommitment(wtxids, commitment, ""))
}

func TestVerifyWitnessCommitmentVacuous(t *testing.T) {
	assert.True(t, VerifyWitnessCommitment(nil, "whatever", ""))
	assert.True(t, VerifyWitnessCommitment([]string{block100000TxIDs[0]}, "", ""))
}

func TestVerifyWitnessCommitmentInvalidWTxIDs(t *testing.T) {
	assert.False(t, VerifyWitnessCommitment([]string{"coinbase", "not-hex"}, "aa", ""))
}

func TestVerifyBlockMerkleRoot(t *testing.T) {
	entries := make([]TxEntry, 0, len(block100000TxIDs))
	for _, txid := range block100000TxIDs {
		entries = append(entries, TxID(txid))
	}

	assert.True(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: block100000MerkleRoot,
	}))

	assert.False(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: genesisCoinbaseTxID,
	}))

	assert.False(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: "",
	}))
}

func TestVerifyBlockMerkleRootEmptyTransactions(t *testing.T) {
	assert.True(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		ExpectedMerkleRoot: EmptyMerkleRoot(),
	}))

	assert.False(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		ExpectedMerkleRoot: block100000MerkleRoot,
	}))
}

func TestVerifyBlockMerkleRootWithWitness(t *testing.T) {
	coinbase := TxDescriptor{
		TxID:  block100000TxIDs[0],
		WTxID: EmptyMerkleRoot(),
	}
	tx2 := TxDescriptor{
		TxID:  block100000TxIDs[1],
		WTxID: block100000TxIDs[2],
	}

	entries := []TxEntry{coinbase, tx2}

	expectedRoot, err := ComputeMerkleRoot([]string{block100000TxIDs[0], block100000TxIDs[1]})
	require.NoError(t, err)

	commitment := commitmentFor(t, []string{EmptyMerkleRoot(), block100000TxIDs[2]}, make([]byte, 32))

	assert.True(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: expectedRoot,
		VerifyWitness:      true,
		WitnessCommitment:  commitment,
	}))

	// a wrong commitment only fails when the witness check is requested
	assert.False(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: expectedRoot,
		VerifyWitness:      true,
		WitnessCommitment:  block100000MerkleRoot,
	}))

	assert.True(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: expectedRoot,
		VerifyWitness:      false,
		WitnessCommitment:  block100000MerkleRoot,
	}))

	// witness requested but no commitment present: skipped silently
	assert.True(t, VerifyBlockMerkleRoot(BlockVerificationRequest{
		Transactions:       entries,
		ExpectedMerkleRoot: expectedRoot,
		VerifyWitness:      true,
	}))
}

func TestVerifyGenesisMerkleRoot(t *testing.T) {
	entries := []TxEntry{TxID(genesisCoinbaseTxID)}

	assert.True(t, VerifyGenesisMerkleRoot(entries, genesisCoinbaseTxID, 0))
	assert.True(t, VerifyGenesisMerkleRoot(entries, strings.ToUpper(genesisCoinbaseTxID), 0))
	assert.False(t, VerifyGenesisMerkleRoot(entries, genesisCoinbaseTxID, 1))
	assert.False(t, VerifyGenesisMerkleRoot(entries, "", 0))
	assert.False(t, VerifyGenesisMerkleRoot(entries, block100000MerkleRoot, 0))
}

func TestVerifyGenesisMerkleRootRequiresExactlyOneTx(t *testing.T) {
	assert.False(t, VerifyGenesisMerkleRoot(nil, genesisCoinbaseTxID, 0))

	two := []TxEntry{TxID(genesisCoinbaseTxID), TxID(block100000TxIDs[0])}
	assert.False(t, VerifyGenesisMerkleRoot(two, genesisCoinbaseTxID, 0))
}

func TestEmptyMerkleRoot(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", 64), EmptyMerkleRoot())
}

// Package model holds the RPC-shaped block and transaction records returned
// by bitcoind, and their conversion into verification inputs.
package model

import (
	"encoding/json"
	"strings"

	"github.com/torrejonv/merklecheck/merkle"
)

// witnessCommitmentPrefix is OP_RETURN OP_PUSH36 followed by the BIP141
// commitment header 0xaa21a9ed.
const witnessCommitmentPrefix = "6a24aa21a9ed"

// RPCBlock is the subset of a getblock response needed for merkle root
// verification.
type RPCBlock struct {
	Hash       string           `json:"hash"`
	Height     uint32           `json:"height"`
	MerkleRoot string           `json:"merkleroot"`
	NTx        uint32           `json:"nTx,omitempty"`
	Tx         []RPCTransaction `json:"tx"`
}

// RPCTransaction is one entry of a block's tx list. Depending on getblock
// verbosity it is either a bare txid string or an object carrying txid,
// hash and, for segwit nodes, wtxid.
type RPCTransaction struct {
	TxID  string   `json:"txid"`
	WTxID string   `json:"wtxid,omitempty"`
	Hash  string   `json:"hash,omitempty"`
	Vout  []RPCOut `json:"vout,omitempty"`

	bare string
}

type RPCOut struct {
	ScriptPubKey RPCScriptPubKey `json:"scriptPubKey"`
}

type RPCScriptPubKey struct {
	Hex  string `json:"hex"`
	Type string `json:"type,omitempty"`
}

func (tx *RPCTransaction) UnmarshalJSON(data []byte) error {
	// verbosity 1 returns bare txid strings
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}

		tx.bare = id

		return nil
	}

	type alias RPCTransaction

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*tx = RPCTransaction(a)

	return nil
}

// Entry converts the transaction into the form the merkle extractors take.
func (tx *RPCTransaction) Entry() merkle.TxEntry {
	if tx.bare != "" {
		return merkle.TxID(tx.bare)
	}

	return merkle.TxDescriptor{
		TxID:  tx.TxID,
		WTxID: tx.WTxID,
		Hash:  tx.Hash,
	}
}

// TxEntries returns the block's transactions in merkle extraction form,
// preserving block order.
func (b *RPCBlock) TxEntries() []merkle.TxEntry {
	entries := make([]merkle.TxEntry, len(b.Tx))
	for i := range b.Tx {
		entries[i] = b.Tx[i].Entry()
	}

	return entries
}

// WitnessCommitment scans the coinbase outputs for the BIP141 commitment
// script and returns the committed hash as hex, or "" when the block carries
// no commitment. When several outputs match, the last one counts.
func (b *RPCBlock) WitnessCommitment() string {
	if len(b.Tx) == 0 {
		return ""
	}

	commitment := ""

	for _, out := range b.Tx[0].Vout {
		script := strings.ToLower(out.ScriptPubKey.Hex)
		if strings.HasPrefix(script, witnessCommitmentPrefix) && len(script) >= len(witnessCommitmentPrefix)+64 {
			commitment = script[len(witnessCommitmentPrefix) : len(witnessCommitmentPrefix)+64]
		}
	}

	return commitment
}

// VerificationRequest assembles the whole-block verification input.
// The witness check is only armed when the block actually carries a
// commitment.
func (b *RPCBlock) VerificationRequest(verifyWitness bool) merkle.BlockVerificationRequest {
	return merkle.BlockVerificationRequest{
		Transactions:       b.TxEntries(),
		ExpectedMerkleRoot: b.MerkleRoot,
		VerifyWitness:      verifyWitness,
		WitnessCommitment:  b.WitnessCommitment(),
	}
}

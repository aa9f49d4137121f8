package merkle

import (
	"strings"
)

// TxEntry is either a bare transaction id (TxID) or a rich descriptor
// (TxDescriptor) as returned by getblock at higher verbosity. The two forms
// are kept as distinct types so extraction can dispatch exhaustively.
type TxEntry interface {
	txEntry()
}

// TxID is a bare big-endian transaction id hex string.
type TxID string

func (TxID) txEntry() {}

// TxDescriptor carries the id fields of an RPC transaction object. Fields
// are independent and optional; an empty string means the field is absent.
type TxDescriptor struct {
	TxID  string `json:"txid,omitempty"`
	WTxID string `json:"wtxid,omitempty"`
	Hash  string `json:"hash,omitempty"`
}

func (TxDescriptor) txEntry() {}

// ExtractTxIDs returns the ordered lowercase txids of the given entries.
// Bare ids are used verbatim; descriptors prefer txid, falling back to hash.
// Entries yielding neither field are dropped, order of the rest is preserved.
func ExtractTxIDs(entries []TxEntry) []string {
	txids := make([]string, 0, len(entries))

	for _, entry := range entries {
		switch e := entry.(type) {
		case TxID:
			txids = append(txids, strings.ToLower(string(e)))
		case TxDescriptor:
			switch {
			case e.TxID != "":
				txids = append(txids, strings.ToLower(e.TxID))
			case e.Hash != "":
				txids = append(txids, strings.ToLower(e.Hash))
			}
		}
	}

	return txids
}

// ExtractWTxIDs returns the ordered lowercase witness txids of the given
// entries. Bare ids are used verbatim; descriptors prefer wtxid, then txid,
// then hash. Entries yielding no field are dropped.
func ExtractWTxIDs(entries []TxEntry) []string {
	wtxids := make([]string, 0, len(entries))

	for _, entry := range entries {
		switch e := entry.(type) {
		case TxID:
			wtxids = append(wtxids, strings.ToLower(string(e)))
		case TxDescriptor:
			switch {
			case e.WTxID != "":
				wtxids = append(wtxids, strings.ToLower(e.WTxID))
			case e.TxID != "":
				wtxids = append(wtxids, strings.ToLower(e.TxID))
			case e.Hash != "":
				wtxids = append(wtxids, strings.ToLower(e.Hash))
			}
		}
	}

	return wtxids
}

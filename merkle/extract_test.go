package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTxIDs(t *testing.T) {
	entries := []TxEntry{
		TxID("ABC123"),
		TxDescriptor{TxID: "def456"},
		TxDescriptor{Hash: "GHI789"},
		TxDescriptor{},
	}

	txids := ExtractTxIDs(entries)
	assert.Equal(t, []string{"abc123", "def456", "ghi789"}, txids, "field-less descriptor dropped, order preserved")
}

func TestExtractTxIDsPrefersTxIDOverHash(t *testing.T) {
	entries := []TxEntry{
		TxDescriptor{TxID: "aaa", Hash: "bbb"},
	}

	assert.Equal(t, []string{"aaa"}, ExtractTxIDs(entries))
}

func TestExtractTxIDsIgnoresWTxID(t *testing.T) {
	entries := []TxEntry{
		TxDescriptor{WTxID: "witness-only"},
	}

	assert.Empty(t, ExtractTxIDs(entries))
}

func TestExtractWTxIDs(t *testing.T) {
	entries := []TxEntry{
		TxID("bare"),
		TxDescriptor{WTxID: "WWW", TxID: "ttt", Hash: "hhh"},
		TxDescriptor{TxID: "ttt2", Hash: "hhh2"},
		TxDescriptor{Hash: "hhh3"},
		TxDescriptor{},
	}

	wtxids := ExtractWTxIDs(entries)
	assert.Equal(t, []string{"bare", "www", "ttt2", "hhh3"}, wtxids)
}

func TestExtractEmptyList(t *testing.T) {
	assert.Empty(t, ExtractTxIDs(nil))
	assert.Empty(t, ExtractWTxIDs(nil))
}

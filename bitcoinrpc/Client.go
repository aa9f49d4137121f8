// Package bitcoinrpc is a minimal JSON-RPC client for bitcoind, covering
// only the calls merklecheck needs to fetch block data for verification.
package bitcoinrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"

	"github.com/torrejonv/merklecheck/errors"
	"github.com/torrejonv/merklecheck/model"
	"github.com/torrejonv/merklecheck/settings"
	"github.com/torrejonv/merklecheck/ulogger"
)

type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
	logger     ulogger.Logger
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func NewClient(logger ulogger.Logger, tSettings *settings.Settings) (*Client, error) {
	if tSettings.RPC.URL == "" {
		return nil, errors.NewConfigurationError("rpc_url is not set")
	}

	return &Client{
		url:      tSettings.RPC.URL,
		username: tSettings.RPC.Username,
		password: tSettings.RPC.Password,
		httpClient: &http.Client{
			Timeout: tSettings.RPC.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	requestBody, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      "merklecheck",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.NewProcessingError("failed to marshal %s request body", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(requestBody))
	if err != nil {
		return errors.NewProcessingError("failed to create %s request", method, err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRPCError("failed to perform %s request", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewRPCError("failed to read %s response body", method, err)
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(body, &rpcResp); err != nil {
		// bitcoind returns plain text on auth failures
		if resp.StatusCode != http.StatusOK {
			return errors.NewRPCError("%s returned status %d: %s", method, resp.StatusCode, string(body))
		}

		return errors.NewRPCError("failed to unmarshal %s response", method, err)
	}

	if rpcResp.Error != nil {
		return errors.NewRPCError("%s failed with code %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return errors.NewRPCError("failed to unmarshal %s result", method, err)
	}

	return nil
}

// GetBlock fetches a block by hash at the given getblock verbosity.
// Verbosity 1 yields bare txids, verbosity 2 full transaction objects
// including the coinbase outputs needed for the witness commitment.
func (c *Client) GetBlock(ctx context.Context, blockHash string, verbosity int) (*model.RPCBlock, error) {
	if _, err := chainhash.NewHashFromStr(blockHash); err != nil {
		return nil, errors.NewInvalidArgumentError("invalid block hash %q", blockHash, err)
	}

	var block model.RPCBlock
	if err := c.call(ctx, "getblock", []interface{}{blockHash, verbosity}, &block); err != nil {
		return nil, err
	}

	c.logger.Debugf("fetched block %s at height %d with %d transactions", block.Hash, block.Height, len(block.Tx))

	return &block, nil
}

// GetBlockHash returns the hash of the block at the given height.
func (c *Client) GetBlockHash(ctx context.Context, height uint32) (string, error) {
	var blockHash string
	if err := c.call(ctx, "getblockhash", []interface{}{height}, &blockHash); err != nil {
		return "", err
	}

	return blockHash, nil
}

// GetBestBlockHash returns the hash of the chain tip.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	var blockHash string
	if err := c.call(ctx, "getbestblockhash", []interface{}{}, &blockHash); err != nil {
		return "", err
	}

	return blockHash, nil
}

// GetBlockCount returns the current chain height.
func (c *Client) GetBlockCount(ctx context.Context) (uint32, error) {
	var count uint32
	if err := c.call(ctx, "getblockcount", []interface{}{}, &count); err != nil {
		return 0, err
	}

	return count, nil
}

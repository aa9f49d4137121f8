package verifier

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/torrejonv/merklecheck/errors"
	"github.com/torrejonv/merklecheck/merkle"
	"github.com/torrejonv/merklecheck/model"
)

type verifyBlockRequest struct {
	Transactions      []model.RPCTransaction `json:"transactions"`
	MerkleRoot        string                 `json:"merkleroot"`
	VerifyWitness     bool                   `json:"verifyWitness"`
	WitnessCommitment string                 `json:"witnessCommitment"`
	WitnessReserved   string                 `json:"witnessReserved"`
}

type verifyGenesisRequest struct {
	Transactions []model.RPCTransaction `json:"transactions"`
	MerkleRoot   string                 `json:"merkleroot"`
	Height       uint32                 `json:"height"`
}

type computeRootRequest struct {
	TxIDs   []string `json:"txids"`
	Witness bool     `json:"witness"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type computeRootResponse struct {
	MerkleRoot string `json:"merkleroot"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func entries(txs []model.RPCTransaction) []merkle.TxEntry {
	e := make([]merkle.TxEntry, len(txs))
	for i := range txs {
		e[i] = txs[i].Entry()
	}

	return e
}

func (s *Server) handleVerifyBlock(c echo.Context) error {
	var req verifyBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	start := time.Now()

	valid := merkle.VerifyBlockMerkleRoot(merkle.BlockVerificationRequest{
		Transactions:       entries(req.Transactions),
		ExpectedMerkleRoot: req.MerkleRoot,
		VerifyWitness:      req.VerifyWitness,
		WitnessCommitment:  req.WitnessCommitment,
		WitnessReserved:    req.WitnessReserved,
	})

	prometheusVerifierVerifyDurations.Observe(time.Since(start).Seconds())

	if valid {
		prometheusVerifierVerifyBlock.WithLabelValues("valid").Inc()
	} else {
		prometheusVerifierVerifyBlock.WithLabelValues("invalid").Inc()
		s.logger.Warnf("[Verifier] block merkle root %s did not verify", req.MerkleRoot)
	}

	return c.JSON(http.StatusOK, verifyResponse{Valid: valid})
}

func (s *Server) handleVerifyGenesis(c echo.Context) error {
	var req verifyGenesisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	valid := merkle.VerifyGenesisMerkleRoot(entries(req.Transactions), req.MerkleRoot, req.Height)

	return c.JSON(http.StatusOK, verifyResponse{Valid: valid})
}

func (s *Server) handleComputeRoot(c echo.Context) error {
	var req computeRootRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	prometheusVerifierComputeRoot.Inc()

	var (
		root string
		err  error
	)

	if req.Witness {
		root, err = merkle.ComputeWitnessMerkleRoot(req.TxIDs)
	} else {
		root, err = merkle.ComputeMerkleRoot(req.TxIDs)
	}

	if err != nil {
		prometheusVerifierComputeRootErr.Inc()

		if errors.Is(err, errors.ErrEmptyInput) || errors.Is(err, errors.ErrInvalidHex) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, computeRootResponse{MerkleRoot: root})
}

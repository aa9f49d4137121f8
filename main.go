// merklecheck verifies Bitcoin block merkle roots and BIP141 witness
// commitments against data fetched from a bitcoind node, without trusting
// the node's own verdict.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ordishs/gocore"
	"github.com/urfave/cli/v2"

	"github.com/torrejonv/merklecheck/bitcoinrpc"
	"github.com/torrejonv/merklecheck/errors"
	"github.com/torrejonv/merklecheck/merkle"
	"github.com/torrejonv/merklecheck/services/verifier"
	"github.com/torrejonv/merklecheck/settings"
	"github.com/torrejonv/merklecheck/ulogger"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "merklecheck"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	tSettings := settings.NewSettings()
	logger := ulogger.New(progname, ulogger.WithLevel(tSettings.LogLevel))

	app := &cli.App{
		Name:  progname,
		Usage: "Verify Bitcoin block merkle roots and BIP141 witness commitments",
		Commands: []*cli.Command{
			verifyCommand(logger, tSettings),
			rootCommand(),
			serveCommand(logger, tSettings),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func verifyCommand(logger ulogger.Logger, tSettings *settings.Settings) *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Fetch a block over RPC and verify its merkle root",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "hash",
				Usage: "hash of the block to verify",
			},
			&cli.UintFlag{
				Name:  "height",
				Usage: "height of the block to verify, used when no hash is given",
			},
			&cli.BoolFlag{
				Name:  "witness",
				Usage: "also verify the BIP141 witness commitment when the block carries one",
				Value: true,
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			client, err := bitcoinrpc.NewClient(logger, tSettings)
			if err != nil {
				return err
			}

			blockHash := c.String("hash")
			if blockHash == "" {
				if !c.IsSet("height") {
					return errors.NewInvalidArgumentError("either --hash or --height is required")
				}

				blockHash, err = client.GetBlockHash(ctx, uint32(c.Uint("height")))
				if err != nil {
					return err
				}
			}

			block, err := client.GetBlock(ctx, blockHash, 2)
			if err != nil {
				return err
			}

			if block.Height == 0 {
				if !merkle.VerifyGenesisMerkleRoot(block.TxEntries(), block.MerkleRoot, block.Height) {
					return errors.NewBlockInvalidError("genesis merkle root %s did NOT verify", block.MerkleRoot)
				}

				logger.Infof("genesis block merkle root %s verified", block.MerkleRoot)

				return nil
			}

			if !merkle.VerifyBlockMerkleRoot(block.VerificationRequest(c.Bool("witness"))) {
				return errors.NewBlockInvalidError("block %s merkle root %s did NOT verify", block.Hash, block.MerkleRoot)
			}

			logger.Infof("block %s at height %d verified: merkle root %s covers %d transactions", block.Hash, block.Height, block.MerkleRoot, len(block.Tx))

			return nil
		},
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:      "root",
		Usage:     "Compute the merkle root of the given txids, one per argument or per stdin line",
		ArgsUsage: "[txid...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "witness",
				Usage: "compute the witness merkle root, zeroing the first (coinbase) entry",
			},
		},
		Action: func(c *cli.Context) error {
			txids := c.Args().Slice()

			if len(txids) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						txids = append(txids, line)
					}
				}

				if err := scanner.Err(); err != nil {
					return errors.NewProcessingError("failed reading txids from stdin", err)
				}
			}

			var (
				root string
				err  error
			)

			if c.Bool("witness") {
				root, err = merkle.ComputeWitnessMerkleRoot(txids)
			} else {
				root, err = merkle.ComputeMerkleRoot(txids)
			}

			if err != nil {
				return err
			}

			fmt.Println(root)

			return nil
		},
	}
}

func serveCommand(logger ulogger.Logger, tSettings *settings.Settings) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP verification service",
		Action: func(c *cli.Context) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return verifier.New(logger, tSettings).Start(ctx)
		},
	}
}

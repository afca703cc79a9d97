package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/franco-bianco/rayswap-go/config"
	"github.com/franco-bianco/rayswap-go/fetch"
	solanaswapgo "github.com/franco-bianco/rayswap-go/solanaswap-go"
)

/*
Example Transactions:
- Rayd V4: 5kaAWK5X9DdMmsWm6skaUXLd6prFisuYJavd9B62A941nRGcrmwvncg3tRtUfn7TcMLsrrmjCChdEjK3sjxS6YG9
- Jupiter (ignored): DBctXdTTtvn7Rr4ikeJFCBz4AtHmJRyjHGQFpE59LuY3Shb7UcRJThAXC7TGRXXskXuu9LEm9RqtU6mWxe5cjPF
- Orca (not Raydium): 2kAW5GAhPZjM3NoSrhJVHdEpwjmq9neWtckWnjopCfsmCGB27e3v2ZyMM79FdsL4VWGEtYSFi1sF1Zhs7bqdoaVT
*/

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
)

type parseOutput struct {
	Signature string                   `json:"signature"`
	Result    solanaswapgo.ParseResult `json:"result"`
	Swap      *solanaswapgo.SwapInfo   `json:"swap,omitempty"`
}

func main() {
	app := &cli.App{
		Name:    "rayswap",
		Usage:   "Classify Raydium AMM v4 swaps for a tracked wallet",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a .properties file; environment variables take precedence",
				EnvVars: []string{"RAYSWAP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			parseCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Fetch transactions and print their swap classification",
		ArgsUsage: "<signature> [signature...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one transaction signature is required", 1)
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			log := logrus.New()
			log.SetFormatter(&logrus.TextFormatter{
				TimestampFormat: "2006-01-02 15:04:05",
				FullTimestamp:   true,
			})
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			parser := solanaswapgo.NewParser(cfg.Programs())
			parser.Log = log

			fetcher := fetch.NewFetcher(rpc.New(cfg.RPCURL), fetch.Options{
				Commitment:                     rpc.CommitmentConfirmed,
				MaxSupportedTransactionVersion: cfg.MaxTxVersion,
				Attempts:                       cfg.FetchAttempts,
				Delay:                          cfg.FetchDelay,
				MaxDelay:                       cfg.FetchMaxDelay,
			}, log)

			failed := 0
			for _, signature := range c.Args().Slice() {
				result, err := fetcher.Classify(c.Context, signature, parser)
				if err != nil {
					log.Errorf("error parsing transaction %s: %s", signature, err)
					failed++
					continue
				}

				out := parseOutput{Signature: signature, Result: result}
				if result.IsSwap() {
					swap := solanaswapgo.ConvertToSwapInfo(result, cfg.BaseMint)
					out.Swap = &swap
				}

				marshalledData, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(marshalledData))
			}

			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d transactions failed", failed, c.NArg()), 1)
			}
			return nil
		},
	}
}

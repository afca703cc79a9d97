package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"

	"github.com/franco-bianco/rayswap-go/fetch"
	solanaswapgo "github.com/franco-bianco/rayswap-go/solanaswap-go"
)

func main() {
	cfg := solanaswapgo.DefaultConfig()
	cfg.TrackedAccount = os.Getenv("TARGET_PUBKEY")
	if cfg.TrackedAccount == "" {
		log.Fatal("TARGET_PUBKEY not set")
	}

	parser := solanaswapgo.NewParser(cfg)
	fetcher := fetch.NewFetcher(rpc.New(rpc.MainNetBeta.RPC), fetch.DefaultOptions(), logrus.StandardLogger())

	result, err := fetcher.Classify(
		context.TODO(),
		"5kaAWK5X9DdMmsWm6skaUXLd6prFisuYJavd9B62A941nRGcrmwvncg3tRtUfn7TcMLsrrmjCChdEjK3sjxS6YG9",
		parser,
	)
	if err != nil {
		log.Fatalf("error parsing tx: %s", err)
	}

	swapInfo := solanaswapgo.ConvertToSwapInfo(result, cfg.BaseMint)

	data, _ := json.MarshalIndent(swapInfo, "", "  ")
	fmt.Println(string(data))
}

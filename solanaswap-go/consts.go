package solanaswapgo

import "github.com/gagliardetto/solana-go"

var (
	JUPITER_PROGRAM_ID    = solana.MustPublicKeyFromBase58("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4")
	RAYDIUM_V4_PROGRAM_ID = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")

	// Raydium AMM v4 pool vault authority, owner of every v4 pool's token accounts
	RAYDIUM_AUTHORITY_V4 = solana.MustPublicKeyFromBase58("5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1")

	NATIVE_SOL_MINT_PROGRAM_ID = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

type SwapType string

const (
	SWAP     SwapType = "Swap"
	NOT_SWAP SwapType = ""
)

type Direction string

const (
	BUY  Direction = "buy"
	SELL Direction = "sell"
	NONE Direction = ""
)

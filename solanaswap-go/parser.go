package solanaswapgo

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config holds the addresses the parser matches against. It is loaded once at
// startup and never changes afterwards.
type Config struct {
	ExcludedProgramID  string // transactions routed through this program are ignored
	RequiredProgramID  string // the AMM program whose swaps are classified
	BaseMint           string
	TrackedAccount     string
	ReferenceAuthority string // owner of the pool's base mint vault
}

// DefaultConfig returns the mainnet Jupiter v6 / Raydium AMM v4 setup. The
// tracked account has no sensible default and is left empty.
func DefaultConfig() Config {
	return Config{
		ExcludedProgramID:  JUPITER_PROGRAM_ID.String(),
		RequiredProgramID:  RAYDIUM_V4_PROGRAM_ID.String(),
		BaseMint:           NATIVE_SOL_MINT_PROGRAM_ID.String(),
		ReferenceAuthority: RAYDIUM_AUTHORITY_V4.String(),
	}
}

type Parser struct {
	cfg Config
	Log *logrus.Logger
}

func NewParser(cfg Config) *Parser {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	return &Parser{
		cfg: cfg,
		Log: log,
	}
}

func (p *Parser) Config() Config {
	return p.cfg
}

// ParseFetchResult classifies the outcome of a getTransaction call. fetchErr is
// the error the fetcher reported, if any.
func (p *Parser) ParseFetchResult(tx *TransactionResult, fetchErr error) (ParseResult, error) {
	meta, err := checkMetadata(tx, fetchErr)
	if err != nil {
		return ParseResult{}, err
	}
	return p.ParseTransaction(meta)
}

func checkMetadata(tx *TransactionResult, fetchErr error) (*TransactionMeta, error) {
	if fetchErr != nil {
		if errors.Is(fetchErr, ErrFetchFailed) {
			return nil, fetchErr
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, fetchErr)
	}
	if tx == nil || tx.Meta == nil {
		return nil, ErrMetadataMissing
	}
	return tx.Meta, nil
}

// ParseTransaction classifies already fetched metadata. Transactions that
// touch the excluded program, or never touch the required one, yield the null
// swap with a nil error.
func (p *Parser) ParseTransaction(meta *TransactionMeta) (ParseResult, error) {
	if meta == nil {
		return ParseResult{}, ErrMetadataMissing
	}

	relevance, err := p.scanLogs(meta.LogMessages)
	if err != nil {
		return ParseResult{}, err
	}
	switch relevance {
	case logsExcluded:
		p.Log.Debugf("excluded program %s found in logs, skipping", p.cfg.ExcludedProgramID)
		return ParseResult{}, nil
	case logsUnrecognized:
		p.Log.Debugf("required program %s not found in logs, skipping", p.cfg.RequiredProgramID)
		return ParseResult{}, nil
	}

	if !meta.InnerInstructions.IsPresent() {
		return ParseResult{}, fmt.Errorf("%w: inner instructions %s", ErrInstructionsUnavailable, meta.InnerInstructions.State())
	}

	deltas, err := p.extractBalances(meta.PreTokenBalances, meta.PostTokenBalances)
	if err != nil {
		return ParseResult{}, err
	}

	result := classifySwap(deltas)
	swap := ConvertToSwapInfo(result, p.cfg.BaseMint)
	p.Log.Infof("Swap In_mint: %s In_amount: %v Out_mint: %s Out_amount: %v",
		swap.TokenInMint, swap.TokenInAmount, swap.TokenOutMint, swap.TokenOutAmount)

	return result, nil
}

// classifySwap turns the balance movements into a direction and amounts. A
// zero change in the tracked balance is reported as a sell of nothing.
func classifySwap(d balanceDeltas) ParseResult {
	tokenDelta := d.postTracked - d.preTracked
	if tokenDelta > 0 {
		return ParseResult{
			TypeTx:    SWAP,
			Direction: BUY,
			AmountIn:  d.postReference - d.preReference,
			AmountOut: tokenDelta,
			Mint:      d.trackedMint,
		}
	}

	return ParseResult{
		TypeTx:    SWAP,
		Direction: SELL,
		AmountIn:  d.preTracked - d.postTracked,
		AmountOut: d.preReference - d.postReference,
		Mint:      d.trackedMint,
	}
}

package fetch

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	solanaswapgo "github.com/franco-bianco/rayswap-go/solanaswap-go"
)

const signatureLength = 64

// RPCClient is the part of *rpc.Client the fetcher needs. Tests replace it
// with a mock instead of hitting a real node.
type RPCClient interface {
	RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error
}

var _ RPCClient = (*rpc.Client)(nil)

type Options struct {
	Commitment                     rpc.CommitmentType
	MaxSupportedTransactionVersion uint64

	Attempts uint          // including the first call
	Delay    time.Duration // base backoff delay
	MaxDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: 0,
		Attempts:                       3,
		Delay:                          500 * time.Millisecond,
		MaxDelay:                       5 * time.Second,
	}
}

type Fetcher struct {
	rpc  RPCClient
	opts Options
	Log  *logrus.Logger
}

func NewFetcher(client RPCClient, opts Options, log *logrus.Logger) *Fetcher {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	return &Fetcher{
		rpc:  client,
		opts: opts,
		Log:  log,
	}
}

// ParseSignature checks that s is a base58 encoded 64 byte signature.
func ParseSignature(s string) (solana.Signature, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w %q: %s", solanaswapgo.ErrInvalidSignature, s, err)
	}
	if len(decoded) != signatureLength {
		return solana.Signature{}, fmt.Errorf("%w %q: decoded length %d, expected %d",
			solanaswapgo.ErrInvalidSignature, s, len(decoded), signatureLength)
	}

	var sig solana.Signature
	copy(sig[:], decoded)
	return sig, nil
}

// GetTransaction fetches the json encoded transaction. Transient RPC errors are
// retried with exponential backoff; a transaction the node does not know is
// reported at once. All failures wrap solanaswapgo.ErrFetchFailed.
func (f *Fetcher) GetTransaction(ctx context.Context, sig solana.Signature) (*solanaswapgo.TransactionResult, error) {
	params := []interface{}{
		sig.String(),
		map[string]interface{}{
			"encoding":                       solana.EncodingJSON,
			"commitment":                     f.opts.Commitment,
			"maxSupportedTransactionVersion": f.opts.MaxSupportedTransactionVersion,
		},
	}

	var tx *solanaswapgo.TransactionResult
	err := retry.Do(
		func() error {
			var out *solanaswapgo.TransactionResult
			if err := f.rpc.RPCCallForInto(ctx, &out, "getTransaction", params); err != nil {
				return err
			}
			if out == nil {
				return retry.Unrecoverable(rpc.ErrNotFound)
			}
			tx = out
			return nil
		},
		retry.Attempts(f.opts.Attempts),
		retry.Delay(f.opts.Delay),
		retry.MaxDelay(f.opts.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			f.Log.Warnf("getTransaction %s attempt %d failed: %s", sig, n+1, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", solanaswapgo.ErrFetchFailed, sig, err)
	}

	f.Log.Debugf("fetched transaction %s at slot %d", sig, tx.Slot)
	return tx, nil
}

// Classify validates the signature, fetches the transaction and runs it
// through parser.
func (f *Fetcher) Classify(ctx context.Context, signature string, parser *solanaswapgo.Parser) (solanaswapgo.ParseResult, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return solanaswapgo.ParseResult{}, err
	}

	tx, err := f.GetTransaction(ctx, sig)
	return parser.ParseFetchResult(tx, err)
}

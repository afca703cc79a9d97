package solanaswapgo

import (
	"bytes"
	"encoding/json"

	"github.com/gagliardetto/solana-go/rpc"
)

// FieldState tells apart the three ways an RPC node can report an optional
// metadata field.
type FieldState uint8

const (
	// FieldNotRequested is the zero value: the key was left out of the response.
	FieldNotRequested FieldState = iota
	// FieldAbsent means the key was sent as an explicit null.
	FieldAbsent
	FieldPresent
)

func (s FieldState) String() string {
	switch s {
	case FieldNotRequested:
		return "not requested"
	case FieldAbsent:
		return "absent"
	case FieldPresent:
		return "present"
	default:
		return "unknown"
	}
}

// OptionalField holds a tri-state value. Decoding JSON into it records whether
// the key was skipped, null, or carried a value.
type OptionalField[T any] struct {
	state FieldState
	value T
}

// Some returns a present field.
func Some[T any](v T) OptionalField[T] {
	return OptionalField[T]{state: FieldPresent, value: v}
}

// None returns a field the source explicitly reported as null.
func None[T any]() OptionalField[T] {
	return OptionalField[T]{state: FieldAbsent}
}

// Skip returns a field that was never requested.
func Skip[T any]() OptionalField[T] {
	return OptionalField[T]{}
}

func (f OptionalField[T]) State() FieldState {
	return f.state
}

func (f OptionalField[T]) IsPresent() bool {
	return f.state == FieldPresent
}

// Get returns the value and whether it is present.
func (f OptionalField[T]) Get() (T, bool) {
	return f.value, f.state == FieldPresent
}

func (f *OptionalField[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.state, f.value = FieldAbsent, zero
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.state, f.value = FieldPresent, v
	return nil
}

func (f OptionalField[T]) MarshalJSON() ([]byte, error) {
	if f.state != FieldPresent {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

type UITokenAmount struct {
	Amount         string   `json:"amount"`
	Decimals       uint8    `json:"decimals"`
	UIAmount       *float64 `json:"uiAmount"` // null for zero or uninitialized balances
	UIAmountString string   `json:"uiAmountString"`
}

// TokenBalanceEntry is one element of preTokenBalances / postTokenBalances.
type TokenBalanceEntry struct {
	AccountIndex  uint16                `json:"accountIndex"`
	Mint          string                `json:"mint"`
	Owner         OptionalField[string] `json:"owner"`
	ProgramID     OptionalField[string] `json:"programId"`
	UITokenAmount UITokenAmount         `json:"uiTokenAmount"`
}

// TransactionMeta is the subset of getTransaction's meta object the parser
// reads, decoded with tri-state awareness.
type TransactionMeta struct {
	Err               interface{}                           `json:"err"`
	Fee               uint64                                `json:"fee"`
	LogMessages       OptionalField[[]string]               `json:"logMessages"`
	InnerInstructions OptionalField[[]rpc.InnerInstruction] `json:"innerInstructions"`
	PreTokenBalances  OptionalField[[]TokenBalanceEntry]    `json:"preTokenBalances"`
	PostTokenBalances OptionalField[[]TokenBalanceEntry]    `json:"postTokenBalances"`
}

type TransactionResult struct {
	Slot      uint64           `json:"slot"`
	BlockTime *int64           `json:"blockTime"`
	Meta      *TransactionMeta `json:"meta"`
}

// ParseResult is the classification of a single transaction. The zero value
// is the null swap.
type ParseResult struct {
	TypeTx    SwapType  `json:"type_tx"`
	Direction Direction `json:"direction,omitempty"`
	AmountIn  float64   `json:"amount_in"`
	AmountOut float64   `json:"amount_out"`
	Mint      string    `json:"mint"`
}

func (r ParseResult) IsSwap() bool {
	return r.TypeTx == SWAP
}

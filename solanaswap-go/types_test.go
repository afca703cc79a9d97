package solanaswapgo

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getTransactionResult = `{
  "slot": 301245817,
  "blockTime": 1731412345,
  "meta": {
    "err": null,
    "fee": 5000,
    "logMessages": [
      "Program ComputeBudget111111111111111111111111111111 invoke [1]",
      "Program 675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8 invoke [1]",
      "Program log: ray_log: A0BCDwAAAAAA",
      "Program 675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8 success"
    ],
    "innerInstructions": [
      {
        "index": 1,
        "instructions": [
          {"programIdIndex": 4, "accounts": [1, 2, 3], "data": "3DdGGhkhJbjm", "stackHeight": 2}
        ]
      }
    ],
    "preTokenBalances": [
      {
        "accountIndex": 1,
        "mint": "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
        "owner": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
        "programId": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
        "uiTokenAmount": {"amount": "0", "decimals": 5, "uiAmount": null, "uiAmountString": "0"}
      },
      {
        "accountIndex": 2,
        "mint": "So11111111111111111111111111111111111111112",
        "owner": "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
        "programId": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
        "uiTokenAmount": {"amount": "90000000000", "decimals": 9, "uiAmount": 90.0, "uiAmountString": "90"}
      }
    ],
    "postTokenBalances": [
      {
        "accountIndex": 1,
        "mint": "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
        "owner": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
        "programId": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
        "uiTokenAmount": {"amount": "300000", "decimals": 5, "uiAmount": 3.0, "uiAmountString": "3"}
      },
      {
        "accountIndex": 2,
        "mint": "So11111111111111111111111111111111111111112",
        "owner": "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
        "programId": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
        "uiTokenAmount": {"amount": "100000000000", "decimals": 9, "uiAmount": 100.0, "uiAmountString": "100"}
      }
    ]
  }
}`

func TestTransactionResultDecoding(t *testing.T) {
	var tx TransactionResult
	require.NoError(t, json.Unmarshal([]byte(getTransactionResult), &tx))
	require.NotNil(t, tx.Meta)

	assert.Equal(t, uint64(301245817), tx.Slot)
	assert.Equal(t, FieldPresent, tx.Meta.LogMessages.State())

	inner, ok := tx.Meta.InnerInstructions.Get()
	require.True(t, ok)
	require.Len(t, inner, 1)
	assert.Equal(t, uint16(1), inner[0].Index)
	assert.Len(t, inner[0].Instructions, 1)

	pre, ok := tx.Meta.PreTokenBalances.Get()
	require.True(t, ok)
	require.Len(t, pre, 2)
	assert.Nil(t, pre[0].UITokenAmount.UIAmount)
	owner, ok := pre[0].Owner.Get()
	assert.True(t, ok)
	assert.Equal(t, "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", owner)

	cfg := DefaultConfig()
	cfg.TrackedAccount = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	parser := NewParser(cfg)
	parser.Log.SetLevel(logrus.ErrorLevel)

	result, err := parser.ParseFetchResult(&tx, nil)
	require.NoError(t, err)
	assert.Equal(t, ParseResult{
		TypeTx:    SWAP,
		Direction: BUY,
		AmountIn:  10.0,
		AmountOut: 3.0,
		Mint:      "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
	}, result)
}

func TestOptionalFieldStates(t *testing.T) {
	cases := []struct {
		name  string
		input string
		state FieldState
	}{
		{"key omitted", `{"fee": 5000}`, FieldNotRequested},
		{"explicit null", `{"logMessages": null}`, FieldAbsent},
		{"null with whitespace", `{"logMessages":   null  }`, FieldAbsent},
		{"empty list", `{"logMessages": []}`, FieldPresent},
		{"values", `{"logMessages": ["a", "b"]}`, FieldPresent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var meta TransactionMeta
			require.NoError(t, json.Unmarshal([]byte(c.input), &meta))
			assert.Equal(t, c.state, meta.LogMessages.State())
			assert.Equal(t, c.state == FieldPresent, meta.LogMessages.IsPresent())
		})
	}
}

func TestOptionalFieldOwner(t *testing.T) {
	var entries []TokenBalanceEntry
	input := `[
		{"accountIndex": 1, "mint": "M", "uiTokenAmount": {"amount": "1", "decimals": 0, "uiAmount": 1, "uiAmountString": "1"}},
		{"accountIndex": 2, "mint": "M", "owner": null, "uiTokenAmount": {"amount": "1", "decimals": 0, "uiAmount": 1, "uiAmountString": "1"}},
		{"accountIndex": 3, "mint": "M", "owner": "O", "uiTokenAmount": {"amount": "1", "decimals": 0, "uiAmount": 1, "uiAmountString": "1"}}
	]`
	require.NoError(t, json.Unmarshal([]byte(input), &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, FieldNotRequested, entries[0].Owner.State())
	assert.Equal(t, FieldAbsent, entries[1].Owner.State())
	assert.Equal(t, Some("O"), entries[2].Owner)
}

func TestOptionalFieldInvalidValue(t *testing.T) {
	var meta TransactionMeta
	assert.Error(t, json.Unmarshal([]byte(`{"logMessages": "not a list"}`), &meta))
}

func TestOptionalFieldMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A OptionalField[[]string] `json:"a"`
		B OptionalField[[]string] `json:"b"`
		C OptionalField[string]   `json:"c"`
	}{
		A: Some([]string{"x"}),
		B: None[[]string](),
		C: Skip[string](),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": ["x"], "b": null, "c": null}`, string(out))
}

func TestFieldStateString(t *testing.T) {
	assert.Equal(t, "not requested", FieldNotRequested.String())
	assert.Equal(t, "absent", FieldAbsent.String())
	assert.Equal(t, "present", FieldPresent.String())
	assert.Equal(t, "unknown", FieldState(9).String())
}

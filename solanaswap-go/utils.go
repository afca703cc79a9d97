package solanaswapgo

// uiAmountOrZero reads a nullable ui amount, treating null as an empty balance.
func uiAmountOrZero(amount *float64) float64 {
	if amount == nil {
		return 0
	}
	return *amount
}

// SwapInfo expresses a classified swap as the token given and the token received.
type SwapInfo struct {
	Direction      Direction `json:"direction"`
	TokenInMint    string    `json:"token_in_mint"`
	TokenInAmount  float64   `json:"token_in_amount"`
	TokenOutMint   string    `json:"token_out_mint"`
	TokenOutAmount float64   `json:"token_out_amount"`
}

func ConvertToSwapInfo(result ParseResult, baseMint string) SwapInfo {
	switch {
	case !result.IsSwap():
		return SwapInfo{}
	case result.Direction == BUY:
		return SwapInfo{
			Direction:      BUY,
			TokenInMint:    baseMint,
			TokenInAmount:  result.AmountIn,
			TokenOutMint:   result.Mint,
			TokenOutAmount: result.AmountOut,
		}
	default:
		return SwapInfo{
			Direction:      result.Direction,
			TokenInMint:    result.Mint,
			TokenInAmount:  result.AmountIn,
			TokenOutMint:   baseMint,
			TokenOutAmount: result.AmountOut,
		}
	}
}

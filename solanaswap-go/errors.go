package solanaswapgo

import "errors"

var (
	ErrFetchFailed             = errors.New("failed to fetch transaction")
	ErrMetadataMissing         = errors.New("not able to parse transaction metadata")
	ErrLogsUnavailable         = errors.New("no log messages found in transaction metadata")
	ErrInstructionsUnavailable = errors.New("no inner instructions found in transaction metadata")
	ErrBalancesUnavailable     = errors.New("no token balances found in transaction metadata")
	ErrOwnerUnavailable        = errors.New("token balance owner not available")
	ErrInvalidSignature        = errors.New("invalid transaction signature")
)

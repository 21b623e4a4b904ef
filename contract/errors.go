package main

import "scythra_presale/sdk"

// Revert symbols, one per failure class. Every failed check terminates the
// invocation via sdk.Revert; the host discards all state writes.
const (
	ErrPresaleInactive    = "presale_inactive"
	ErrPresaleActive      = "presale_active"
	ErrInvalidAmount      = "invalid_amount"
	ErrInvalidTimestamp   = "invalid_timestamp"
	ErrInvalidTreasury    = "invalid_treasury"
	ErrInvalidMint        = "invalid_mint"
	ErrWalletLimit        = "wallet_limit_exceeded"
	ErrHardCap            = "hard_cap_exceeded"
	ErrAllTiersSold       = "all_tiers_sold"
	ErrUnauthorizedBuyer  = "unauthorized_buyer"
	ErrUnauthorized       = "unauthorized"
	ErrMathOverflow       = "math_overflow"
	ErrAlreadyInitialized = "already_initialized"
	ErrNotInitialized     = "not_initialized"
	ErrPaymentRejected    = "payment_rejected"
)

// fail reverts the invocation with a symbol plus human readable message.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
}

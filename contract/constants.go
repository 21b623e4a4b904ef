package main

import (
	"math"

	"scythra_presale/sdk"
)

// -----------------------------------------------------------------------------
// Tier ladder parameters
// -----------------------------------------------------------------------------

const (
	// TokensPerTier is the number of sale tokens sold per price tier.
	TokensPerTier uint64 = 5_000_000
	// TotalTiers is the number of tiers in the ladder.
	TotalTiers uint64 = 30
	// HardCap is the total issuable amount across all tiers.
	HardCap uint64 = TokensPerTier * TotalTiers
	// InitialPrice is the tier-zero unit price in payment-asset minor units.
	InitialPrice uint64 = 100
	// PriceIncreaseBps is the per-tier multiplicative growth (12800 = x1.28).
	PriceIncreaseBps uint64 = 12800
	// BasisPointsDivisor scales basis points back down after each step.
	BasisPointsDivisor uint64 = 10000
	// MaxTokensPerWallet caps cumulative purchases per buyer to one tier.
	MaxTokensPerWallet uint64 = TokensPerTier
)

// -----------------------------------------------------------------------------
// Payment Assets
// -----------------------------------------------------------------------------

// validPaymentAssets lists the hive-ledger assets accepted as the payment side
// of the sale.
var validPaymentAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting transfer.allow
// limit floats to int64 minor units.
const AmountScale = 1000

// Amount is a hive-ledger amount in minor units.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so
// limit comparisons stay precise.
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

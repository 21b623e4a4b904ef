package main

import "scythra_presale/sdk"

// PresaleState is the sale-wide singleton record. Owner, treasury and the two
// asset identities are immutable after initialization; TotalSold only grows
// inside a successful purchase; Active is flipped by the lifecycle ops.
//
//tinyjson:json
type PresaleState struct {
	Owner        sdk.Address `json:"owner"`
	Treasury     sdk.Address `json:"treasury"`
	PaymentAsset sdk.Asset   `json:"payment_asset"`
	SaleToken    string      `json:"sale_token"`
	InitialPrice uint64      `json:"initial_price"`
	StartTime    int64       `json:"start_time"`
	TotalSold    uint64      `json:"total_sold"`
	Active       bool        `json:"active"`
	HardCap      uint64      `json:"hard_cap"`
	MaxPerWallet uint64      `json:"max_per_wallet"`
}

// UserPurchase tracks one buyer's cumulative purchase. Created lazily on the
// first buy; Buyer is bound once and never changes afterwards.
//
//tinyjson:json
type UserPurchase struct {
	Buyer  sdk.Address `json:"buyer"`
	Amount uint64      `json:"amount"`
}

// InitializePresaleArgs is the initialize_presale call payload.
//
//tinyjson:json
type InitializePresaleArgs struct {
	Treasury     string `json:"treasury"`
	PaymentAsset string `json:"payment_asset"`
	SaleToken    string `json:"sale_token"`
}

// BuyTokensArgs is the buy_tokens call payload.
//
//tinyjson:json
type BuyTokensArgs struct {
	Amount uint64 `json:"amount"`
}

// PurchaseReceipt is returned by buy_tokens and mirrors the purchase event.
//
//tinyjson:json
type PurchaseReceipt struct {
	Buyer  string `json:"buyer"`
	Amount uint64 `json:"amount"`
	Cost   uint64 `json:"cost"`
	Tier   uint64 `json:"tier"`
	Price  uint64 `json:"price"`
}

// SaleStatus is the read-only sale snapshot returned by presale_get.
//
//tinyjson:json
type SaleStatus struct {
	Active        bool   `json:"active"`
	TotalSold     uint64 `json:"total_sold"`
	HardCap       uint64 `json:"hard_cap"`
	TokensPerTier uint64 `json:"tokens_per_tier"`
	TierCount     uint64 `json:"tier_count"`
	CurrentTier   uint64 `json:"current_tier"`
	CurrentPrice  uint64 `json:"current_price"`
	MaxPerWallet  uint64 `json:"max_per_wallet"`
	Treasury      string `json:"treasury"`
	PaymentAsset  string `json:"payment_asset"`
	SaleToken     string `json:"sale_token"`
	StartTime     int64  `json:"start_time"`
}

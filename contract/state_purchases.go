package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"scythra_presale/sdk"
)

// -----------------------------------------------------------------------------
// Purchase Record Persistence
// -----------------------------------------------------------------------------

// loadPurchase returns the stored record for a buyer, nil when absent.
func loadPurchase(buyer sdk.Address) *UserPurchase {
	ptr := sdk.StateGetObject(purchaseKey(buyer))
	if ptr == nil || *ptr == "" {
		return nil
	}
	up := &UserPurchase{}
	if err := tinyjson.Unmarshal([]byte(*ptr), up); err != nil {
		sdk.Abort("purchase record corrupted: " + err.Error())
	}
	return up
}

// getOrCreatePurchase resolves the buyer-keyed record, zero-initialized on
// first access. The buyer field stays unbound until the first successful buy.
func getOrCreatePurchase(buyer sdk.Address) *UserPurchase {
	if up := loadPurchase(buyer); up != nil {
		return up
	}
	return &UserPurchase{}
}

// savePurchase persists a purchase record under the buyer-derived key.
func savePurchase(buyer sdk.Address, up *UserPurchase) {
	b, err := tinyjson.Marshal(up)
	if err != nil {
		sdk.Abort("failed to marshal purchase record: " + err.Error())
	}
	sdk.StateSetObject(purchaseKey(buyer), string(b))
}

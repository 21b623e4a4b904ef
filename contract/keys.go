package main

import "scythra_presale/sdk"

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

const (
	// PresaleStateKey holds the serialized PresaleState singleton.
	PresaleStateKey = "presale:state"
	// purchaseKeyPrefix scopes per-buyer purchase records.
	purchaseKeyPrefix = "presale:buy:"
)

// purchaseKey builds the storage key for a buyer's purchase record. One record
// per identity, derivable without a lookup table.
func purchaseKey(buyer sdk.Address) string {
	return purchaseKeyPrefix + buyer.String()
}

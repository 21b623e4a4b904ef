//go:build wasm

package main

// Host-visible entrypoints. The wasm ABI passes one string payload in and one
// out; the operation logic lives in presale.go so native builds can test it
// against the mock host.

//go:wasmexport initialize_presale
func initializePresaleExport(payload *string) *string {
	return InitializePresale(payload)
}

//go:wasmexport buy_tokens
func buyTokensExport(payload *string) *string {
	return BuyTokens(payload)
}

//go:wasmexport end_presale
func endPresaleExport(payload *string) *string {
	return EndPresale(payload)
}

//go:wasmexport reactivate_presale
func reactivatePresaleExport(payload *string) *string {
	return ReactivatePresale(payload)
}

//go:wasmexport presale_get
func presaleGetExport(payload *string) *string {
	return PresaleGet(payload)
}

//go:wasmexport purchase_get
func purchaseGetExport(payload *string) *string {
	return PurchaseGet(payload)
}

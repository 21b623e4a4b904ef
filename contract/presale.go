////////////////////////////////////////////////////////////////////////////////
// Scythra Presale: tiered token sale contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"scythra_presale/sdk"
)

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// InitializePresale creates the sale singleton with the caller as owner.
// Must be called before any other function.
// Payload: {"treasury":"hive:...","payment_asset":"hbd","sale_token":"SYTR"}
func InitializePresale(payload *string) *string {
	if isInitialized() {
		fail(ErrAlreadyInitialized, "presale already initialized")
	}
	args := decodeInitializeArgs(payload)

	now := nowUnix()
	if now <= 0 {
		fail(ErrInvalidTimestamp, "invalid block timestamp")
	}
	treasury := sdk.Address(args.Treasury)
	if args.Treasury == "" || !treasury.IsValid() {
		fail(ErrInvalidTreasury, "invalid treasury address")
	}
	if !isValidPaymentAsset(args.PaymentAsset) {
		fail(ErrInvalidMint, "unsupported payment asset")
	}
	if args.SaleToken == "" {
		fail(ErrInvalidMint, "sale token identifier required")
	}

	owner := getSenderAddress()
	st := &PresaleState{
		Owner:        owner,
		Treasury:     treasury,
		PaymentAsset: sdk.Asset(args.PaymentAsset),
		SaleToken:    args.SaleToken,
		InitialPrice: InitialPrice,
		StartTime:    now,
		TotalSold:    0,
		Active:       true,
		HardCap:      HardCap,
		MaxPerWallet: MaxTokensPerWallet,
	}
	savePresaleState(st)

	emitInitializedEvent(owner.String(), args.Treasury, args.PaymentAsset, args.SaleToken, now)
	return strptr("presale initialized")
}

// EndPresale deactivates the sale. Owner only; calling it on an already ended
// sale is a no-op, not an error.
func EndPresale(_ *string) *string {
	st := loadPresaleState()
	requireOwner(st, getSenderAddress())

	st.Active = false
	savePresaleState(st)

	emitEndedEvent(st.Owner.String(), st.TotalSold, nowUnix())
	return strptr("presale ended")
}

// ReactivatePresale re-opens an ended sale. Owner only.
func ReactivatePresale(_ *string) *string {
	st := loadPresaleState()
	requireOwner(st, getSenderAddress())
	if st.Active {
		fail(ErrPresaleActive, "presale is already active")
	}

	st.Active = true
	savePresaleState(st)

	emitReactivatedEvent(st.Owner.String(), nowUnix())
	return strptr("presale reactivated")
}

// -----------------------------------------------------------------------------
// Purchase
// -----------------------------------------------------------------------------

// BuyTokens processes one purchase: validates against the sale and the
// caller's purchase record, prices the fill from the pre-purchase tier,
// mutates both records and drives the payment to the treasury. The host's
// all-or-nothing invocation semantics undo the mutation if the payment fails.
func BuyTokens(payload *string) *string {
	args := decodeBuyArgs(payload)
	st := loadPresaleState()

	if !st.Active {
		fail(ErrPresaleInactive, "presale is not active")
	}
	if args.Amount == 0 || args.Amount > TokensPerTier {
		fail(ErrInvalidAmount, "amount must be between 1 and one tier")
	}

	buyer := getSenderAddress()
	up := getOrCreatePurchase(buyer)
	if up.Amount == 0 {
		up.Buyer = buyer
	}
	if up.Buyer != buyer {
		fail(ErrUnauthorizedBuyer, "purchase record bound to another buyer")
	}

	newAmount := mustAdd(up.Amount, args.Amount)
	if newAmount > st.MaxPerWallet {
		fail(ErrWalletLimit, "purchase exceeds wallet limit")
	}
	newTotal := mustAdd(st.TotalSold, args.Amount)
	if newTotal > st.HardCap {
		fail(ErrHardCap, "purchase exceeds hard cap")
	}

	// the whole fill is priced from the pre-purchase tier, never repriced
	// mid-purchase
	tier := tierFor(st.TotalSold)
	if tier >= TotalTiers {
		fail(ErrAllTiersSold, "all tiers have been sold")
	}
	price := priceForTier(tier)
	cost := mustMul(args.Amount, price)

	// state first; the host rolls all of it back if the payment traps
	up.Amount = newAmount
	st.TotalSold = newTotal
	savePurchase(buyer, up)
	savePresaleState(st)

	costInt := paymentAmount(cost)
	requirePaymentAllowance(st.PaymentAsset, costInt)
	sdk.HiveDraw(costInt, st.PaymentAsset)
	sdk.HiveTransfer(st.Treasury, costInt, st.PaymentAsset)

	emitPurchaseEvent(buyer.String(), args.Amount, cost, tier, price)

	receipt := PurchaseReceipt{
		Buyer:  buyer.String(),
		Amount: args.Amount,
		Cost:   cost,
		Tier:   tier,
		Price:  price,
	}
	b, err := tinyjson.Marshal(receipt)
	if err != nil {
		sdk.Abort("failed to marshal receipt: " + err.Error())
	}
	return strptr(string(b))
}

// -----------------------------------------------------------------------------
// Read-only views
// -----------------------------------------------------------------------------

// PresaleGet returns the sale snapshot the frontend polls.
func PresaleGet(_ *string) *string {
	st := loadPresaleState()

	tier := tierFor(st.TotalSold)
	price := uint64(0)
	if tier < TotalTiers {
		price = priceForTier(tier)
	}
	status := SaleStatus{
		Active:        st.Active,
		TotalSold:     st.TotalSold,
		HardCap:       st.HardCap,
		TokensPerTier: TokensPerTier,
		TierCount:     TotalTiers,
		CurrentTier:   tier,
		CurrentPrice:  price,
		MaxPerWallet:  st.MaxPerWallet,
		Treasury:      st.Treasury.String(),
		PaymentAsset:  st.PaymentAsset.String(),
		SaleToken:     st.SaleToken,
		StartTime:     st.StartTime,
	}
	b, err := tinyjson.Marshal(status)
	if err != nil {
		sdk.Abort("failed to marshal status: " + err.Error())
	}
	return strptr(string(b))
}

// PurchaseGet returns the purchase record for an address, zeroed when the
// address never bought.
func PurchaseGet(payload *string) *string {
	if !isInitialized() {
		fail(ErrNotInitialized, "presale not initialized")
	}
	addr := decodeAddressArg(payload)

	up := loadPurchase(addr)
	if up == nil {
		up = &UserPurchase{Buyer: addr}
	}
	b, err := tinyjson.Marshal(up)
	if err != nil {
		sdk.Abort("failed to marshal purchase record: " + err.Error())
	}
	return strptr(string(b))
}

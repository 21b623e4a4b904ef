package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scythra_presale/sdk"
)

func TestBuyTokensHappyPath(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, BuyTokens, buyPayload(1_000_000), buyerAddress, allowFor(100_000_000))
	require.False(t, res.Reverted, res.Msg)
	require.False(t, res.Aborted, res.Msg)

	var receipt PurchaseReceipt
	require.NoError(t, receipt.UnmarshalJSON([]byte(res.Ret)))
	assert.Equal(t, buyerAddress, receipt.Buyer)
	assert.EqualValues(t, 1_000_000, receipt.Amount)
	assert.EqualValues(t, 100_000_000, receipt.Cost)
	assert.EqualValues(t, 0, receipt.Tier)
	assert.EqualValues(t, 100, receipt.Price)

	st := loadPresaleState()
	assert.EqualValues(t, 1_000_000, st.TotalSold)

	up := loadPurchase(sdk.Address(buyerAddress))
	require.NotNil(t, up)
	assert.Equal(t, sdk.Address(buyerAddress), up.Buyer)
	assert.EqualValues(t, 1_000_000, up.Amount)

	// buyer -> contract, then contract -> treasury
	require.Len(t, sdk.MockTransfers, 2)
	assert.Equal(t, sdk.Address(buyerAddress), sdk.MockTransfers[0].From)
	assert.Equal(t, sdk.MockContractAddress(), sdk.MockTransfers[0].To)
	assert.Equal(t, sdk.MockContractAddress(), sdk.MockTransfers[1].From)
	assert.Equal(t, sdk.Address(treasuryAddress), sdk.MockTransfers[1].To)
	assert.EqualValues(t, 100_000_000, sdk.MockTransfers[0].Amount)
	assert.EqualValues(t, 100_000_000, sdk.MockTransfers[1].Amount)
	assert.EqualValues(t, 100_000_000, sdk.GetBalance(sdk.Address(treasuryAddress), sdk.AssetHbd))
	assert.EqualValues(t, 900_000_000, sdk.GetBalance(sdk.Address(buyerAddress), sdk.AssetHbd))

	assert.Contains(t, sdk.MockLogs[len(sdk.MockLogs)-1], "buy|by:"+buyerAddress)
}

func TestBuyBareDigitsPayload(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, BuyTokens, "1000", buyerAddress, allowFor(100_000))
	require.False(t, res.Reverted, res.Msg)
	assert.EqualValues(t, 1000, loadPresaleState().TotalSold)
}

// A fill started below a tier boundary is priced entirely from the
// pre-purchase tier, even when it ends above the boundary. The next
// purchase then pays the higher tier's price.
func TestBuyAcrossTierBoundary(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, BuyTokens, buyPayload(4_900_000), buyerAddress, allowFor(490_000_000))
	require.False(t, res.Reverted, res.Msg)

	// 4.9M sold: still tier 0, so the crossing fill pays 100 for all 200k
	res = callContract(t, BuyTokens, buyPayload(200_000), secondBuyer, allowFor(20_000_000))
	require.False(t, res.Reverted, res.Msg)

	var receipt PurchaseReceipt
	require.NoError(t, receipt.UnmarshalJSON([]byte(res.Ret)))
	assert.EqualValues(t, 0, receipt.Tier)
	assert.EqualValues(t, 100, receipt.Price)
	assert.EqualValues(t, 20_000_000, receipt.Cost)

	// 5.1M sold: tier 1 now, price 128
	res = callContract(t, BuyTokens, buyPayload(100_000), secondBuyer, allowFor(12_800_000))
	require.False(t, res.Reverted, res.Msg)
	require.NoError(t, receipt.UnmarshalJSON([]byte(res.Ret)))
	assert.EqualValues(t, 1, receipt.Tier)
	assert.EqualValues(t, 128, receipt.Price)
	assert.EqualValues(t, 12_800_000, receipt.Cost)

	assert.EqualValues(t, 5_200_000, loadPresaleState().TotalSold)
}

func TestBuyInvalidAmount(t *testing.T) {
	setupPresale()
	initPresale(t)

	for _, amount := range []uint64{0, TokensPerTier + 1, 6_000_000} {
		res := callContract(t, BuyTokens, buyPayload(amount), buyerAddress, allowFor(math.MaxUint32))
		require.True(t, res.Reverted, "amount %d", amount)
		assert.Equal(t, ErrInvalidAmount, res.Symbol)
	}
	assert.EqualValues(t, 0, loadPresaleState().TotalSold)
}

func TestBuyWalletLimit(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, BuyTokens, buyPayload(MaxTokensPerWallet), buyerAddress, allowFor(500_000_000))
	require.False(t, res.Reverted, res.Msg)

	res = callContract(t, BuyTokens, buyPayload(1), buyerAddress, allowFor(1_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrWalletLimit, res.Symbol)

	up := loadPurchase(sdk.Address(buyerAddress))
	require.NotNil(t, up)
	assert.Equal(t, MaxTokensPerWallet, up.Amount)
}

func TestBuyHardCap(t *testing.T) {
	setupPresale()
	initPresale(t)

	st := loadPresaleState()
	st.TotalSold = HardCap
	savePresaleState(st)

	res := callContract(t, BuyTokens, buyPayload(1), buyerAddress, allowFor(1_000_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrHardCap, res.Symbol)
}

func TestBuyFillsToHardCap(t *testing.T) {
	setupPresale()
	initPresale(t)

	st := loadPresaleState()
	st.TotalSold = HardCap - 100
	savePresaleState(st)

	// overshooting the remaining supply is rejected
	res := callContract(t, BuyTokens, buyPayload(200), buyerAddress, allowFor(100_000_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrHardCap, res.Symbol)

	// the exact remainder fills at the final tier's price
	finalPrice := priceForTier(TotalTiers - 1)
	res = callContract(t, BuyTokens, buyPayload(100), buyerAddress, allowFor(100*finalPrice))
	require.False(t, res.Reverted, res.Msg)

	var receipt PurchaseReceipt
	require.NoError(t, receipt.UnmarshalJSON([]byte(res.Ret)))
	assert.Equal(t, TotalTiers-1, receipt.Tier)
	assert.Equal(t, finalPrice, receipt.Price)
	assert.Equal(t, HardCap, loadPresaleState().TotalSold)

	// sold out: any further purchase is over the cap
	res = callContract(t, BuyTokens, buyPayload(1), secondBuyer, allowFor(1_000_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrHardCap, res.Symbol)
}

func TestBuyRejectsForeignPurchaseRecord(t *testing.T) {
	setupPresale()
	initPresale(t)

	savePurchase(sdk.Address(buyerAddress), &UserPurchase{
		Buyer:  sdk.Address(secondBuyer),
		Amount: 10,
	})

	res := callContract(t, BuyTokens, buyPayload(1), buyerAddress, allowFor(1_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrUnauthorizedBuyer, res.Symbol)
}

func TestBuyPaymentRejected(t *testing.T) {
	cases := []struct {
		name    string
		intents []sdk.Intent
	}{
		{"no intent", nil},
		{"wrong token", allowIntent("1000000", "hive")},
		{"limit too low", allowIntent("1", "hbd")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setupPresale()
			initPresale(t)

			res := callContract(t, BuyTokens, buyPayload(1_000_000), buyerAddress, tc.intents)
			require.True(t, res.Reverted)
			assert.Equal(t, ErrPaymentRejected, res.Symbol)

			// the optimistic state writes must have been undone
			assert.EqualValues(t, 0, loadPresaleState().TotalSold)
			assert.Nil(t, loadPurchase(sdk.Address(buyerAddress)))
			assert.Empty(t, sdk.MockTransfers)
		})
	}
}

func TestBuyRollsBackWhenDrawTraps(t *testing.T) {
	setupPresale()
	initPresale(t)

	// outsider holds no hbd, so the draw traps after state was written
	res := callContract(t, BuyTokens, buyPayload(1_000), outsiderAddress, allowFor(100_000))
	require.True(t, res.Aborted)

	assert.EqualValues(t, 0, loadPresaleState().TotalSold)
	assert.Nil(t, loadPurchase(sdk.Address(outsiderAddress)))
	assert.Empty(t, sdk.MockTransfers)
	assert.EqualValues(t, 0, sdk.GetBalance(sdk.Address(treasuryAddress), sdk.AssetHbd))
}

func TestBuyOverflowingWalletTotal(t *testing.T) {
	setupPresale()
	initPresale(t)

	savePurchase(sdk.Address(buyerAddress), &UserPurchase{
		Buyer:  sdk.Address(buyerAddress),
		Amount: math.MaxUint64,
	})

	res := callContract(t, BuyTokens, buyPayload(1), buyerAddress, allowFor(1_000))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrMathOverflow, res.Symbol)
}

func TestBuyMalformedPayload(t *testing.T) {
	setupPresale()
	initPresale(t)

	for _, payload := range []string{"", "not json", `{"amount":"abc"}`} {
		res := callContract(t, BuyTokens, payload, buyerAddress, allowFor(1_000))
		require.True(t, res.Aborted || res.Reverted, "payload %q", payload)
	}
	assert.EqualValues(t, 0, loadPresaleState().TotalSold)
}

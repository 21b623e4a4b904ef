package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scythra_presale/sdk"
)

func TestInitializePresale(t *testing.T) {
	setupPresale()
	initPresale(t)

	st := loadPresaleState()
	assert.Equal(t, sdk.Address(ownerAddress), st.Owner)
	assert.Equal(t, sdk.Address(treasuryAddress), st.Treasury)
	assert.Equal(t, sdk.AssetHbd, st.PaymentAsset)
	assert.Equal(t, saleTokenID, st.SaleToken)
	assert.Equal(t, InitialPrice, st.InitialPrice)
	assert.EqualValues(t, 0, st.TotalSold)
	assert.True(t, st.Active)
	assert.Equal(t, HardCap, st.HardCap)
	assert.Equal(t, MaxTokensPerWallet, st.MaxPerWallet)
	// mock env pins the block at 2025-01-01T00:00:00 UTC
	assert.EqualValues(t, 1735689600, st.StartTime)

	require.Len(t, sdk.MockLogs, 1)
	assert.Contains(t, sdk.MockLogs[0], "pi|own:"+ownerAddress)
	assert.Contains(t, sdk.MockLogs[0], "tr:"+treasuryAddress)
}

func TestInitializeTwiceFails(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, InitializePresale, initPayload(treasuryAddress, "hbd", saleTokenID), ownerAddress, nil)
	require.True(t, res.Reverted)
	assert.Equal(t, ErrAlreadyInitialized, res.Symbol)
}

func TestInitializeValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		symbol  string
	}{
		{"empty treasury", initPayload("", "hbd", saleTokenID), ErrInvalidTreasury},
		{"malformed treasury", initPayload("notanaddress", "hbd", saleTokenID), ErrInvalidTreasury},
		{"unsupported asset", initPayload(treasuryAddress, "doge", saleTokenID), ErrInvalidMint},
		{"empty sale token", initPayload(treasuryAddress, "hbd", ""), ErrInvalidMint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setupPresale()
			res := callContract(t, InitializePresale, tc.payload, ownerAddress, nil)
			require.True(t, res.Reverted, "expected revert, got ret=%q msg=%q", res.Ret, res.Msg)
			assert.Equal(t, tc.symbol, res.Symbol)
			assert.False(t, isInitialized())
		})
	}
}

func TestInitializeRejectsBadTimestamp(t *testing.T) {
	setupPresale()
	sdk.MockEnv.Timestamp = "not-a-timestamp"

	res := callContract(t, InitializePresale, initPayload(treasuryAddress, "hbd", saleTokenID), ownerAddress, nil)
	require.True(t, res.Reverted)
	assert.Equal(t, ErrInvalidTimestamp, res.Symbol)
}

func TestEndPresaleOwnerOnly(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, EndPresale, "", buyerAddress, nil)
	require.True(t, res.Reverted)
	assert.Equal(t, ErrUnauthorized, res.Symbol)
	assert.True(t, loadPresaleState().Active, "state must be untouched after rejected end")
}

func TestEndPresaleIdempotent(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, EndPresale, "", ownerAddress, nil)
	require.False(t, res.Reverted, res.Msg)
	assert.False(t, loadPresaleState().Active)

	// ending an ended sale is a no-op, not an error
	res = callContract(t, EndPresale, "", ownerAddress, nil)
	require.False(t, res.Reverted, res.Msg)
	assert.False(t, loadPresaleState().Active)

	assert.Contains(t, sdk.MockLogs[len(sdk.MockLogs)-1], "pe|own:"+ownerAddress)
}

func TestReactivateRequiresInactive(t *testing.T) {
	setupPresale()
	initPresale(t)

	res := callContract(t, ReactivatePresale, "", ownerAddress, nil)
	require.True(t, res.Reverted)
	assert.Equal(t, ErrPresaleActive, res.Symbol)
}

func TestReactivateOwnerOnly(t *testing.T) {
	setupPresale()
	initPresale(t)
	callContract(t, EndPresale, "", ownerAddress, nil)

	res := callContract(t, ReactivatePresale, "", buyerAddress, nil)
	require.True(t, res.Reverted)
	assert.Equal(t, ErrUnauthorized, res.Symbol)
	assert.False(t, loadPresaleState().Active)
}

func TestReactivateReopensSale(t *testing.T) {
	setupPresale()
	initPresale(t)
	callContract(t, EndPresale, "", ownerAddress, nil)

	// purchases are rejected while ended
	res := callContract(t, BuyTokens, buyPayload(1000), buyerAddress, allowFor(1000*100))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrPresaleInactive, res.Symbol)

	res = callContract(t, ReactivatePresale, "", ownerAddress, nil)
	require.False(t, res.Reverted, res.Msg)
	assert.True(t, loadPresaleState().Active)
	assert.Contains(t, sdk.MockLogs[len(sdk.MockLogs)-1], "pr|own:"+ownerAddress)

	res = callContract(t, BuyTokens, buyPayload(1000), buyerAddress, allowFor(1000*100))
	require.False(t, res.Reverted, res.Msg)
}

func TestOpsBeforeInitialize(t *testing.T) {
	setupPresale()

	for name, op := range map[string]func(*string) *string{
		"end":        EndPresale,
		"reactivate": ReactivatePresale,
		"status":     PresaleGet,
	} {
		res := callContract(t, op, "", ownerAddress, nil)
		require.True(t, res.Reverted, name)
		assert.Equal(t, ErrNotInitialized, res.Symbol, name)
	}

	res := callContract(t, BuyTokens, buyPayload(1), buyerAddress, allowFor(100))
	require.True(t, res.Reverted)
	assert.Equal(t, ErrNotInitialized, res.Symbol)
}

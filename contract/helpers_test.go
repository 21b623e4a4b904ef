package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"scythra_presale/sdk"
)

const (
	ownerAddress    = "hive:scythra"
	buyerAddress    = "hive:someone"
	secondBuyer     = "hive:someoneelse"
	outsiderAddress = "hive:outsider"
	treasuryAddress = "hive:scythra.funds"
	saleTokenID     = "SYTR"
)

// callResult captures how an invocation ended from the substrate's view.
type callResult struct {
	Ret      string
	Reverted bool
	Aborted  bool
	Symbol   string
	Msg      string
}

// callContract invokes an operation the way the substrate would: sender and
// intents installed in the env, and every state write rolled back when the
// invocation aborts or reverts, mirroring atomic all-or-nothing execution.
func callContract(t *testing.T, op func(*string) *string, payload string, sender string, intents []sdk.Intent) callResult {
	t.Helper()
	snap := sdk.TakeMockSnapshot()
	sdk.MockEnv.Sender = sdk.Sender{
		Address:       sdk.Address(sender),
		RequiredAuths: []sdk.Address{sdk.Address(sender)},
	}
	sdk.MockEnv.Intents = intents

	res := callResult{}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			sdk.RestoreMockSnapshot(snap)
			switch e := r.(type) {
			case sdk.RevertError:
				res.Reverted = true
				res.Symbol = e.Symbol
				res.Msg = e.Msg
			case sdk.AbortError:
				res.Aborted = true
				res.Msg = e.Msg
			default:
				panic(r)
			}
		}()
		if ret := op(&payload); ret != nil {
			res.Ret = *ret
		}
	}()
	return res
}

// setupPresale resets the mock host and funds the common buyer accounts.
func setupPresale() {
	sdk.ResetMock()
	sdk.SetMockBalance(sdk.Address(buyerAddress), sdk.AssetHbd, 1_000_000_000)
	sdk.SetMockBalance(sdk.Address(secondBuyer), sdk.AssetHbd, 1_000_000_000)
}

// initPresale runs a default initialize_presale as the owner.
func initPresale(t *testing.T) {
	t.Helper()
	res := callContract(t, InitializePresale, initPayload(treasuryAddress, "hbd", saleTokenID), ownerAddress, nil)
	require.False(t, res.Reverted, "init reverted: %s", res.Msg)
	require.False(t, res.Aborted, "init aborted: %s", res.Msg)
}

// initPayload builds an initialize_presale JSON payload.
func initPayload(treasury, asset, token string) string {
	return fmt.Sprintf(`{"treasury":%q,"payment_asset":%q,"sale_token":%q}`, treasury, asset, token)
}

// buyPayload builds the JSON object form of a buy payload.
func buyPayload(amount uint64) string {
	return fmt.Sprintf(`{"amount":%d}`, amount)
}

// allowIntent builds a transfer.allow intent covering `limit` human units.
func allowIntent(limit string, token string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

// allowFor builds a transfer.allow intent that covers the given cost in
// minor units.
func allowFor(cost uint64) []sdk.Intent {
	return allowIntent(fmt.Sprintf("%d", cost/AmountScale+1), "hbd")
}

package main

import (
	"math"
	"strconv"
	"time"

	"scythra_presale/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Helpers: caller identity, time, payment intents
////////////////////////////////////////////////////////////////////////////////

// getSenderAddress returns the verified identity of the current caller.
func getSenderAddress() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

// nowUnix resolves the block timestamp from the host env. Wall-clock time is
// never consulted; consensus execution must stay deterministic.
func nowUnix() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		// integer seconds first, then the two timestamp shapes hosts emit
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.Unix()
		}
		if t, err := time.Parse("2006-01-02T15:04:05", *tsPtr); err == nil {
			return t.Unix()
		}
	}
	fail(ErrInvalidTimestamp, "block timestamp unavailable")
	return 0
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// getFirstTransferAllow scans the invocation intents and returns the first
// transfer.allow entry, nil when the caller attached none.
func getFirstTransferAllow() *TransferAllow {
	for _, intent := range sdk.GetEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			sdk.Abort("invalid intent limit")
		}
		return &TransferAllow{
			Limit: FloatToAmount(limit),
			Token: sdk.Asset(intent.Args["token"]),
		}
	}
	return nil
}

// requirePaymentAllowance rejects the purchase unless the caller authorized a
// transfer.allow covering the full cost in the sale's payment asset.
func requirePaymentAllowance(asset sdk.Asset, cost int64) {
	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != asset {
		fail(ErrPaymentRejected, "missing transfer.allow intent for "+asset.String())
	}
	if int64(ta.Limit) < cost {
		fail(ErrPaymentRejected, "transfer.allow limit below purchase cost")
	}
}

// paymentAmount narrows the u64 cost into the int64 domain of hive transfers.
func paymentAmount(cost uint64) int64 {
	if cost > math.MaxInt64 {
		fail(ErrMathOverflow, "cost exceeds transferable range")
	}
	return int64(cost)
}

// isValidPaymentAsset checks a token string against the supported assets.
func isValidPaymentAsset(token string) bool {
	for _, a := range validPaymentAssets {
		if token == a {
			return true
		}
	}
	return false
}

// strptr is a tiny helper so we can take a literal string and hand a pointer
// back to the host quickly.
func strptr(s string) *string { return &s }

package main

import (
	"strconv"
	"strings"

	tinyjson "github.com/CosmWasm/tinyjson"

	"scythra_presale/sdk"
)

// decodeInitializeArgs parses the initialize_presale JSON payload.
func decodeInitializeArgs(payload *string) *InitializePresaleArgs {
	raw := unwrapPayload(payload, "initialize payload missing")
	args := &InitializePresaleArgs{}
	if err := tinyjson.Unmarshal([]byte(raw), args); err != nil {
		sdk.Abort("invalid initialize payload: " + err.Error())
	}
	args.Treasury = strings.TrimSpace(args.Treasury)
	args.PaymentAsset = strings.TrimSpace(args.PaymentAsset)
	args.SaleToken = strings.TrimSpace(args.SaleToken)
	return args
}

// decodeBuyArgs accepts either the JSON object form {"amount":n} or bare
// ASCII digits, which is what thin wallet frontends tend to send.
func decodeBuyArgs(payload *string) *BuyTokensArgs {
	raw := unwrapPayload(payload, "buy payload missing")
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return &BuyTokensArgs{Amount: n}
	}
	args := &BuyTokensArgs{}
	if err := tinyjson.Unmarshal([]byte(raw), args); err != nil {
		sdk.Abort("invalid buy payload: " + err.Error())
	}
	return args
}

// decodeAddressArg reads a single address payload (purchase_get).
func decodeAddressArg(payload *string) sdk.Address {
	raw := unwrapPayload(payload, "address payload missing")
	addr := sdk.Address(raw)
	if !addr.IsValid() {
		sdk.Abort("invalid address: " + raw)
	}
	return addr
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

package main

import (
	"fmt"

	"scythra_presale/sdk"
)

// Best-effort notifications for indexers and the sale frontend. Delivery is
// not part of any correctness invariant.

// emitInitializedEvent writes a one-off "pi" line when the sale opens.
func emitInitializedEvent(owner, treasury, paymentAsset, saleToken string, startTime int64) {
	sdk.Log(fmt.Sprintf(
		"pi|own:%s|tr:%s|pa:%s|tk:%s|t:%d",
		owner,
		treasury,
		paymentAsset,
		saleToken,
		startTime,
	))
}

// emitPurchaseEvent logs buyer, amount, cost, tier and unit price so the sale
// can be replayed from logs alone.
func emitPurchaseEvent(buyer string, amount, cost, tier, price uint64) {
	sdk.Log(fmt.Sprintf(
		"buy|by:%s|am:%d|cost:%d|tier:%d|p:%d",
		buyer,
		amount,
		cost,
		tier,
		price,
	))
}

// emitEndedEvent records the final counter when the owner closes the sale.
func emitEndedEvent(owner string, totalSold uint64, endTime int64) {
	sdk.Log(fmt.Sprintf(
		"pe|own:%s|sold:%d|t:%d",
		owner,
		totalSold,
		endTime,
	))
}

// emitReactivatedEvent marks the sale re-opening.
func emitReactivatedEvent(owner string, at int64) {
	sdk.Log(fmt.Sprintf(
		"pr|own:%s|t:%d",
		owner,
		at,
	))
}

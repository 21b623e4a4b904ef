package main

// tierFor returns the tier index the next sold unit falls into.
// Pure step function of totalSold.
func tierFor(totalSold uint64) uint64 {
	return mustDiv(totalSold, TokensPerTier)
}

// priceForTier walks the ladder from tier zero, applying the basis-point
// growth with an integer multiply-then-divide per step. Each step truncates
// independently, so rounding compounds tier by tier; this iterative form is
// the authoritative price definition and is not interchangeable with a
// closed-form power.
func priceForTier(tier uint64) uint64 {
	price := InitialPrice
	for t := uint64(0); t < tier; t++ {
		price = mustDiv(mustMul(price, PriceIncreaseBps), BasisPointsDivisor)
	}
	return price
}

package main

import "math/bits"

// Checked u64 arithmetic for the two counters and the price ladder. Overflow
// is never saturated or wrapped; it reverts the invocation.

// checkedAdd returns a+b and whether it fit into uint64.
func checkedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// checkedMul returns a*b and whether it fit into uint64.
func checkedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// checkedDiv returns a/b, guarding the zero divisor.
func checkedDiv(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// mustAdd reverts with math_overflow instead of wrapping.
func mustAdd(a, b uint64) uint64 {
	v, ok := checkedAdd(a, b)
	if !ok {
		fail(ErrMathOverflow, "math overflow on add")
	}
	return v
}

// mustMul reverts with math_overflow instead of wrapping.
func mustMul(a, b uint64) uint64 {
	v, ok := checkedMul(a, b)
	if !ok {
		fail(ErrMathOverflow, "math overflow on mul")
	}
	return v
}

// mustDiv reverts with math_overflow on a zero divisor.
func mustDiv(a, b uint64) uint64 {
	v, ok := checkedDiv(a, b)
	if !ok {
		fail(ErrMathOverflow, "math overflow on div")
	}
	return v
}

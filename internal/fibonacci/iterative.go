package fibonacci

import "math/big"

// Compute returns F(n), the n-th Fibonacci number, with F(0) = 0 and
// F(1) = 1. Negative indices yield InvalidInput.
//
// The term is built by walking the sequence with two running values, so the
// cost is linear in n. Values are math/big integers and never overflow; an
// extremely large n is bounded only by time and memory.
func Compute(n int64) Result {
	switch {
	case n < 0:
		return NewInvalidInput()
	case n == 0:
		return NewValue(big.NewInt(0))
	case n == 1:
		return NewValue(big.NewInt(1))
	}

	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		// (a, b) = (b, a+b), reusing both allocations.
		a.Add(a, b)
		a, b = b, a
	}
	return Result{value: b, valid: true}
}

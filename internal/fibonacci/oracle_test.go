package fibonacci

import (
	"math/big"
	"math/bits"
	"testing"

	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// fastDoubling computes F(n) independently of Compute using
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func fastDoubling(n uint64) *big.Int {
	fk, fk1 := big.NewInt(0), big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk
}

func TestFastDoublingOracle_KnownValues(t *testing.T) {
	t.Parallel()
	for n, want := range map[uint64]string{0: "0", 1: "1", 2: "1", 10: "55", 40: "102334155"} {
		if got := fastDoubling(n).String(); got != want {
			t.Errorf("fastDoubling(%d) = %s, want %s", n, got, want)
		}
	}
}

// TestCompute_MatchesFastDoubling_PropertyBased cross-checks the iterative
// walk against the doubling identities for indices far beyond the reach of
// the recursive oracle.
func TestCompute_MatchesFastDoubling_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("Compute(n) = fastDoubling(n)", prop.ForAll(
		func(n int64) bool {
			return Compute(n).Value().Cmp(fastDoubling(uint64(n))) == 0
		},
		gen.Int64Range(0, 5000),
	))

	properties.TestingRun(t)
}

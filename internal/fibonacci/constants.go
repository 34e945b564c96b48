package fibonacci

const (
	// DefaultN is the index computed by the fibiter binary.
	DefaultN int64 = 40

	// IterativeName is the display name of IterativeCalculator.
	IterativeName = "Iterative (O(n))"
)

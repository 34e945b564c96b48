//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

package fibonacci

// Calculator defines the contract for computing a Fibonacci term.
// Implementations must be pure: the same n always yields an equal Result,
// and invalid input is reported through the Result, never by panicking.
type Calculator interface {
	// Name returns a display name for the algorithm.
	Name() string
	// Compute returns F(n), or InvalidInput for n < 0.
	Compute(n int64) Result
}

// IterativeCalculator is the Calculator backed by Compute.
type IterativeCalculator struct{}

var _ Calculator = IterativeCalculator{}

// NewCalculator returns the default Calculator.
func NewCalculator() Calculator {
	return IterativeCalculator{}
}

// Name returns IterativeName.
func (IterativeCalculator) Name() string { return IterativeName }

// Compute delegates to the package-level Compute.
func (IterativeCalculator) Compute(n int64) Result { return Compute(n) }

package fibonacci

import "math/big"

// InvalidInputText is the String form of an InvalidInput result.
const InvalidInputText = "Invalid Input"

// Result is the outcome of a Fibonacci computation: either a term of the
// sequence or the InvalidInput marker.
//
// The zero value is InvalidInput, so a Result that was never set cannot be
// mistaken for F(0).
type Result struct {
	value *big.Int
	valid bool
}

// NewValue returns a Result carrying v. The Result keeps its own copy.
func NewValue(v *big.Int) Result {
	if v == nil {
		return Result{}
	}
	return Result{value: new(big.Int).Set(v), valid: true}
}

// NewInvalidInput returns the InvalidInput result.
func NewInvalidInput() Result {
	return Result{}
}

// IsValid reports whether r carries a value.
func (r Result) IsValid() bool { return r.valid }

// Value returns a copy of the term, or nil for InvalidInput.
func (r Result) Value() *big.Int {
	if !r.valid {
		return nil
	}
	return new(big.Int).Set(r.value)
}

// Equal reports whether r and other are the same variant with the same value.
func (r Result) Equal(other Result) bool {
	if r.valid != other.valid {
		return false
	}
	return !r.valid || r.value.Cmp(other.value) == 0
}

// String returns the decimal value, or InvalidInputText.
func (r Result) String() string {
	if !r.valid {
		return InvalidInputText
	}
	return r.value.String()
}

// Package fibonacci computes terms of the Fibonacci sequence.
//
// Compute walks the sequence iteratively and reports negative indices through
// the InvalidInput variant of Result instead of an error. Calculator wraps the
// same contract behind an interface so the driver can be tested with mocks.
package fibonacci

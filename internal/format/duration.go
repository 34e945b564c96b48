// Package format renders values for human-readable output and log fields.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d in the largest unit that keeps it
// readable: microseconds below a millisecond, milliseconds below a second,
// and time.Duration's own form otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"math/big"

	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/ui"
)

// FormatResult returns the result line "fib(<n>) = <value>".
func FormatResult(n int64, value *big.Int) string {
	return fmt.Sprintf("fib(%d) = %s", n, value)
}

// DisplayResult writes the result line for res to out.
//
// An InvalidInput result writes nothing and returns an
// apperrors.ValidationError describing the rejected index.
func DisplayResult(out io.Writer, n int64, res fibonacci.Result) error {
	if !res.IsValid() {
		return apperrors.NewNegativeIndexError(n)
	}
	if _, err := fmt.Fprintln(out, FormatResult(n, res.Value())); err != nil {
		return apperrors.WrapError(err, "failed to write result")
	}
	return nil
}

// DisplayInvalidInput writes a styled diagnostic for a rejected index.
func DisplayInvalidInput(w io.Writer, n int64, err error) {
	styles := ui.NewStyles(w)
	label := styles.Label.Render(fmt.Sprintf("fib(%d)", n))
	fmt.Fprintf(w, "%s %s = %s\n", styles.Error.Render("Error:"), label, fibonacci.InvalidInputText)
	if err != nil {
		fmt.Fprintf(w, "  %s\n", styles.Dim.Render(err.Error()))
	}
}

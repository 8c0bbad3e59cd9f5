package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lumen-lang/lumen/internal/diagnostics"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// stderrIsTerminal caches the isatty probe once, since Fd() lookups hit
// the OS on every call otherwise.
var stderrIsTerminal = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// renderDiagnostic prints a structured error through its own Render(),
// coloring the whole rendered diagnostic red on a real terminal and leaving piped
// output (CI logs, redirected files) as plain text.
func renderDiagnostic(err *diagnostics.Error) {
	out := err.Render()
	if !stderrIsTerminal {
		fmt.Fprintln(os.Stderr, out)
		return
	}
	fmt.Fprintf(os.Stderr, "%s%s%s\n", ansiRed, out, ansiReset)
}

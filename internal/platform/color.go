package platform

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled controls whether ANSI escape codes are emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether color output should be enabled.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY stdout.
func InitColor() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ANSI escape codes
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// apply wraps s with the given ANSI code when color is enabled.
func apply(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

func Yellow(s string) string    { return apply(ansiYellow, s) }
func BoldRed(s string) string   { return apply(ansiBold+ansiRed, s) }
func BoldGreen(s string) string { return apply(ansiBold+ansiGreen, s) }

// PrintOK prints a bold green OK status: "  [OK] msg\n"
func PrintOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", BoldGreen("[OK]"), msg)
}

// PrintFail prints a bold red FAIL status: "  [FAIL] msg\n"
func PrintFail(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", BoldRed("[FAIL]"), msg)
}

// PrintWarn prints a yellow WARN status: "  [WARN] msg\n"
func PrintWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", Yellow("[WARN]"), msg)
}

// PrintInfo prints a plain INFO status: "  [INFO] msg\n"
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  [INFO] %s\n", msg)
}

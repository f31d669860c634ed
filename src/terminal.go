package ppl

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalCapabilities describes what a file descriptor attached to a terminal can do
type TerminalCapabilities struct {
	TermType      string // e.g. "xterm-256color"
	IsTerminal    bool   // true if this is an interactive terminal
	IsRedirected  bool   // true if output is piped or sent to a file
	SupportsColor bool
	Width         int
	Height        int
}

// DetectTerminal inspects f and the environment
func DetectTerminal(f *os.File) *TerminalCapabilities {
	caps := &TerminalCapabilities{
		TermType: os.Getenv("TERM"),
		Width:    80,
		Height:   24,
	}
	if caps.TermType == "" {
		caps.TermType = "unknown"
	}
	if f == nil {
		caps.IsRedirected = true
		return caps
	}

	fd := int(f.Fd())
	caps.IsTerminal = term.IsTerminal(fd)
	caps.IsRedirected = !caps.IsTerminal
	if caps.IsTerminal {
		if width, height, err := term.GetSize(fd); err == nil && width > 0 && height > 0 {
			caps.Width = width
			caps.Height = height
		}
	}
	caps.SupportsColor = caps.IsTerminal && colorAllowed(caps.TermType)
	return caps
}

// colorAllowed checks NO_COLOR (https://no-color.org/) and dumb terminals
func colorAllowed(termType string) bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return strings.ToLower(termType) != "dumb"
}

// WriterSupportsColor reports whether w is a color-capable terminal.
// Writers that are not *os.File (buffers, pipes wrapped by a host) never get color.
func WriterSupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return DetectTerminal(f).SupportsColor
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

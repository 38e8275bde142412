// Package logging sets up the debug logger and the styled progress output.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"specprep/internal/tui/styles"
)

// New returns a debug-level development logger writing to stderr when
// verbose is set, and a no-op logger otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Console prints human-readable progress lines
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Printf writes a formatted line. A trailing newline is added.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Color renders v in the highlight style
func Color(v any) string {
	return styles.Highlight.Render(fmt.Sprint(v))
}

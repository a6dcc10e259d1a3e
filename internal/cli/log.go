// Package cli implements the packgen command-line interface.
//
// The commands load a definitions file, build one 256-bit layout per struct
// and either emit Solidity accessors (gen), report every rule violation
// (check) or print the computed layouts (layout). init writes a starter
// definitions file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context; the core packages never log.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the command logger.
// It writes to w and drops messages below level, so --verbose only has to
// pick the level. Timestamps look like "15:04:05.00", hundredths included.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress remembers when a command started and reports the elapsed time
// once it finishes. A command creates one and calls done once from the
// goroutine that runs it.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing now. Messages go to l at info level.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg followed by the time elapsed since newProgress, rounded to
// the millisecond.
// Example output: "Generated 3 files for 2 structs in sol, 0 unchanged (2ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey types the context values set by this package.
type ctxKey int

// loggerKey holds the *log.Logger built by the root command.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command calls it before any
// subcommand runs; loggerFromContext reads it back.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger.
// Without one, as when a run function is called directly from a test, it
// returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

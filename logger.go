package tsplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled is always false, so callers never
// build the attributes of a record that would be thrown away.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

// silent is the logger in effect until SetLogger installs another one.
var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of every tsplot package to l. The
// command installs a text handler on stderr; library users get no output
// unless they call this. SetLogger(nil) silences logging again.
//
// What gets logged:
//   - [slog.LevelDebug]: each series parsed, each axis fit, downscaling
//   - [slog.LevelInfo]: files loaded, best-fit coefficients and
//     correlation, rendered and saved images
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger. It is safe to call from
// any goroutine and never returns nil.
func Logger() *slog.Logger {
	return current.Load()
}

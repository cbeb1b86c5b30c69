// Package logging adapts github.com/hashicorp/go-hclog to the engine's
// narrow Logger capability (debug/info/error), the way the runner's CLI
// collaborator is expected to wire tracing for a chosen search variant.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/tevian/dpsat/internal/engine"
)

// New builds an engine.Logger backed by an hclog.Logger writing to stderr at
// the given level name (e.g. "debug", "info", "error", "off"). An unknown
// level name falls back to hclog's default (info).
func New(levelName string) engine.Logger {
	return &hclogAdapter{
		l: hclog.New(&hclog.LoggerOptions{
			Name:            "dpsat",
			Level:           hclog.LevelFromString(levelName),
			Output:          os.Stderr,
			IncludeLocation: false,
		}),
	}
}

// Null returns an engine.Logger that discards everything, for benchmarking
// runs where per-rule tracing would dominate wall-time.
func Null() engine.Logger {
	return &hclogAdapter{l: hclog.NewNullLogger()}
}

type hclogAdapter struct {
	l hclog.Logger
}

func (a *hclogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *hclogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *hclogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

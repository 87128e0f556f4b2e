package cli

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/vburojevic/probsheet/internal/config"
)

// CLI is the top-level command tree.
type CLI struct {
	Format  string `help:"Output format: text or ndjson" enum:"text,ndjson" default:"${config_format}"`
	Level   string `help:"Verbose log level" default:"${config_level}"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output"`
	Verbose bool   `short:"v" help:"Enable verbose debug logging"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a raw session export into a problem sheet CSV"`
	Stats   StatsCmd   `cmd:"" help:"Summarize a raw session export without writing a sheet"`
	Schema  SchemaCmd  `cmd:"" help:"Output machine-readable documentation of the sheet format"`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration"`
}

// Globals carries shared state into command Run methods.
type Globals struct {
	Format  string
	Level   string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Clock   clock.Clock

	logger *agentLogger
}

// NewGlobalsWithConfig builds Globals from parsed flags with config fallbacks.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  c.Format,
		Level:   c.Level,
		Quiet:   c.Quiet || cfg.Quiet,
		Verbose: c.Verbose || cfg.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}
	g.logger = newAgentLogger(g)
	return g
}

// Debug logs a verbose diagnostic line when --verbose is set.
func (g *Globals) Debug(format string, args ...interface{}) {
	g.logger.Debug(format, args...)
}

// clock returns the injected clock, falling back to the real one so tests can
// construct Globals literals without wiring every field.
func (g *Globals) clock() clock.Clock {
	if g.Clock == nil {
		return clock.New()
	}
	return g.Clock
}

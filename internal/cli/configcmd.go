package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/probsheet/internal/config"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show path to the loaded config file"`
	Generate ConfigGenerateCmd `cmd:"" help:"Print a sample configuration file"`
}

// ConfigShowCmd shows the effective configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type":    "config",
			"format":  cfg.Format,
			"level":   cfg.Level,
			"quiet":   cfg.Quiet,
			"verbose": cfg.Verbose,
			"defaults": map[string]interface{}{
				"line_ending": cfg.Defaults.LineEnding,
			},
		})
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  level:   %s\n", cfg.Level)
	fmt.Fprintf(globals.Stdout, "  quiet:   %t\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %t\n", cfg.Verbose)
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  line_ending: %s\n", cfg.Defaults.LineEnding)
	return nil
}

// ConfigPathCmd shows which config file is in use
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type": "config_path",
			"path": path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found (using defaults)")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}
	return nil
}

// ConfigGenerateCmd prints a sample config file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	fmt.Fprint(globals.Stdout, `# probsheet configuration file
# Place at ~/.probsheet.yaml or ./probsheet.yaml

format: text
level: default
quiet: false
verbose: false

defaults:
  # Row terminator for the output CSV: native, lf, or crlf
  line_ending: native
`)
	return nil
}

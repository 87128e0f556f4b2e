package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vburojevic/probsheet/internal/extract"
	"github.com/vburojevic/probsheet/internal/sheet"
)

// ConvertCmd converts a raw session export into the normalized problem sheet.
type ConvertCmd struct {
	Input  string `required:"" help:"Path to the raw session data text file" type:"path"`
	Output string `required:"" help:"Path to write the problem sheet CSV" type:"path"`
}

// Run executes the convert command
func (c *ConvertCmd) Run(globals *Globals) error {
	start := globals.clock().Now()

	raw, err := os.ReadFile(c.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return outputError(globals, ExitInputMissing, "INPUT_NOT_FOUND",
				fmt.Sprintf("input file not found: %s", c.Input))
		}
		return outputError(globals, ExitFailure, "INPUT_UNREADABLE", err.Error())
	}

	globals.Debug("extracting session records from %s (%d bytes)", c.Input, len(raw))
	sessions, err := extract.Sessions(string(raw))
	if err != nil {
		return outputError(globals, ExitParseFailed, "PARSE_FAILED",
			fmt.Sprintf("failed to parse session data: %s", err))
	}
	globals.Debug("extracted %d session records", len(sessions))

	rows := sheet.BuildRows(sessions)

	lineEnding := sheet.LineEndingNative
	if globals.Config != nil && globals.Config.Defaults.LineEnding != "" {
		lineEnding = sheet.LineEnding(globals.Config.Defaults.LineEnding)
	}

	if err := sheet.WriteFile(c.Output, rows, lineEnding); err != nil {
		return outputError(globals, ExitFailure, "WRITE_FAILED", err.Error())
	}

	elapsed := globals.clock().Since(start)
	globals.Debug("conversion finished in %s", elapsed)

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type":       "result",
			"rows":       len(rows),
			"sessions":   len(sessions),
			"output":     c.Output,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}

	fmt.Fprintf(globals.Stdout, "Wrote %d rows to %s\n", len(rows), c.Output)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/probsheet/internal/extract"
	"github.com/vburojevic/probsheet/internal/sheet"
)

// StatsCmd summarizes an export without writing the sheet.
type StatsCmd struct {
	Input string `required:"" help:"Path to the raw session data text file" type:"path"`
}

// Run executes the stats command
func (c *StatsCmd) Run(globals *Globals) error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return outputError(globals, ExitInputMissing, "INPUT_NOT_FOUND",
				fmt.Sprintf("input file not found: %s", c.Input))
		}
		return outputError(globals, ExitFailure, "INPUT_UNREADABLE", err.Error())
	}

	sessions, err := extract.Sessions(string(raw))
	if err != nil {
		return outputError(globals, ExitParseFailed, "PARSE_FAILED",
			fmt.Sprintf("failed to parse session data: %s", err))
	}

	sum := sheet.Summarize(sessions)

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":     "stats",
			"sessions": sum.Sessions,
			"problems": sum.Problems,
			"rows":     sum.Rows,
			"skipped":  sum.Skipped,
		}
		perOp := map[string]int{}
		for _, op := range sheet.OperationOrder {
			perOp[string(op)] = sum.PerOperation[op]
		}
		out["per_operation"] = perOp
		return json.NewEncoder(globals.Stdout).Encode(out)
	}

	fmt.Fprintf(globals.Stdout, "Sessions: %d\n", sum.Sessions)
	fmt.Fprintf(globals.Stdout, "Problems: %d\n", sum.Problems)
	fmt.Fprintf(globals.Stdout, "Rows:     %d\n", sum.Rows)
	fmt.Fprintf(globals.Stdout, "Skipped:  %d\n", sum.Skipped)

	if isTerminal(globals.Stdout) {
		table := tablewriter.NewTable(globals.Stdout)
		table.Header([]string{"Operation", "Rows"})
		for _, op := range sheet.OperationOrder {
			table.Append([]string{string(op), strconv.Itoa(sum.PerOperation[op])})
		}
		return table.Render()
	}

	// Plain lines parse better when output is piped.
	for _, op := range sheet.OperationOrder {
		fmt.Fprintf(globals.Stdout, "%s: %d\n", op, sum.PerOperation[op])
	}
	return nil
}

func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInputMissing = 2
	ExitParseFailed  = 3
)

// ExitError carries a process exit code through kong's Run dispatch so main
// can map failures to the documented codes.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// outputError normalizes error emission across commands, respecting ndjson vs
// text formats so machine consumers always get machine-readable failures.
func outputError(globals *Globals, exitCode int, code, message string) error {
	if globals != nil {
		if globals.Format == "ndjson" {
			json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
				"type":    "error",
				"code":    code,
				"message": message,
			})
		} else {
			fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
		}
	}
	return &ExitError{Code: exitCode, Err: errors.New(message)}
}

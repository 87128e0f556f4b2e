package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// LineEnding selects the row terminator written to the output file.
type LineEnding string

const (
	LineEndingNative LineEnding = "native" // CRLF on Windows, LF elsewhere
	LineEndingLF     LineEnding = "lf"
	LineEndingCRLF   LineEnding = "crlf"
)

func (le LineEnding) useCRLF() bool {
	switch le {
	case LineEndingCRLF:
		return true
	case LineEndingLF:
		return false
	default:
		return runtime.GOOS == "windows"
	}
}

// WriteFile writes the problem sheet (header plus rows) to path as CSV,
// creating parent directories as needed.
func WriteFile(path string, rows []Row, lineEnding LineEnding) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = lineEnding.useCRLF()

	if err := w.Write(Header); err != nil {
		f.Close()
		return err
	}
	for _, r := range rows {
		if err := w.Write(r.Record()); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

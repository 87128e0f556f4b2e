package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vburojevic/probsheet/internal/domain"
)

// SessionHeader is the literal column header the export writes once at the
// top of the file. Everything before it is noise.
const SessionHeader = "Timestamp,ClientId,URL,Duration,Score,ProblemsJson,Mode,MappedDuration,Score_120"

// recordDelimiter separates session records in the export.
const recordDelimiter = "<>"

// ErrHeaderNotFound is returned when the input contains no session header.
var ErrHeaderNotFound = errors.New("session header not found in input")

// Sessions extracts session records from raw export text.
//
// The export is non-standard: one header line, then records separated by "<>".
// Each record is 5 leading CSV fields, a JSON array (ProblemsJson), then up to
// 3 trailing fields. Structurally broken records (no bracket pair, short
// prefix) are skipped; a ProblemsJson that fails to decode aborts the whole
// run since nothing downstream can safely interpret a corrupt export.
func Sessions(raw string) ([]domain.SessionRecord, error) {
	// Mixed line endings corrupt field values, so strip carriage returns up front.
	text := strings.ReplaceAll(raw, "\r", "")

	idx := strings.Index(text, SessionHeader)
	if idx == -1 {
		return nil, ErrHeaderNotFound
	}
	text = text[idx+len(SessionHeader):]

	var sessions []domain.SessionRecord
	for _, chunk := range strings.Split(text, recordDelimiter) {
		rec := strings.TrimSpace(chunk)
		if rec == "" {
			continue
		}
		// A spurious split can surface the header again; treat it as noise.
		if strings.HasPrefix(rec, SessionHeader) {
			continue
		}

		// Bound the embedded JSON array by the first "[" and the last "]".
		// This tolerates brackets outside the JSON region but mis-bounds if a
		// scalar field ever contains one; the export never does.
		lb := strings.Index(rec, "[")
		rb := strings.LastIndex(rec, "]")
		if lb == -1 || rb == -1 || rb < lb {
			// Likely a fragment from a split inside a field.
			continue
		}

		prefix := strings.TrimRight(rec[:lb], ", ")
		suffix := strings.TrimLeft(rec[rb+1:], ", ")

		// Prefix carries Timestamp,ClientId,URL,Duration,Score.
		prefixFields := strings.Split(prefix, ",")
		for i, f := range prefixFields {
			prefixFields[i] = strings.TrimSpace(f)
		}
		if len(prefixFields) < 5 {
			continue
		}

		var problems []domain.ProblemEntry
		if err := json.Unmarshal([]byte(rec[lb:rb+1]), &problems); err != nil {
			return nil, fmt.Errorf("decoding ProblemsJson: %w", err)
		}

		// Suffix carries Mode,MappedDuration,Score_120; records may end
		// abruptly, so drop empty fields and pad the tail.
		suffixFields := make([]string, 0, 3)
		for _, f := range strings.Split(suffix, ",") {
			if f = strings.TrimSpace(f); f != "" {
				suffixFields = append(suffixFields, f)
			}
		}
		for len(suffixFields) < 3 {
			suffixFields = append(suffixFields, "")
		}

		sessions = append(sessions, domain.SessionRecord{
			Timestamp:      prefixFields[0],
			ClientID:       prefixFields[1],
			URL:            prefixFields[2],
			Duration:       optionalInt(prefixFields[3]),
			Score:          optionalInt(prefixFields[4]),
			Problems:       problems,
			Mode:           suffixFields[0],
			MappedDuration: optionalInt(suffixFields[1]),
			Score120:       optionalInt(suffixFields[2]),
		})
	}

	return sessions, nil
}

// optionalInt coerces a raw field to an integer, yielding nil (never an
// error) for empty or non-numeric values.
func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

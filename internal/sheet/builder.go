package sheet

import (
	"strconv"

	"github.com/vburojevic/probsheet/internal/domain"
)

// Header is the fixed column header of the problem sheet.
var Header = []string{
	"Timestamp",
	"ClientId",
	"Operation",
	"a",
	"b",
	"c",
	"Duration",
	"Score",
	"Mode",
	"MappedDuration",
	"URL",
	"ProblemIndex",
}

// Row is one normalized problem-sheet row.
type Row struct {
	Timestamp      string
	ClientID       string
	Operation      domain.Operation
	A              int
	B              int
	Duration       *int
	Score          *int
	Mode           string
	MappedDuration *int
	URL            string
	ProblemIndex   int
}

// Record returns the row as CSV fields in Header order. The c column is
// reserved for non-binary operations and stays empty.
func (r Row) Record() []string {
	return []string{
		r.Timestamp,
		r.ClientID,
		string(r.Operation),
		strconv.Itoa(r.A),
		strconv.Itoa(r.B),
		"",
		optionalString(r.Duration),
		optionalString(r.Score),
		r.Mode,
		optionalString(r.MappedDuration),
		r.URL,
		strconv.Itoa(r.ProblemIndex),
	}
}

// BuildRows expands every session's problems into sheet rows in (session,
// problem) order. ProblemIndex is the 1-based position within the session's
// original problem list; dropped problems leave gaps rather than shifting the
// indices of surviving rows.
func BuildRows(sessions []domain.SessionRecord) []Row {
	var rows []Row
	for _, s := range sessions {
		for i, p := range s.Problems {
			res, ok := domain.Resolve(p.Question, p.OperationType)
			if !ok {
				continue
			}
			rows = append(rows, Row{
				Timestamp:      s.Timestamp,
				ClientID:       s.ClientID,
				Operation:      res.Operation,
				A:              res.A,
				B:              res.B,
				Duration:       s.Duration,
				Score:          s.Score,
				Mode:           s.Mode,
				MappedDuration: s.MappedDuration,
				URL:            s.URL,
				ProblemIndex:   i + 1,
			})
		}
	}
	return rows
}

func optionalString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

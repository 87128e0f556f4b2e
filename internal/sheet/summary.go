package sheet

import (
	"github.com/samber/lo"

	"github.com/vburojevic/probsheet/internal/domain"
)

// Summary aggregates what a conversion of the given sessions would produce.
type Summary struct {
	Sessions     int                      `json:"sessions"`
	Problems     int                      `json:"problems"`
	Rows         int                      `json:"rows"`
	Skipped      int                      `json:"skipped"`
	PerOperation map[domain.Operation]int `json:"per_operation"`
}

// OperationOrder is the stable display order for per-operation counts.
var OperationOrder = []domain.Operation{
	domain.OperationAdd,
	domain.OperationSub,
	domain.OperationMul,
	domain.OperationDiv,
}

// Summarize counts sessions, problems, and retained rows per operation.
func Summarize(sessions []domain.SessionRecord) Summary {
	rows := BuildRows(sessions)
	problems := lo.SumBy(sessions, func(s domain.SessionRecord) int { return len(s.Problems) })

	return Summary{
		Sessions: len(sessions),
		Problems: problems,
		Rows:     len(rows),
		Skipped:  problems - len(rows),
		PerOperation: lo.CountValuesBy(rows, func(r Row) domain.Operation {
			return r.Operation
		}),
	}
}

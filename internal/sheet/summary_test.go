package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/probsheet/internal/domain"
)

func TestSummarize(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(
			domain.ProblemEntry{Question: "1 + 2", OperationType: "addition"},
			domain.ProblemEntry{Question: "6 ÷ 3", OperationType: "division"},
			domain.ProblemEntry{Question: "5 + 5", OperationType: "unknown"},
		),
		sampleSession(domain.ProblemEntry{Question: "4 × 4", OperationType: ""}),
	}

	sum := Summarize(sessions)
	assert.Equal(t, 2, sum.Sessions)
	assert.Equal(t, 4, sum.Problems)
	assert.Equal(t, 3, sum.Rows)
	assert.Equal(t, 1, sum.Skipped)

	require.NotNil(t, sum.PerOperation)
	assert.Equal(t, 1, sum.PerOperation[domain.OperationAdd])
	assert.Equal(t, 1, sum.PerOperation[domain.OperationDiv])
	assert.Equal(t, 1, sum.PerOperation[domain.OperationMul])
	assert.Zero(t, sum.PerOperation[domain.OperationSub])
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Sessions)
	assert.Zero(t, sum.Problems)
	assert.Zero(t, sum.Rows)
	assert.Zero(t, sum.Skipped)
}

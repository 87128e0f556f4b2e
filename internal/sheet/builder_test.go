package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/probsheet/internal/domain"
)

func intPtr(n int) *int { return &n }

func sampleSession(problems ...domain.ProblemEntry) domain.SessionRecord {
	return domain.SessionRecord{
		Timestamp:      "2024-01-02T10:00:00Z",
		ClientID:       "client-1",
		URL:            "https://example.com/quiz",
		Duration:       intPtr(63),
		Score:          intPtr(12),
		Problems:       problems,
		Mode:           "practice",
		MappedDuration: intPtr(60),
		Score120:       intPtr(118),
	}
}

func TestBuildRowsRoundTrip(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(domain.ProblemEntry{Question: "30 + 93", OperationType: "addition"}),
	}

	rows := BuildRows(sessions)
	require.Len(t, rows, 1)

	record := rows[0].Record()
	require.Len(t, record, len(Header))
	assert.Equal(t, []string{
		"2024-01-02T10:00:00Z",
		"client-1",
		"add",
		"30",
		"93",
		"",
		"63",
		"12",
		"practice",
		"60",
		"https://example.com/quiz",
		"1",
	}, record)
}

func TestBuildRowsIndexPreservation(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(
			domain.ProblemEntry{Question: "1 + 2", OperationType: "addition"},
			domain.ProblemEntry{Question: "final-missed-3", OperationType: "addition"},
			domain.ProblemEntry{Question: "4 + 5", OperationType: "addition"},
		),
	}

	rows := BuildRows(sessions)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ProblemIndex)
	assert.Equal(t, 3, rows[1].ProblemIndex, "skipped problems leave index gaps")
}

func TestBuildRowsSkipRules(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(
			domain.ProblemEntry{Question: "5 + 5", OperationType: "unknown"},
			domain.ProblemEntry{Question: "not parseable", OperationType: "subtraction"},
			domain.ProblemEntry{Question: "final-missed-1"},
		),
	}

	rows := BuildRows(sessions)
	assert.Empty(t, rows)
}

func TestBuildRowsNilNumericFieldsEmitEmpty(t *testing.T) {
	s := sampleSession(domain.ProblemEntry{Question: "6 ÷ 2", OperationType: ""})
	s.Duration = nil
	s.Score = nil
	s.MappedDuration = nil

	rows := BuildRows([]domain.SessionRecord{s})
	require.Len(t, rows, 1)
	assert.Equal(t, domain.OperationDiv, rows[0].Operation)

	record := rows[0].Record()
	assert.Equal(t, "", record[6], "Duration")
	assert.Equal(t, "", record[7], "Score")
	assert.Equal(t, "", record[9], "MappedDuration")
}

func TestBuildRowsEmptyProblems(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(),
		sampleSession(domain.ProblemEntry{Question: "7 - 3", OperationType: "subtraction"}),
	}

	rows := BuildRows(sessions)
	require.Len(t, rows, 1, "empty session contributes nothing and does not affect others")
	assert.Equal(t, domain.OperationSub, rows[0].Operation)
}

func TestBuildRowsOrderingIsStable(t *testing.T) {
	sessions := []domain.SessionRecord{
		sampleSession(
			domain.ProblemEntry{Question: "1 + 1", OperationType: "addition"},
			domain.ProblemEntry{Question: "2 + 2", OperationType: "addition"},
		),
		sampleSession(domain.ProblemEntry{Question: "3 + 3", OperationType: "addition"}),
	}

	first := BuildRows(sessions)
	second := BuildRows(sessions)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first[0].A)
	assert.Equal(t, 2, first[1].A)
	assert.Equal(t, 3, first[2].A)
}

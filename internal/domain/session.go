package domain

// SessionRecord is one practice session recovered from the raw export.
// Numeric fields are pointers so a non-numeric or missing source value is
// carried as nil rather than zero. Every field is populated (with nil/empty
// defaults) even when the source record was truncated.
type SessionRecord struct {
	Timestamp      string
	ClientID       string
	URL            string
	Duration       *int
	Score          *int
	Problems       []ProblemEntry
	Mode           string
	MappedDuration *int
	Score120       *int
}

// ProblemEntry is one element of a session's ProblemsJson array. The source
// objects carry more fields than these; only the two used for operation
// recovery are decoded.
type ProblemEntry struct {
	Question      string `json:"question"`
	OperationType string `json:"operationType"`
}

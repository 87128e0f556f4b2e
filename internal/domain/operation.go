package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Operation is the canonical name of a binary arithmetic operation.
type Operation string

const (
	OperationAdd Operation = "add"
	OperationSub Operation = "sub"
	OperationMul Operation = "mul"
	OperationDiv Operation = "div"
)

// questionRE matches arithmetic questions like "30 + 93", "2 × 60", "588 ÷ 7".
// The whole string must match; partial expressions are rejected.
var questionRE = regexp.MustCompile(`^\s*(\d+)\s*([+\-−×xX*÷/])\s*(\d+)\s*$`)

// symbolOperations maps operator symbols found in question text to operations.
var symbolOperations = map[string]Operation{
	"+": OperationAdd,
	"-": OperationSub,
	"−": OperationSub, // unicode minus
	"×": OperationMul,
	"x": OperationMul,
	"X": OperationMul,
	"*": OperationMul,
	"÷": OperationDiv,
	"/": OperationDiv,
}

// typeOperations maps the categorical operationType tag to operations.
var typeOperations = map[string]Operation{
	"addition":       OperationAdd,
	"subtraction":    OperationSub,
	"multiplication": OperationMul,
	"division":       OperationDiv,
}

// operationTypeUnknown tags placeholder problems with no real content.
const operationTypeUnknown = "unknown"

// syntheticQuestionPrefix marks synthetic review entries injected by the quiz
// app; they carry no arithmetic content.
const syntheticQuestionPrefix = "final-missed-"

// ParseQuestion parses question text like "30 + 93" into its operation and
// operands. ok is false when the text is not a single binary expression.
func ParseQuestion(question string) (op Operation, a, b int, ok bool) {
	m := questionRE.FindStringSubmatch(question)
	if m == nil {
		return "", 0, 0, false
	}
	op, ok = symbolOperations[m[2]]
	if !ok {
		return "", 0, 0, false
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return "", 0, 0, false
	}
	b, err = strconv.Atoi(m[3])
	if err != nil {
		return "", 0, 0, false
	}
	return op, a, b, true
}

// OperationFromType maps a categorical operationType tag to an operation.
// Unrecognized tags (including empty) yield ok=false.
func OperationFromType(tag string) (Operation, bool) {
	op, ok := typeOperations[tag]
	return op, ok
}

// Resolved is the outcome of recovering a problem's arithmetic content.
type Resolved struct {
	Operation Operation
	A         int
	B         int
}

// Resolve recovers the operation and operands of a problem from its two
// sources of truth: the categorical operationType tag and the free-text
// question. The tag takes precedence for the operation name, with the symbol
// parsed from the question as fallback. Operands only ever come from the
// question text, so an unparseable question drops the entry regardless of the
// tag. Placeholder entries (operationType "unknown" or a synthetic question
// prefix) are dropped as well. ok is false for every dropped entry.
func Resolve(question, operationType string) (Resolved, bool) {
	if operationType == operationTypeUnknown || strings.HasPrefix(question, syntheticQuestionPrefix) {
		return Resolved{}, false
	}

	symOp, a, b, parsed := ParseQuestion(question)
	if !parsed {
		return Resolved{}, false
	}

	op, ok := OperationFromType(operationType)
	if !ok {
		op = symOp
	}

	return Resolved{Operation: op, A: a, B: b}, true
}

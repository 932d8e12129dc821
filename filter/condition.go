package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownOperator is returned when a condition carries an operator
	// that is not one of the Op constants.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrValueType is returned when a condition value cannot be compared
	// with the column it targets.
	ErrValueType = errors.New("incompatible value type")

	// ErrBadCondition is returned when a condition string cannot be parsed.
	ErrBadCondition = errors.New("malformed condition")
)

// Operator identifies a comparison.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpNotEquals      Operator = "not_equals"
	OpGreaterThan    Operator = "greater_than"
	OpGreaterOrEqual Operator = "greater_or_equal"
	OpLessThan       Operator = "less_than"
	OpLessOrEqual    Operator = "less_or_equal"
	OpContains       Operator = "contains"
)

// Condition is one column comparison. Value may be a Go number, string,
// bool or time.Time; it is coerced to the column kind when applied.
type Condition struct {
	Column string
	Op     Operator
	Value  interface{}
}

// String renders the condition in the compact form ParseCondition accepts.
func (c Condition) String() string {
	return fmt.Sprintf("%s %s %v", c.Column, c.Op, c.Value)
}

// operatorSpellings maps accepted operator tokens, symbolic and named, to
// canonical operators.
var operatorSpellings = map[string]Operator{
	"=":                OpEquals,
	"==":               OpEquals,
	"equals":           OpEquals,
	"!=":               OpNotEquals,
	"<>":               OpNotEquals,
	"not_equals":       OpNotEquals,
	">":                OpGreaterThan,
	"greater_than":     OpGreaterThan,
	">=":               OpGreaterOrEqual,
	"greater_or_equal": OpGreaterOrEqual,
	"<":                OpLessThan,
	"less_than":        OpLessThan,
	"<=":               OpLessOrEqual,
	"less_or_equal":    OpLessOrEqual,
	"~":                OpContains,
	"contains":         OpContains,
}

// knownOperator reports whether op is one of the Op constants.
func knownOperator(op Operator) bool {
	switch op {
	case OpEquals, OpNotEquals, OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual, OpContains:
		return true
	default:
		return false
	}
}

// ParseCondition parses a compact condition string of the form
//
//	<column> <operator> <value>
//
// The operator may be symbolic (=, ==, !=, <>, >, >=, <, <=, ~) or named
// (equals, not_equals, greater_than, greater_or_equal, less_than,
// less_or_equal, contains). Unquoted values are typed as bool, number or
// text in that order; single- or double-quoted values are always text.
// Column names containing spaces are not supported here.
func ParseCondition(input string) (Condition, error) {
	rest := strings.TrimSpace(input)
	if rest == "" {
		return Condition{}, fmt.Errorf("%w: empty condition", ErrBadCondition)
	}

	column, rest := scanToken(rest)
	if column == "" {
		return Condition{}, fmt.Errorf("%w: missing column in %q", ErrBadCondition, input)
	}

	opToken, rest := scanToken(rest)
	if opToken == "" {
		return Condition{}, fmt.Errorf("%w: missing operator in %q", ErrBadCondition, input)
	}
	op, ok := operatorSpellings[strings.ToLower(opToken)]
	if !ok {
		return Condition{}, fmt.Errorf("%w: %q", ErrUnknownOperator, opToken)
	}

	value, err := parseValue(strings.TrimSpace(rest))
	if err != nil {
		return Condition{}, fmt.Errorf("%w: %v in %q", ErrBadCondition, err, input)
	}

	return Condition{Column: column, Op: op, Value: value}, nil
}

// symbolic operator characters that terminate an unquoted token, so
// "age>30" parses the same as "age > 30".
const operatorChars = "=!<>~"

// scanToken returns the next token and the remaining input. A token ends at
// whitespace or at the boundary between operator and non-operator
// characters.
func scanToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}

	inOperator := strings.ContainsRune(operatorChars, rune(s[0]))
	end := len(s)
	for i, r := range s {
		if r == ' ' || r == '\t' {
			end = i
			break
		}
		if strings.ContainsRune(operatorChars, r) != inOperator {
			end = i
			break
		}
	}
	return s[:end], s[end:]
}

// parseValue types an unquoted value as bool, number or text; quoted values
// are always text.
func parseValue(s string) (interface{}, error) {
	if s == "" {
		return nil, errors.New("missing value")
	}

	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], nil
		}
	}

	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	return s, nil
}

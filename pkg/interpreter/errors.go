package interpreter

import "fmt"

// Evaluation errors. Parsing errors are parser.SyntaxError; together
// the two sets cover every way a line can fail. Any of them aborts the
// current line only — the REPL reports the message and keeps going.

// UnboundIdentifierError reports an identifier lookup miss.
type UnboundIdentifierError struct {
	Name string
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// TypeMismatchError reports an operation applied to a value of the
// wrong kind, or a relational operator the evaluator does not accept.
type TypeMismatchError struct {
	Msg string
}

func (e *TypeMismatchError) Error() string { return e.Msg }

func typeMismatchf(format string, args ...interface{}) *TypeMismatchError {
	return &TypeMismatchError{Msg: fmt.Sprintf(format, args...)}
}

// DivisionByZeroError reports integer division by zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "division by zero" }

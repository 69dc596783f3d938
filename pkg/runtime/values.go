package runtime

import (
	"fmt"
	"strconv"

	"dopcalc/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. String is the
// display form the REPL prints.
type Value interface {
	Kind() Kind
	String() string
}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

// FunctionValue pairs a function literal with the environment in effect
// at its definition site. Closure is shared by reference and never
// mutated after creation, so later bindings in the captured environment
// remain visible to the function body.
type FunctionValue struct {
	Parameter string
	Body      ast.Expression
	Closure   *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) String() string {
	return fmt.Sprintf("func (%s) { ... }", v.Parameter)
}

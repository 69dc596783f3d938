// Package interpreter evaluates expression trees against a mutable
// variable environment.
package interpreter

import (
	"fmt"

	"dopcalc/interpreter-go/pkg/ast"
	"dopcalc/interpreter-go/pkg/parser"
	"dopcalc/interpreter-go/pkg/runtime"
	"dopcalc/interpreter-go/pkg/scanner"
)

// Interpreter drives evaluation of calculator expressions. The global
// environment persists across lines, so bindings made in one REPL
// iteration are visible in later ones.
type Interpreter struct {
	global *runtime.Environment
	sc     *scanner.Scanner
}

// New returns an interpreter with an empty global environment.
func New() *Interpreter {
	return &Interpreter{
		global: runtime.NewEnvironment(nil),
		sc:     scanner.New(),
	}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateLine parses one line of text and evaluates it against the
// global environment. A failed line leaves earlier side effects in
// place; nothing is rolled back.
func (i *Interpreter) EvaluateLine(line string) (runtime.Value, error) {
	i.sc.SetInput(line)
	exp, err := parser.ParseLine(i.sc)
	if err != nil {
		return nil, err
	}
	return i.Evaluate(exp, i.global)
}

// Evaluate walks one expression node and produces its value.
func (i *Interpreter) Evaluate(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.Identifier:
		val, ok := env.Get(n.Name)
		if !ok {
			return nil, &UnboundIdentifierError{Name: n.Name}
		}
		return val, nil
	case *ast.BinaryOp:
		return i.evaluateBinaryOp(n, env)
	case *ast.Call:
		return i.evaluateCall(n, env)
	case *ast.FunctionLiteral:
		return &runtime.FunctionValue{Parameter: n.Parameter, Body: n.Body, Closure: env}, nil
	case *ast.Conditional:
		return i.evaluateConditional(n, env)
	default:
		return nil, fmt.Errorf("unsupported node type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateBinaryOp(expr *ast.BinaryOp, env *runtime.Environment) (runtime.Value, error) {
	if expr.Operator == "=" {
		return i.evaluateAssignment(expr, env)
	}

	leftVal, err := i.Evaluate(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.Evaluate(expr.Right, env)
	if err != nil {
		return nil, err
	}
	lhs, err := integerOperand("left", leftVal)
	if err != nil {
		return nil, err
	}
	rhs, err := integerOperand("right", rightVal)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "+":
		return runtime.IntegerValue{Val: lhs + rhs}, nil
	case "-":
		return runtime.IntegerValue{Val: lhs - rhs}, nil
	case "*":
		return runtime.IntegerValue{Val: lhs * rhs}, nil
	case "/":
		if rhs == 0 {
			return nil, &DivisionByZeroError{}
		}
		return runtime.IntegerValue{Val: lhs / rhs}, nil
	default:
		return nil, typeMismatchf("unsupported binary operator %q", expr.Operator)
	}
}

// evaluateAssignment binds the right-hand value in the environment the
// evaluation runs in and returns that value. The right side is
// evaluated first, so a later failure in the same line leaves the
// binding in place.
func (i *Interpreter) evaluateAssignment(expr *ast.BinaryOp, env *runtime.Environment) (runtime.Value, error) {
	target, ok := expr.Left.(*ast.Identifier)
	if !ok {
		return nil, typeMismatchf("assignment target must be an identifier, got %s", expr.Left.NodeType())
	}
	val, err := i.Evaluate(expr.Right, env)
	if err != nil {
		return nil, err
	}
	env.Define(target.Name, val)
	return val, nil
}

// evaluateCall applies a function value to one argument. The argument
// is evaluated in the caller's environment; the body runs in a child
// frame of the function's captured environment, so the caller's local
// bindings stay isolated from the callee (lexical scoping).
func (i *Interpreter) evaluateCall(call *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	calleeVal, err := i.Evaluate(call.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*runtime.FunctionValue)
	if !ok {
		return nil, typeMismatchf("calling non-function value of kind %s", calleeVal.Kind())
	}

	argVal, err := i.Evaluate(call.Argument, env)
	if err != nil {
		return nil, err
	}

	local := fn.Closure.Extend()
	local.Define(fn.Parameter, argVal)
	return i.Evaluate(fn.Body, local)
}

// relations accepted in conditionals. The parser records the token
// verbatim; anything outside this set fails here.
var relations = map[string]func(l, r int64) bool{
	"<":  func(l, r int64) bool { return l < r },
	">":  func(l, r int64) bool { return l > r },
	"<=": func(l, r int64) bool { return l <= r },
	">=": func(l, r int64) bool { return l >= r },
	"==": func(l, r int64) bool { return l == r },
	"!=": func(l, r int64) bool { return l != r },
}

// evaluateConditional compares two integer operands and evaluates only
// the taken branch.
func (i *Interpreter) evaluateConditional(cond *ast.Conditional, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.Evaluate(cond.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.Evaluate(cond.Right, env)
	if err != nil {
		return nil, err
	}
	lhs, err := integerOperand("left", leftVal)
	if err != nil {
		return nil, err
	}
	rhs, err := integerOperand("right", rightVal)
	if err != nil {
		return nil, err
	}

	relate, ok := relations[cond.Relation]
	if !ok {
		return nil, typeMismatchf("unknown relational operator %q", cond.Relation)
	}
	if relate(lhs, rhs) {
		return i.Evaluate(cond.Then, env)
	}
	return i.Evaluate(cond.Else, env)
}

func integerOperand(side string, val runtime.Value) (int64, error) {
	iv, ok := val.(runtime.IntegerValue)
	if !ok {
		return 0, typeMismatchf("%s operand must be an integer, got %s", side, val.Kind())
	}
	return iv.Val, nil
}

// Package parser turns one line of tokens into a single expression tree
// using conventional operator precedence.
//
// Each precedence level obtains its left operand from the next-higher
// level and then, when the lookahead matches an operator of its own
// level, recurses into itself (not the level below) for the right-hand
// side. Binary chains therefore group to the right: `20 - 8 - 2` parses
// as `20 - (8 - 2)`. This grouping is part of the language's observable
// behaviour and must not be "fixed" to the conventional left
// associativity.
package parser

import (
	"fmt"
	"strconv"
	"unicode"

	"dopcalc/interpreter-go/pkg/ast"
	"dopcalc/interpreter-go/pkg/scanner"
)

// CommandPrefix marks a line as a command rather than an expression.
const CommandPrefix = ':'

// SyntaxError reports a malformed token sequence.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// ParseLine reads one complete expression or command from the scanner.
// Expression lines fail when tokens remain after a structurally complete
// expression; command lines consume only what the command needs.
func ParseLine(sc *scanner.Scanner) (ast.Expression, error) {
	command := checkCommandToken(sc)
	if command != "" {
		return parseCommand(sc, command)
	}

	exp, err := parseAssignment(sc)
	if err != nil {
		return nil, err
	}
	if sc.More() {
		return nil, syntaxErrorf("unexpected trailing token %q", sc.Read())
	}
	return exp, nil
}

// checkCommandToken consumes the leading token when it begins with the
// command prefix; otherwise the token is pushed back and the line is
// parsed as an expression.
func checkCommandToken(sc *scanner.Scanner) string {
	token := sc.Read()
	if token == scanner.EOF {
		return ""
	}
	if token[0] != CommandPrefix {
		sc.Save(token)
		return ""
	}
	return token
}

// parseCommand handles `:`-prefixed lines.
//
//	:define <id> <op> <expr>  assignment, equivalent to `id = expr`
//	:load                     reserved for file loading; placeholder today
//	:<anything>               echoed back as an identifier
func parseCommand(sc *scanner.Scanner, command string) (ast.Expression, error) {
	switch command {
	case ":define":
		id := sc.Read()
		if id == scanner.EOF {
			return nil, syntaxErrorf(":define requires an identifier")
		}
		op := sc.Read()
		if op == scanner.EOF {
			return nil, syntaxErrorf(":define requires an assignment operator")
		}
		val, err := parseAssignment(sc)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(op, ast.NewIdentifier(id), val), nil
	case ":load":
		// TODO: read definitions from the named file once program
		// loading is in scope.
		return ast.NewIdentifier(":load"), nil
	default:
		return ast.NewIdentifier(command), nil
	}
}

// parseAssignment handles the lowest precedence level,
// A -> E ('=' A)?.
func parseAssignment(sc *scanner.Scanner) (ast.Expression, error) {
	exp, err := parseExpression(sc)
	if err != nil {
		return nil, err
	}

	token := sc.Read()
	if token == "=" {
		rhs, err := parseAssignment(sc)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(token, exp, rhs), nil
	}
	sc.Save(token)
	return exp, nil
}

// parseExpression handles E -> T (('+'|'-') E)?.
func parseExpression(sc *scanner.Scanner) (ast.Expression, error) {
	exp, err := parseTerm(sc)
	if err != nil {
		return nil, err
	}

	token := sc.Read()
	if token == "+" || token == "-" {
		rhs, err := parseExpression(sc)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(token, exp, rhs), nil
	}
	sc.Save(token)
	return exp, nil
}

// parseTerm handles T -> C (('*'|'/') T)?.
func parseTerm(sc *scanner.Scanner) (ast.Expression, error) {
	exp, err := parseCall(sc)
	if err != nil {
		return nil, err
	}

	token := sc.Read()
	if token == "*" || token == "/" {
		rhs, err := parseTerm(sc)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(token, exp, rhs), nil
	}
	sc.Save(token)
	return exp, nil
}

// parseCall handles C -> F ('(' A ')')?. A factor immediately followed
// by an open paren becomes the callee of a one-argument call.
func parseCall(sc *scanner.Scanner) (ast.Expression, error) {
	exp, err := parseFactor(sc)
	if err != nil {
		return nil, err
	}

	token := sc.Read()
	if token == "(" {
		arg, err := parseAssignment(sc)
		if err != nil {
			return nil, err
		}
		sc.Read() // closing token, not validated
		return ast.NewCall(exp, arg), nil
	}
	sc.Save(token)
	return exp, nil
}

// parseFactor handles the atomic terms,
// F -> integer | identifier | '(' A ')' | func literal | conditional.
func parseFactor(sc *scanner.Scanner) (ast.Expression, error) {
	token := sc.Read()
	if token == scanner.EOF {
		return nil, syntaxErrorf("unexpected end of expression")
	}

	switch {
	case token == "(":
		exp, err := parseAssignment(sc)
		if err != nil {
			return nil, err
		}
		sc.Read() // closing token, not validated
		return exp, nil
	case unicode.IsDigit(rune(token[0])):
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, syntaxErrorf("malformed integer literal %q", token)
		}
		return ast.NewIntegerLiteral(n), nil
	case unicode.IsLetter(rune(token[0])):
		switch token {
		case "func":
			return parseFunctionLiteral(sc)
		case "if":
			return parseConditional(sc)
		default:
			return ast.NewIdentifier(token), nil
		}
	default:
		return nil, syntaxErrorf("Illegal term in expression")
	}
}

// parseFunctionLiteral handles `func ( param ) { body }`. The
// delimiters are read and discarded without validation; only the
// parameter token is inspected. Arity is exactly one.
func parseFunctionLiteral(sc *scanner.Scanner) (ast.Expression, error) {
	sc.Read() // "("

	param := sc.Read()
	if param == scanner.EOF {
		return nil, syntaxErrorf("function literal requires a parameter name")
	}

	sc.Read() // ")"
	sc.Read() // "{"

	body, err := parseAssignment(sc)
	if err != nil {
		return nil, err
	}

	sc.Read() // "}"

	return ast.NewFunctionLiteral(param, body), nil
}

// parseConditional handles `if L relOp R then T else E`. The relational
// operator token is recorded verbatim; the evaluator decides which
// operators are meaningful.
func parseConditional(sc *scanner.Scanner) (ast.Expression, error) {
	left, err := parseExpression(sc)
	if err != nil {
		return nil, err
	}

	relOp := sc.Read()
	if relOp == scanner.EOF {
		return nil, syntaxErrorf("conditional requires a relational operator")
	}

	right, err := parseExpression(sc)
	if err != nil {
		return nil, err
	}

	if kw := sc.Read(); kw != "then" {
		return nil, syntaxErrorf("expected 'then' in conditional, got %q", kw)
	}
	thenExp, err := parseExpression(sc)
	if err != nil {
		return nil, err
	}

	if kw := sc.Read(); kw != "else" {
		return nil, syntaxErrorf("expected 'else' in conditional, got %q", kw)
	}
	elseExp, err := parseExpression(sc)
	if err != nil {
		return nil, err
	}

	return ast.NewConditional(left, relOp, right, thenExp, elseExp), nil
}

// Precedence maps an operator token to its binding strength. The
// recursive grammar above determines actual grouping; the ranks record
// the intended ordering.
func Precedence(token string) int {
	if len(token) > 1 {
		return 0
	}
	switch token {
	case "=":
		return 1
	case "+", "-":
		return 2
	case "*", "/":
		return 3
	default:
		return 0
	}
}

package parser

import (
	"errors"
	"testing"

	"dopcalc/interpreter-go/pkg/ast"
	"dopcalc/interpreter-go/pkg/scanner"
)

func parseLine(t *testing.T, line string) ast.Expression {
	t.Helper()
	sc := scanner.New()
	sc.SetInput(line)
	exp, err := ParseLine(sc)
	if err != nil {
		t.Fatalf("parsing %q: %v", line, err)
	}
	return exp
}

func parseError(t *testing.T, line string) *SyntaxError {
	t.Helper()
	sc := scanner.New()
	sc.SetInput(line)
	_, err := ParseLine(sc)
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("parsing %q: expected SyntaxError, got %v", line, err)
	}
	return syn
}

func wantInt(t *testing.T, exp ast.Expression, value int64) {
	t.Helper()
	lit, ok := exp.(*ast.IntegerLiteral)
	if !ok || lit.Value != value {
		t.Fatalf("expected integer literal %d, got %#v", value, exp)
	}
}

func wantIdent(t *testing.T, exp ast.Expression, name string) {
	t.Helper()
	id, ok := exp.(*ast.Identifier)
	if !ok || id.Name != name {
		t.Fatalf("expected identifier %q, got %#v", name, exp)
	}
}

func wantBinary(t *testing.T, exp ast.Expression, operator string) *ast.BinaryOp {
	t.Helper()
	bin, ok := exp.(*ast.BinaryOp)
	if !ok || bin.Operator != operator {
		t.Fatalf("expected binary %q, got %#v", operator, exp)
	}
	return bin
}

func TestParseIntegerLiteral(t *testing.T) {
	wantInt(t, parseLine(t, "42"), 42)
}

func TestParseIdentifier(t *testing.T) {
	wantIdent(t, parseLine(t, "total"), "total")
}

func TestParseBinaryAddition(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "1 + 2"), "+")
	wantInt(t, bin.Left, 1)
	wantInt(t, bin.Right, 2)
}

func TestSameLevelOperatorsGroupRight(t *testing.T) {
	// Each level recurses into itself for the right-hand side, so
	// 20 - 8 - 2 groups as 20 - (8 - 2).
	bin := wantBinary(t, parseLine(t, "20 - 8 - 2"), "-")
	wantInt(t, bin.Left, 20)
	inner := wantBinary(t, bin.Right, "-")
	wantInt(t, inner.Left, 8)
	wantInt(t, inner.Right, 2)
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "2 + 3 * 4"), "+")
	wantInt(t, bin.Left, 2)
	inner := wantBinary(t, bin.Right, "*")
	wantInt(t, inner.Left, 3)
	wantInt(t, inner.Right, 4)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "( 2 + 3 ) * 4"), "*")
	inner := wantBinary(t, bin.Left, "+")
	wantInt(t, inner.Left, 2)
	wantInt(t, inner.Right, 3)
	wantInt(t, bin.Right, 4)
}

func TestCloseTokenIsNotValidated(t *testing.T) {
	// The token after a parenthesized expression is consumed without
	// being checked.
	bin := wantBinary(t, parseLine(t, "( 1 + 2 ]"), "+")
	wantInt(t, bin.Left, 1)
	wantInt(t, bin.Right, 2)
}

func TestParseAssignment(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "x = 5"), "=")
	wantIdent(t, bin.Left, "x")
	wantInt(t, bin.Right, 5)
}

func TestChainedAssignmentGroupsRight(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "a = b = 1"), "=")
	wantIdent(t, bin.Left, "a")
	inner := wantBinary(t, bin.Right, "=")
	wantIdent(t, inner.Left, "b")
	wantInt(t, inner.Right, 1)
}

func TestParseCall(t *testing.T) {
	call, ok := parseLine(t, "f(21)").(*ast.Call)
	if !ok {
		t.Fatalf("expected call node")
	}
	wantIdent(t, call.Callee, "f")
	wantInt(t, call.Argument, 21)
}

func TestCallBindsTighterThanMultiplication(t *testing.T) {
	bin := wantBinary(t, parseLine(t, "f(2) * 3"), "*")
	if _, ok := bin.Left.(*ast.Call); !ok {
		t.Fatalf("expected call as left operand, got %#v", bin.Left)
	}
	wantInt(t, bin.Right, 3)
}

func TestParseFunctionLiteral(t *testing.T) {
	fn, ok := parseLine(t, "func (n) { n * 2 }").(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected function literal")
	}
	if fn.Parameter != "n" {
		t.Fatalf("unexpected parameter %q", fn.Parameter)
	}
	body := wantBinary(t, fn.Body, "*")
	wantIdent(t, body.Left, "n")
	wantInt(t, body.Right, 2)
}

func TestParseConditional(t *testing.T) {
	cond, ok := parseLine(t, "if a < 10 then a else 10").(*ast.Conditional)
	if !ok {
		t.Fatalf("expected conditional")
	}
	wantIdent(t, cond.Left, "a")
	if cond.Relation != "<" {
		t.Fatalf("unexpected relation %q", cond.Relation)
	}
	wantInt(t, cond.Right, 10)
	wantIdent(t, cond.Then, "a")
	wantInt(t, cond.Else, 10)
}

func TestConditionalRelationReadVerbatim(t *testing.T) {
	// Validity of the relation token is deferred to evaluation.
	cond, ok := parseLine(t, "if 1 <> 2 then 1 else 0").(*ast.Conditional)
	if !ok {
		t.Fatalf("expected conditional")
	}
	if cond.Relation != "<>" {
		t.Fatalf("unexpected relation %q", cond.Relation)
	}
}

func TestConditionalRequiresThen(t *testing.T) {
	parseError(t, "if 1 < 2 thn 1 else 0")
}

func TestConditionalRequiresElse(t *testing.T) {
	parseError(t, "if 1 < 2 then 1 09")
}

func TestDefineCommand(t *testing.T) {
	bin := wantBinary(t, parseLine(t, ":define x = 5"), "=")
	wantIdent(t, bin.Left, "x")
	wantInt(t, bin.Right, 5)
}

func TestLoadCommandIsPlaceholder(t *testing.T) {
	wantIdent(t, parseLine(t, ":load"), ":load")
}

func TestUnknownCommandEchoesIdentifier(t *testing.T) {
	wantIdent(t, parseLine(t, ":history"), ":history")
}

func TestTrailingTokensRejected(t *testing.T) {
	syn := parseError(t, "1 + 2 3")
	if syn.Msg == "" {
		t.Fatalf("expected a message")
	}
}

func TestIllegalTerm(t *testing.T) {
	syn := parseError(t, "1 + ?")
	if syn.Msg != "Illegal term in expression" {
		t.Fatalf("unexpected message %q", syn.Msg)
	}
}

func TestEmptyLine(t *testing.T) {
	parseError(t, "")
}

func TestMalformedInteger(t *testing.T) {
	parseError(t, "12abc + 1")
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"=", 1},
		{"+", 2},
		{"-", 2},
		{"*", 3},
		{"/", 3},
		{"(", 0},
		{"then", 0},
		{"<=", 0},
	}
	for _, tc := range cases {
		if got := Precedence(tc.token); got != tc.want {
			t.Fatalf("Precedence(%q): expected %d, got %d", tc.token, tc.want, got)
		}
	}
}

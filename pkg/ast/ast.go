package ast

type NodeType string

const (
	NodeIdentifier      NodeType = "Identifier"
	NodeIntegerLiteral  NodeType = "IntegerLiteral"
	NodeBinaryOp        NodeType = "BinaryOp"
	NodeCall            NodeType = "Call"
	NodeFunctionLiteral NodeType = "FunctionLiteral"
	NodeConditional     NodeType = "Conditional"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expression marks nodes that evaluate to a value. Every node in this
// language is an expression; the interface exists so future statement
// forms have somewhere to diverge.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// IntegerLiteral

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

// BinaryOp covers arithmetic and assignment. Left and Right are owned
// exclusively by the node; subtrees are never shared between parents.
type BinaryOp struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryOp(operator string, left, right Expression) *BinaryOp {
	return &BinaryOp{nodeImpl: newNodeImpl(NodeBinaryOp), Operator: operator, Left: left, Right: right}
}

// Call applies a function value to exactly one argument.
type Call struct {
	nodeImpl
	expressionMarker

	Callee   Expression `json:"callee"`
	Argument Expression `json:"argument"`
}

func NewCall(callee, argument Expression) *Call {
	return &Call{nodeImpl: newNodeImpl(NodeCall), Callee: callee, Argument: argument}
}

// FunctionLiteral is a single-parameter function literal,
// `func ( param ) { body }`.
type FunctionLiteral struct {
	nodeImpl
	expressionMarker

	Parameter string     `json:"parameter"`
	Body      Expression `json:"body"`
}

func NewFunctionLiteral(parameter string, body Expression) *FunctionLiteral {
	return &FunctionLiteral{nodeImpl: newNodeImpl(NodeFunctionLiteral), Parameter: parameter, Body: body}
}

// Conditional is `if Left Relation Right then Then else Else`. The
// relation token is recorded verbatim; its validity is decided at
// evaluation time.
type Conditional struct {
	nodeImpl
	expressionMarker

	Left     Expression `json:"left"`
	Relation string     `json:"relation"`
	Right    Expression `json:"right"`
	Then     Expression `json:"then"`
	Else     Expression `json:"else"`
}

func NewConditional(left Expression, relation string, right, then, els Expression) *Conditional {
	return &Conditional{nodeImpl: newNodeImpl(NodeConditional), Left: left, Relation: relation, Right: right, Then: then, Else: els}
}

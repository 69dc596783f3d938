package ast

// Builder helpers used pervasively by tests.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Bin(operator string, left, right Expression) *BinaryOp {
	return NewBinaryOp(operator, left, right)
}

func Assign(name string, value Expression) *BinaryOp {
	return NewBinaryOp("=", ID(name), value)
}

func CallOf(callee, argument Expression) *Call {
	return NewCall(callee, argument)
}

func Fn(parameter string, body Expression) *FunctionLiteral {
	return NewFunctionLiteral(parameter, body)
}

func If(left Expression, relation string, right, then, els Expression) *Conditional {
	return NewConditional(left, relation, right, then, els)
}

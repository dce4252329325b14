package expr

import (
	"fmt"
)

var (
	_ Expr = (*BinaryOperation)(nil)
	_ Expr = (*FunctionCall)(nil)
	_ Expr = (*Number)(nil)
	_ Expr = (*Variable)(nil)
)

// Expr is a node of an expression tree. The set of implementations is closed.
// Nodes never change after construction, rewrites always build new trees.
type Expr interface {
	// Evaluate computes the value of the subtree.
	Evaluate() float64

	// String renders the subtree. Binary operations are not parenthesized,
	// so the result is not guaranteed to read back as the same tree.
	String() string

	// Accept passes the node to the kind-specific method of t.
	Accept(t Transformer) (Expr, error)

	isExpr()
}

// Transformer is a rewrite operation over expression trees. Implementations
// recurse into children by calling Accept on them.
type Transformer interface {
	TransformBinaryOperation(e *BinaryOperation) (Expr, error)
	TransformFunctionCall(e *FunctionCall) (Expr, error)
	TransformNumber(e *Number) (Expr, error)
	TransformVariable(e *Variable) (Expr, error)
}

type (
	BinaryOperation struct {
		left     Expr
		operator Operator
		right    Expr
	}

	FunctionCall struct {
		name     Function
		argument Expr
	}

	Number struct {
		value float64
	}

	Variable struct {
		name string
	}
)

func (e *BinaryOperation) isExpr() {}
func (e *FunctionCall) isExpr()    {}
func (e *Number) isExpr()          {}
func (e *Variable) isExpr()        {}

func NewBinaryOperation(left Expr, operator Operator, right Expr) (*BinaryOperation, error) {
	if isNil(left) {
		return nil, fmt.Errorf("left operand of %q: %w", operator, ErrMissingOperand)
	}

	if isNil(right) {
		return nil, fmt.Errorf("right operand of %q: %w", operator, ErrMissingOperand)
	}

	if !operator.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, operator)
	}

	return &BinaryOperation{
		left:     left,
		operator: operator,
		right:    right,
	}, nil
}

func (e *BinaryOperation) Left() Expr         { return e.left }
func (e *BinaryOperation) Operator() Operator { return e.operator }
func (e *BinaryOperation) Right() Expr        { return e.right }

func (e *BinaryOperation) Evaluate() float64 {
	left := e.left.Evaluate()
	right := e.right.Evaluate()

	return e.operator.Apply(left, right)
}

func (e *BinaryOperation) String() string {
	return e.left.String() + string(e.operator) + e.right.String()
}

func (e *BinaryOperation) Accept(t Transformer) (Expr, error) {
	return t.TransformBinaryOperation(e)
}

func NewFunctionCall(name Function, argument Expr) (*FunctionCall, error) {
	if isNil(argument) {
		return nil, fmt.Errorf("call to %q: %w", name, ErrMissingArgument)
	}

	if !name.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFunction, name)
	}

	return &FunctionCall{
		name:     name,
		argument: argument,
	}, nil
}

func (e *FunctionCall) Name() Function { return e.name }
func (e *FunctionCall) Argument() Expr { return e.argument }

func (e *FunctionCall) Evaluate() float64 {
	return e.name.Apply(e.argument.Evaluate())
}

func (e *FunctionCall) String() string {
	return string(e.name) + "(" + e.argument.String() + ")"
}

func (e *FunctionCall) Accept(t Transformer) (Expr, error) {
	return t.TransformFunctionCall(e)
}

func NewNumber(value float64) *Number {
	return &Number{
		value: value,
	}
}

func (e *Number) Value() float64    { return e.value }
func (e *Number) Evaluate() float64 { return e.value }

func (e *Number) String() string {
	return fmt.Sprintf("%f", e.value)
}

func (e *Number) Accept(t Transformer) (Expr, error) {
	return t.TransformNumber(e)
}

func NewVariable(name string) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyVariableName
	}

	return &Variable{
		name: name,
	}, nil
}

func (e *Variable) Name() string { return e.name }

// Evaluate returns 0. There is no binding environment, see transform.Substitute
// for replacing variables with values.
func (e *Variable) Evaluate() float64 { return 0 }

func (e *Variable) String() string {
	return e.name
}

func (e *Variable) Accept(t Transformer) (Expr, error) {
	return t.TransformVariable(e)
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return true

	case *BinaryOperation:
		return e == nil

	case *FunctionCall:
		return e == nil

	case *Number:
		return e == nil

	case *Variable:
		return e == nil
	}

	return false
}

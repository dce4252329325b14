package transform

import (
	"fmt"

	"github.com/artuross/exprvisitor/internal/expr"
)

var _ expr.Transformer = CopyTree{}

// CopyTree builds a structurally identical tree that shares no nodes with the
// source.
type CopyTree struct{}

func (c CopyTree) TransformBinaryOperation(e *expr.BinaryOperation) (expr.Expr, error) {
	left, err := e.Left().Accept(c)
	if err != nil {
		return nil, fmt.Errorf("copy left operand: %w", err)
	}

	right, err := e.Right().Accept(c)
	if err != nil {
		return nil, fmt.Errorf("copy right operand: %w", err)
	}

	node, err := expr.NewBinaryOperation(left, e.Operator(), right)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (c CopyTree) TransformFunctionCall(e *expr.FunctionCall) (expr.Expr, error) {
	argument, err := e.Argument().Accept(c)
	if err != nil {
		return nil, fmt.Errorf("copy argument: %w", err)
	}

	node, err := expr.NewFunctionCall(e.Name(), argument)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (c CopyTree) TransformNumber(e *expr.Number) (expr.Expr, error) {
	return expr.NewNumber(e.Value()), nil
}

func (c CopyTree) TransformVariable(e *expr.Variable) (expr.Expr, error) {
	node, err := expr.NewVariable(e.Name())
	if err != nil {
		return nil, err
	}

	return node, nil
}

func Copy(e expr.Expr) (expr.Expr, error) {
	return e.Accept(CopyTree{})
}

package transform

import (
	"fmt"

	"github.com/artuross/exprvisitor/internal/expr"
)

var _ expr.Transformer = (*Substitute)(nil)

// Substitute replaces bound variables with numbers. Unbound variables and all
// other nodes are copied.
type Substitute struct {
	Bindings map[string]float64
}

func (s *Substitute) TransformBinaryOperation(e *expr.BinaryOperation) (expr.Expr, error) {
	left, err := e.Left().Accept(s)
	if err != nil {
		return nil, fmt.Errorf("substitute left operand: %w", err)
	}

	right, err := e.Right().Accept(s)
	if err != nil {
		return nil, fmt.Errorf("substitute right operand: %w", err)
	}

	node, err := expr.NewBinaryOperation(left, e.Operator(), right)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (s *Substitute) TransformFunctionCall(e *expr.FunctionCall) (expr.Expr, error) {
	argument, err := e.Argument().Accept(s)
	if err != nil {
		return nil, fmt.Errorf("substitute argument: %w", err)
	}

	node, err := expr.NewFunctionCall(e.Name(), argument)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (s *Substitute) TransformNumber(e *expr.Number) (expr.Expr, error) {
	return expr.NewNumber(e.Value()), nil
}

func (s *Substitute) TransformVariable(e *expr.Variable) (expr.Expr, error) {
	if value, ok := s.Bindings[e.Name()]; ok {
		return expr.NewNumber(value), nil
	}

	node, err := expr.NewVariable(e.Name())
	if err != nil {
		return nil, err
	}

	return node, nil
}

func Bind(e expr.Expr, bindings map[string]float64) (expr.Expr, error) {
	return e.Accept(&Substitute{Bindings: bindings})
}

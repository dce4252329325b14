package transform

import (
	"fmt"

	"github.com/artuross/exprvisitor/internal/expr"
)

var _ expr.Transformer = FoldConstants{}

// FoldConstants replaces every subtree whose operands all reduce to numbers
// with a single number. It is a single bottom-up pass; a node with at least
// one non-literal child after rewriting is rebuilt over the rewritten children.
type FoldConstants struct{}

func (f FoldConstants) TransformBinaryOperation(e *expr.BinaryOperation) (expr.Expr, error) {
	left, err := e.Left().Accept(f)
	if err != nil {
		return nil, fmt.Errorf("fold left operand: %w", err)
	}

	right, err := e.Right().Accept(f)
	if err != nil {
		return nil, fmt.Errorf("fold right operand: %w", err)
	}

	leftNumber, leftOK := left.(*expr.Number)
	rightNumber, rightOK := right.(*expr.Number)

	if leftOK && rightOK {
		value := e.Operator().Apply(leftNumber.Value(), rightNumber.Value())

		return expr.NewNumber(value), nil
	}

	node, err := expr.NewBinaryOperation(left, e.Operator(), right)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (f FoldConstants) TransformFunctionCall(e *expr.FunctionCall) (expr.Expr, error) {
	argument, err := e.Argument().Accept(f)
	if err != nil {
		return nil, fmt.Errorf("fold argument: %w", err)
	}

	if number, ok := argument.(*expr.Number); ok {
		return expr.NewNumber(e.Name().Apply(number.Value())), nil
	}

	node, err := expr.NewFunctionCall(e.Name(), argument)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// leaves cannot be folded any further
func (f FoldConstants) TransformNumber(e *expr.Number) (expr.Expr, error) {
	return expr.NewNumber(e.Value()), nil
}

func (f FoldConstants) TransformVariable(e *expr.Variable) (expr.Expr, error) {
	node, err := expr.NewVariable(e.Name())
	if err != nil {
		return nil, err
	}

	return node, nil
}

func Fold(e expr.Expr) (expr.Expr, error) {
	return e.Accept(FoldConstants{})
}

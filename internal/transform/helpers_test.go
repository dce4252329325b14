package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/artuross/exprvisitor/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binary(t *testing.T, left expr.Expr, op expr.Operator, right expr.Expr) *expr.BinaryOperation {
	t.Helper()

	node, err := expr.NewBinaryOperation(left, op, right)
	require.NoError(t, err)

	return node
}

func call(t *testing.T, name expr.Function, argument expr.Expr) *expr.FunctionCall {
	t.Helper()

	node, err := expr.NewFunctionCall(name, argument)
	require.NoError(t, err)

	return node
}

func variable(t *testing.T, name string) *expr.Variable {
	t.Helper()

	node, err := expr.NewVariable(name)
	require.NoError(t, err)

	return node
}

func num(value float64) *expr.Number {
	return expr.NewNumber(value)
}

// sampleTree builds abs(var*sqrt(32-16)).
func sampleTree(t *testing.T) expr.Expr {
	t.Helper()

	return call(t, expr.FunctionAbs, binary(t,
		variable(t, "var"),
		expr.OperatorMultiply,
		call(t, expr.FunctionSqrt, binary(t, num(32), expr.OperatorSubtract, num(16))),
	))
}

var (
	operators = []expr.Operator{expr.OperatorAdd, expr.OperatorSubtract, expr.OperatorMultiply, expr.OperatorDivide}
	functions = []expr.Function{expr.FunctionSqrt, expr.FunctionAbs}
	names     = []string{"x", "y", "var"}
)

// randomTree builds a tree of at most the given depth. withVariables controls
// whether variable leaves may appear.
func randomTree(t *testing.T, rng *rand.Rand, depth int, withVariables bool) expr.Expr {
	t.Helper()

	if depth <= 1 || rng.Intn(4) == 0 {
		if withVariables && rng.Intn(3) == 0 {
			return variable(t, names[rng.Intn(len(names))])
		}

		return num(float64(rng.Intn(41) - 20))
	}

	if rng.Intn(3) == 0 {
		return call(t, functions[rng.Intn(len(functions))], randomTree(t, rng, depth-1, withVariables))
	}

	return binary(t,
		randomTree(t, rng, depth-1, withVariables),
		operators[rng.Intn(len(operators))],
		randomTree(t, rng, depth-1, withVariables),
	)
}

// walk returns all nodes of the tree in pre-order.
func walk(e expr.Expr) []expr.Expr {
	nodes := []expr.Expr{e}

	switch e := e.(type) {
	case *expr.BinaryOperation:
		nodes = append(nodes, walk(e.Left())...)
		nodes = append(nodes, walk(e.Right())...)

	case *expr.FunctionCall:
		nodes = append(nodes, walk(e.Argument())...)
	}

	return nodes
}

func assertSameValue(t *testing.T, expected, actual float64) {
	t.Helper()

	if math.IsNaN(expected) {
		assert.True(t, math.IsNaN(actual), "expected NaN, got %v", actual)
		return
	}

	assert.InDelta(t, expected, actual, 1e-9)
}

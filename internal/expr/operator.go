package expr

import "math"

type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
)

func (o Operator) Valid() bool {
	switch o {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	}

	return false
}

// Apply combines two operands. Division by zero yields Inf or NaN.
func (o Operator) Apply(left, right float64) float64 {
	switch o {
	case OperatorAdd:
		return left + right

	case OperatorSubtract:
		return left - right

	case OperatorMultiply:
		return left * right

	case OperatorDivide:
		return left / right
	}

	panic("unknown operator: " + string(o))
}

type Function string

const (
	FunctionSqrt Function = "sqrt"
	FunctionAbs  Function = "abs"
)

func (f Function) Valid() bool {
	return f == FunctionSqrt || f == FunctionAbs
}

// Apply calls the function. sqrt of a negative value yields NaN.
func (f Function) Apply(value float64) float64 {
	switch f {
	case FunctionSqrt:
		return math.Sqrt(value)

	case FunctionAbs:
		return math.Abs(value)
	}

	panic("unknown function: " + string(f))
}

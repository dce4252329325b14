package expr

import "errors"

var (
	ErrEmptyVariableName   = errors.New("variable name may not be empty")
	ErrMissingOperand      = errors.New("missing operand")
	ErrUnknownOperator     = errors.New("unknown operator")
	ErrMissingArgument     = errors.New("missing function argument")
	ErrUnsupportedFunction = errors.New("function is not supported")
)

package semconv

// Command
const (
	// Name of the CLI command being executed.
	Command = "command"

	// Random ID generated for each executor run. Shared by logs and spans of the same run.
	RunID = "run_id"
)

// Expressions
const (
	// Rendered form of an expression tree.
	Expression = "expression"

	// Structural dump of an expression tree, only logged at debug level.
	Tree = "tree"

	// Name of the rewrite applied to a tree, e.g. "copy" or "fold".
	Transform = "transform"

	// Numeric value of an evaluated tree.
	Value = "value"

	// Number of variables bound before folding.
	BindingCount = "binding_count"
)

package exec

import (
	"context"
	"fmt"
	"io"

	"github.com/artuross/exprvisitor/internal/defaults"
	"github.com/artuross/exprvisitor/internal/expr"
	"github.com/artuross/exprvisitor/internal/log/semconv"
	"github.com/artuross/exprvisitor/internal/transform"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/artuross/exprvisitor/internal/commands/demo/exec"

type Config struct {
	VariableName string
	Bindings     map[string]float64
}

type Executor struct {
	output   io.Writer
	newRunID func() uuid.UUID
	tracer   trace.Tracer
}

func NewExecutor(output io.Writer, options ...func(*Executor)) *Executor {
	executor := Executor{
		output:   output,
		newRunID: uuid.New,
		tracer:   defaults.TraceProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

// Run builds the sample tree and writes the rendering of its copy and of its
// folded form. With bindings it also writes the folded bound tree and its
// value.
func (e *Executor) Run(ctx context.Context, config Config) error {
	runID := e.newRunID().String()

	ctx, span := e.tracer.Start(ctx, "run", trace.WithAttributes(attribute.String(semconv.RunID, runID)))
	defer span.End()

	logger := zerolog.Ctx(ctx).With().Str(semconv.RunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	tree, err := SampleTree(config.VariableName)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("build sample tree: %w", err)
	}

	logger.Info().Str(semconv.Expression, tree.String()).Msg("built sample tree")

	var copied, folded expr.Expr

	// rewrites never mutate the source, so both may read it at once
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		result, err := e.rewrite(groupCtx, "copy tree", "copy", tree, transform.CopyTree{})
		if err != nil {
			return err
		}

		copied = result
		return nil
	})

	group.Go(func() error {
		result, err := e.rewrite(groupCtx, "fold constants", "fold", tree, transform.FoldConstants{})
		if err != nil {
			return err
		}

		folded = result
		return nil
	})

	if err := group.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("rewrite sample tree: %w", err)
	}

	if _, err := fmt.Fprintln(e.output, copied.String()); err != nil {
		return fmt.Errorf("write copied tree: %w", err)
	}

	if _, err := fmt.Fprintln(e.output, folded.String()); err != nil {
		return fmt.Errorf("write folded tree: %w", err)
	}

	if len(config.Bindings) == 0 {
		return nil
	}

	logger.Info().Int(semconv.BindingCount, len(config.Bindings)).Msg("binding variables")

	bound, err := e.rewrite(ctx, "bind variables", "bind", tree, &transform.Substitute{Bindings: config.Bindings})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("bind sample tree: %w", err)
	}

	result, err := e.rewrite(ctx, "fold constants", "fold", bound, transform.FoldConstants{})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("fold bound tree: %w", err)
	}

	value := result.Evaluate()
	logger.Info().Float64(semconv.Value, value).Msg("evaluated bound tree")

	if _, err := fmt.Fprintf(e.output, "%s\n%f\n", result.String(), value); err != nil {
		return fmt.Errorf("write bound tree: %w", err)
	}

	return nil
}

func (e *Executor) rewrite(ctx context.Context, spanName string, name string, tree expr.Expr, t expr.Transformer) (expr.Expr, error) {
	ctx, span := e.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String(semconv.Transform, name)))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	result, err := tree.Accept(t)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	span.SetAttributes(attribute.String(semconv.Expression, result.String()))

	if event := logger.Debug(); event.Enabled() {
		event.
			Str(semconv.Transform, name).
			Str(semconv.Tree, pretty.Sprint(result)).
			Msg("rewrote tree")
	}

	return result, nil
}

// SampleTree builds abs(<variable>*sqrt(32-16)).
func SampleTree(variableName string) (expr.Expr, error) {
	variable, err := expr.NewVariable(variableName)
	if err != nil {
		return nil, fmt.Errorf("create variable: %w", err)
	}

	minus, err := expr.NewBinaryOperation(expr.NewNumber(32), expr.OperatorSubtract, expr.NewNumber(16))
	if err != nil {
		return nil, fmt.Errorf("create subtraction: %w", err)
	}

	callSqrt, err := expr.NewFunctionCall(expr.FunctionSqrt, minus)
	if err != nil {
		return nil, fmt.Errorf("create sqrt call: %w", err)
	}

	mult, err := expr.NewBinaryOperation(variable, expr.OperatorMultiply, callSqrt)
	if err != nil {
		return nil, fmt.Errorf("create multiplication: %w", err)
	}

	callAbs, err := expr.NewFunctionCall(expr.FunctionAbs, mult)
	if err != nil {
		return nil, fmt.Errorf("create abs call: %w", err)
	}

	return callAbs, nil
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}

func WithRunIDFunc(newRunID func() uuid.UUID) func(*Executor) {
	return func(e *Executor) {
		e.newRunID = newRunID
	}
}

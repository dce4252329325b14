package demo

import (
	"errors"
	"fmt"
	"os"

	"github.com/artuross/exprvisitor/internal/commandinit"
	"github.com/artuross/exprvisitor/internal/commands/demo/config"
	"github.com/artuross/exprvisitor/internal/commands/demo/exec"
	cli "github.com/urfave/cli/v2"
)

var ErrCommandFailed = errors.New("command failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Copies and folds the sample tree abs(var*sqrt(32-16)) and prints both.",
		Flags: []cli.Flag{
			// optional
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Minimum level of log messages written to stderr.",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "variable",
				Usage: "Name of the variable in the sample tree.",
				Value: "var",
			},
			&cli.StringSliceFlag{
				Name:  "bind",
				Usage: "Binds a variable to a value before folding, as name=value. May be repeated.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, "demo")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	config.Log(logger, cfg)

	traceProvider, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "exprvisitor", cfg.OTELEndpoint)
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return ErrCommandFailed
	}
	defer tpShutdown(ctx)

	ctx = logger.WithContext(ctx)

	execConfig := exec.Config{
		VariableName: cfg.VariableName,
		Bindings:     cfg.Bindings,
	}

	executor := exec.NewExecutor(cliCtx.App.Writer, exec.WithTracerProvider(traceProvider))
	if err := executor.Run(ctx, execConfig); err != nil {
		logger.Error().Err(err).Msg("run demo")
		return ErrCommandFailed
	}

	return nil
}

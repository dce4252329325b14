package root

import (
	"os"

	"github.com/artuross/exprvisitor/internal/commands/demo"
	"github.com/artuross/exprvisitor/internal/defaults"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:      "exprvisitor",
		Usage:     "Evaluates and rewrites arithmetic expression trees.",
		Writer:    defaults.Output,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			demo.NewCommand(),
		},
	}
}

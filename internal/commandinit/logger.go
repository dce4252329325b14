package commandinit

import (
	"fmt"
	"io"

	"github.com/artuross/exprvisitor/internal/log/semconv"
	"github.com/rs/zerolog"
)

func NewLogger(w io.Writer, level string, command string) (zerolog.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	writer := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
	})

	logger := zerolog.New(writer).
		Level(logLevel).
		With().
		Timestamp().
		Str(semconv.Command, command).
		Logger()

	return logger, nil
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

type Flagger interface {
	String(name string) string
	StringSlice(name string) []string
}

type Config struct {
	Bindings     map[string]float64
	LogLevel     string
	OTELEndpoint string
	VariableName string
}

func Read(flags Flagger, getEnv func(string) string) (*Config, error) {
	// envs - optional
	otelEndpoint := getEnv("OTEL_EXPORTER_OTLP_ENDPOINT")

	// flags - required
	logLevel := flags.String("log-level")
	if _, err := zerolog.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("flag --log-level is invalid: %w", err)
	}

	variableName := flags.String("variable")
	if variableName == "" {
		return nil, fmt.Errorf("flag --variable is required")
	}

	// flags - optional
	bindings, err := parseBindings(flags.StringSlice("bind"))
	if err != nil {
		return nil, fmt.Errorf("flag --bind is invalid: %w", err)
	}

	cfg := Config{
		Bindings:     bindings,
		LogLevel:     logLevel,
		OTELEndpoint: otelEndpoint,
		VariableName: variableName,
	}

	return &cfg, nil
}

// parseBindings reads "name=value" pairs. A later pair overrides an earlier
// one with the same name.
func parseBindings(values []string) (map[string]float64, error) {
	bindings := make(map[string]float64, len(values))

	for _, value := range values {
		name, raw, found := strings.Cut(value, "=")
		if !found {
			return nil, fmt.Errorf("expected name=value, got %q", value)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("missing name in %q", value)
		}

		number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("parse value of %s: %w", name, err)
		}

		bindings[name] = number
	}

	return bindings, nil
}

func Log(logger zerolog.Logger, cfg *Config) {
	logger.Debug().
		Str("log_level", cfg.LogLevel).
		Str("otel_endpoint", cfg.OTELEndpoint).
		Str("variable", cfg.VariableName).
		Any("bindings", cfg.Bindings).
		Msg("running with config")
}

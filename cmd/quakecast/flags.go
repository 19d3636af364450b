package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ringnet/quakecast/internal/command"
	"github.com/ringnet/quakecast/internal/logger"
)

var (
	modelPath  string
	modelsPath string
	logLevel   string
	logFormat  string
	debug      bool

	cfg Config
)

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "path to the model artifact (.pkl, .json, .yaml)",
			Sources:     cli.EnvVars(command.EnvModel),
			Destination: &modelPath,
		},
		&cli.StringFlag{
			Name:        "models-path",
			Aliases:     []string{"path"},
			Usage:       "directory containing model artifacts",
			Destination: &modelsPath,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Sources:     cli.EnvVars(command.EnvLogLevel),
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text, auto)",
			Value:       "auto",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

// setup loads the config file and installs the logger into the context.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg = LoadConfig()
	applyGlobalConfig(cmd, cfg)

	level := logger.ParseLevel(logLevel, slog.LevelInfo)
	if debug {
		level = slog.LevelDebug
	}
	log := logger.New(logFormat, os.Stderr, level)
	return logger.WithContext(ctx, log), nil
}

// resolveModel applies the model resolution order: --model, --models-path,
// the models directory from the environment or config, then the default.
func resolveModel() (string, error) {
	return resolveModelPath(modelPath, modelsPath, os.Stdin, os.Stderr)
}

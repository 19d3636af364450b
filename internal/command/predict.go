package command

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ringnet/quakecast/internal/model"
	"github.com/ringnet/quakecast/internal/quake"
)

const (
	// DefaultModelPath is resolved against the working directory.
	DefaultModelPath = "earthquake_model.pkl"

	EnvModel    = "QUAKECAST_MODEL"
	EnvLogLevel = "QUAKECAST_LOG_LEVEL"
)

// ModelPath returns the artifact path from QUAKECAST_MODEL, or the default.
func ModelPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvModel)); p != "" {
		return p
	}
	return DefaultModelPath
}

// Predict is the one-shot prediction command. Flag parsing is disabled so
// negative values such as -117.5 stay positional. The logger comes from ctx.
func Predict() *cli.Command {
	return PredictWith(func() (string, error) { return ModelPath(), nil })
}

// PredictWith is Predict with a custom artifact path resolver. resolve runs
// when the model is loaded, before any argument is parsed.
func PredictWith(resolve func() (string, error)) *cli.Command {
	load := func() (model.Regressor, error) {
		path, err := resolve()
		if err != nil {
			return nil, err
		}
		return quake.LoadFile(path)()
	}
	return &cli.Command{
		Name:            "predict",
		Usage:           "Predict earthquake magnitude and destruction distance",
		ArgsUsage:       "<f1> <f2> ... <f12>",
		SkipFlagParsing: true,
		HideHelp:        true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := quake.Run(ctx, load, cmd.Args().Slice(), cmd.Root().Writer)
			return err
		},
	}
}

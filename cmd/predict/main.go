// Command predict prints a predicted earthquake magnitude and destruction
// distance for twelve numeric input parameters:
//
//	predict <f1> <f2> ... <f12>
//	6.8234,200
//
// The model artifact is read from earthquake_model.pkl in the working
// directory unless QUAKECAST_MODEL names another file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ringnet/quakecast/internal/command"
	"github.com/ringnet/quakecast/internal/logger"
)

func main() {
	level := logger.ParseLevel(os.Getenv(command.EnvLogLevel), slog.LevelWarn)
	ctx := logger.WithContext(context.Background(), logger.New("auto", os.Stderr, level))

	if err := command.Predict().Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

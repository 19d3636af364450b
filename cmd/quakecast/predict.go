package main

import (
	"github.com/urfave/cli/v3"

	"github.com/ringnet/quakecast/internal/command"
)

func predictCmd() *cli.Command {
	return command.PredictWith(resolveModel)
}

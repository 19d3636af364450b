package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/ringnet/quakecast/internal/logger"
	"github.com/ringnet/quakecast/internal/model"
)

type inspectOutput struct {
	Path string `json:"path"`
	model.Info
}

func inspectCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print a summary of a model artifact",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the summary as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := resolveModel()
			if err != nil {
				return fmt.Errorf("resolve model: %w", err)
			}
			logger.FromContext(ctx).Debug("inspecting model", "path", path)

			m, err := model.Load(path)
			if err != nil {
				return err
			}
			out := inspectOutput{Path: path, Info: m.Info()}
			if asJSON {
				enc := json.NewEncoder(cmd.Root().Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return printInfo(cmd.Root().Writer, out)
		},
	}
}

func printInfo(w io.Writer, out inspectOutput) error {
	var b strings.Builder
	fmt.Fprintf(&b, "path:      %s\n", out.Path)
	fmt.Fprintf(&b, "kind:      %s\n", out.Kind)
	fmt.Fprintf(&b, "features:  %d\n", out.Features)
	if out.Trees > 0 {
		fmt.Fprintf(&b, "trees:     %d\n", out.Trees)
	}
	if out.MaxDepth > 0 {
		fmt.Fprintf(&b, "max depth: %d\n", out.MaxDepth)
	}
	fmt.Fprintf(&b, "scaled:    %t\n", out.Scaled)
	for i, name := range out.FeatureNames {
		fmt.Fprintf(&b, "  f%-2d %s\n", i+1, name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

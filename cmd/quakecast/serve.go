package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/ringnet/quakecast/internal/api"
	"github.com/ringnet/quakecast/internal/logger"
	"github.com/ringnet/quakecast/internal/model"
)

type serveOptions struct {
	addr        string
	readTimeout time.Duration
	rateLimit   float64
	rateBurst   int64
	cacheSize   int64
	watch       bool
}

func serveCmd() *cli.Command {
	var opts serveOptions

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve predictions over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &opts.addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &opts.readTimeout,
			},
			&cli.Float64Flag{
				Name:        "rate-limit",
				Usage:       "sustained predictions per second (0 disables)",
				Destination: &opts.rateLimit,
			},
			&cli.Int64Flag{
				Name:        "rate-burst",
				Usage:       "prediction burst size",
				Value:       10,
				Destination: &opts.rateBurst,
			},
			&cli.Int64Flag{
				Name:        "cache-size",
				Usage:       "prediction cache entries (0 disables)",
				Value:       1024,
				Destination: &opts.cacheSize,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Usage:       "reload the model when the artifact changes",
				Destination: &opts.watch,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, cfg, &opts)

			path, err := resolveModel()
			if err != nil {
				return fmt.Errorf("resolve model: %w", err)
			}
			m, err := model.Load(path)
			if err != nil {
				return err
			}
			holder := model.NewHolder(nil)
			holder.Store(path, m)
			info := m.Info()
			log.Info("model loaded", "path", path, "kind", info.Kind, "features", info.Features)

			server, err := api.NewServer(holder, api.NewMetrics(prometheus.DefaultRegisterer), api.Config{
				RateLimit: opts.rateLimit,
				RateBurst: int(opts.rateBurst),
				CacheSize: int(opts.cacheSize),
			}, api.WithLogger(log))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			if opts.watch {
				go func() {
					if err := model.Watch(ctx, path, holder, log, server.ModelReloaded); err != nil {
						log.Error("model watch stopped", "error", err)
					}
				}()
			}

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", opts.addr)
			sc := echo.StartConfig{
				Address: opts.addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = opts.readTimeout
					return nil
				},
			}
			if err := sc.Start(ctx, e); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

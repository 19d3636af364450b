package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/ringnet/quakecast/internal/logger"
	"github.com/ringnet/quakecast/internal/model"
)

type Config struct {
	// RateLimit is the sustained prediction rate in requests per second.
	// Zero or less disables limiting.
	RateLimit float64
	RateBurst int
	// CacheSize bounds the prediction cache. Zero or less disables it.
	CacheSize int
}

type Server struct {
	holder   *model.Holder
	cache    *predictionCache
	limiter  *rate.Limiter
	metrics  *Metrics
	gatherer prometheus.Gatherer
	clock    clockwork.Clock
	log      logger.Logger
}

type Option func(*Server)

// WithClock sets the clock used for response timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithGatherer sets the source served on /metrics. Defaults to the
// Prometheus default gatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

func NewServer(holder *model.Holder, metrics *Metrics, cfg Config, opts ...Option) (*Server, error) {
	if holder == nil {
		return nil, fmt.Errorf("api: nil model holder")
	}
	if metrics == nil {
		return nil, fmt.Errorf("api: nil metrics")
	}
	cache, err := newPredictionCache(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("api: prediction cache: %w", err)
	}
	s := &Server{
		holder:   holder,
		cache:    cache,
		metrics:  metrics,
		gatherer: prometheus.DefaultGatherer,
		clock:    clockwork.NewRealClock(),
		log:      logger.Discard(),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Server) Register(e *echo.Echo) {
	var predictMW []echo.MiddlewareFunc
	if s.limiter != nil {
		predictMW = append(predictMW, rateLimit(s.limiter, s.metrics.RateLimited.Inc))
	}

	e.POST("/v1/predict", s.handlePredict, predictMW...)
	e.GET("/v1/model", s.handleModel)

	e.GET("/healthz", s.handleHealth)
	e.GET("/readyz", s.handleReady)

	metrics := promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
	e.GET("/metrics", func(c *echo.Context) error {
		metrics.ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

// ModelReloaded drops cached predictions after the holder swaps models.
// It matches the onReload callback of model.Watch.
func (s *Server) ModelReloaded(m *model.Model) {
	s.cache.purge()
	s.metrics.ModelReloads.Inc()
	s.log.Debug("prediction cache purged", "kind", m.Info().Kind)
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return out, errors.New("unexpected data after JSON body")
	}
	return out, nil
}

func writeUnavailable(c *echo.Context) error {
	return writeError(c, http.StatusServiceUnavailable, "unavailable_error", model.ErrNotLoaded.Error())
}

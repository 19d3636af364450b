package api

import (
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/ringnet/quakecast/internal/quake"
)

type PredictRequest struct {
	Features []float64 `json:"features"`
}

type PredictResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Created   int64   `json:"created"`
	Model     string  `json:"model"`
	Magnitude float64 `json:"magnitude"`
	Distance  int     `json:"distance"`
	Cached    bool    `json:"cached,omitempty"`
}

type ModelResponse struct {
	Object   string    `json:"object"`
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	LoadedAt time.Time `json:"loaded_at"`
	Kind     string    `json:"kind"`
	Features int       `json:"n_features"`
	Names    []string  `json:"feature_names,omitempty"`
	Trees    int       `json:"trees,omitempty"`
	MaxDepth int       `json:"max_depth,omitempty"`
	Scaled   bool      `json:"scaled"`
}

func validatePredictRequest(req PredictRequest) error {
	if len(req.Features) != quake.FeatureCount {
		return newInvalidRequest(fmt.Sprintf("features must contain exactly %d numbers, got %d", quake.FeatureCount, len(req.Features)))
	}
	return nil
}

func (s *Server) handlePredict(c *echo.Context) error {
	req, err := decodeJSON[PredictRequest](c.Request().Body)
	if err != nil {
		s.metrics.Predictions.WithLabelValues("invalid").Inc()
		return writeBadRequest(c, fmt.Sprintf("invalid request body: %v", err))
	}
	if err := validatePredictRequest(req); err != nil {
		s.metrics.Predictions.WithLabelValues("invalid").Inc()
		return writeBadRequest(c, err.Error())
	}

	snap := s.holder.Current()
	if snap == nil {
		s.metrics.Predictions.WithLabelValues("unavailable").Inc()
		return writeUnavailable(c)
	}

	key := keyFor(snap, req.Features)
	res, cached := s.cache.get(key)
	if cached {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		if s.cache != nil {
			s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
		start := time.Now()
		res, err = quake.Predictor{Model: snap.Model}.Estimate(req.Features)
		s.metrics.InferenceDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.Predictions.WithLabelValues("error").Inc()
			s.log.Error("prediction failed", "error", err)
			return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
		}
		if math.IsNaN(res.Magnitude) || math.IsInf(res.Magnitude, 0) {
			s.metrics.Predictions.WithLabelValues("error").Inc()
			s.log.Error("prediction is not finite", "magnitude", res.Magnitude)
			return writeError(c, http.StatusInternalServerError, "server_error",
				fmt.Sprintf("model produced a non-finite magnitude (%v)", res.Magnitude))
		}
		s.cache.add(key, res)
	}

	s.metrics.Predictions.WithLabelValues("success").Inc()
	s.metrics.Magnitude.Observe(res.Magnitude)
	s.log.Debug("prediction", "magnitude", res.Magnitude, "distance", res.Distance, "cached", cached)

	return c.JSON(http.StatusOK, PredictResponse{
		ID:        "pred_" + uuid.NewString(),
		Object:    "prediction",
		Created:   s.clock.Now().Unix(),
		Model:     filepath.Base(snap.Path),
		Magnitude: res.Magnitude,
		Distance:  res.Distance,
		Cached:    cached,
	})
}

func (s *Server) handleModel(c *echo.Context) error {
	snap := s.holder.Current()
	if snap == nil {
		return writeUnavailable(c)
	}
	info := snap.Model.Info()
	return c.JSON(http.StatusOK, ModelResponse{
		Object:   "model",
		ID:       filepath.Base(snap.Path),
		Path:     snap.Path,
		LoadedAt: snap.LoadedAt.UTC(),
		Kind:     string(info.Kind),
		Features: info.Features,
		Names:    info.FeatureNames,
		Trees:    info.Trees,
		MaxDepth: info.MaxDepth,
		Scaled:   info.Scaled,
	})
}

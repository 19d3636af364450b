package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleReady reports ready once a model has been stored in the holder.
func (s *Server) handleReady(c *echo.Context) error {
	if s.holder.Current() == nil {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "not ready", Error: "no model loaded"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ready"})
}

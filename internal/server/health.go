package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheck struct {
	Status string `json:"status"`
}

type HealthResponse map[string]HealthCheck

func handleHealth(logger *slog.Logger, db Pinger, sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := HealthResponse{
			"sqlite":   {Status: "ok"},
			"sessions": {Status: "ok"},
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			checks["sqlite"] = HealthCheck{Status: "error"}
			status = http.StatusServiceUnavailable
		}

		if sessions.Len() >= sessions.Capacity() {
			logger.Warn("health check failed", "name", "sessions", "count", sessions.Len())
			checks["sessions"] = HealthCheck{Status: "full"}
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(checks)
	}
}

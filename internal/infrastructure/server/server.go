// Package server hosts the observability HTTP surface: health, status,
// Prometheus metrics and the websocket event feed.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"resource_broker/internal/core"
	"resource_broker/pkg/telemetry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FeedHandler is the optional websocket feed mount for /ws
type FeedHandler interface {
	HandleWebSocket(w http.ResponseWriter, r *http.Request)
	ClientCount() int
}

type ObservabilityServer struct {
	port   string
	logger core.ILogger
	srv    *http.Server
	mu     sync.RWMutex
	status map[string]string
	hm     core.IHealthMonitor
	feed   FeedHandler
}

// NewObservabilityServer creates the server. The feed may be nil when the
// event feed is disabled.
func NewObservabilityServer(port string, logger core.ILogger, hm core.IHealthMonitor, feed FeedHandler) *ObservabilityServer {
	return &ObservabilityServer{
		port:   port,
		logger: logger.WithField("component", "observability_server"),
		status: make(map[string]string),
		hm:     hm,
		feed:   feed,
	}
}

func (s *ObservabilityServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.Handle("/metrics", promhttp.Handler())
	if s.feed != nil {
		mux.HandleFunc("/ws", s.feed.HandleWebSocket)
	}

	s.srv = &http.Server{
		Addr:    ":" + s.port,
		Handler: mux,
	}

	go func() {
		s.logger.Info("Starting observability server", "port", s.port)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Observability server failed", "error", err)
		}
	}()
}

func (s *ObservabilityServer) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *ObservabilityServer) UpdateStatus(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[key] = value
}

func (s *ObservabilityServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	metrics := telemetry.GetGlobalMetrics()

	health := map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
		"metrics": map[string]interface{}{
			"pool_sizes":       metrics.GetPoolSizes(),
			"active_consumers": metrics.GetActiveConsumers(),
		},
	}
	if s.feed != nil {
		health["feed_clients"] = s.feed.ClientCount()
	}

	w.Header().Set("Content-Type", "application/json")
	if s.hm != nil {
		health["components"] = s.hm.GetStatus()
		if !s.hm.IsHealthy() {
			health["status"] = "unhealthy"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(health)
}

func (s *ObservabilityServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	mergedStatus := make(map[string]string)
	for k, v := range s.status {
		mergedStatus[k] = v
	}
	s.mu.RUnlock()

	if s.hm != nil {
		for k, v := range s.hm.GetStatus() {
			mergedStatus[k] = v
		}
	}

	data, _ := json.Marshal(mergedStatus)
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

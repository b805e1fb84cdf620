package server

import (
	"context"
	"net/http"

	"ogcard/internal/handlers"
	applog "ogcard/internal/log"
	"ogcard/internal/metrics"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/api/og", handlers.OG)
	applog.Debug(context.Background(), "route registered", "path", "/api/og")
	mux.HandleFunc("/api/stats", handlers.Stats)
	applog.Debug(context.Background(), "route registered", "path", "/api/stats")
	mux.Handle("/metrics", metrics.Handler())
	applog.Debug(context.Background(), "route registered", "path", "/metrics")
	mux.HandleFunc("/", handlers.Docs)
	applog.Debug(context.Background(), "route registered", "path", "/")
	return mux
}

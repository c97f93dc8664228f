// Command graphlayoutd serves the graph catalog and layout engines over
// HTTP: graph CRUD, layout application, and file upload, backed by
// an in-memory store and instrumented with Prometheus metrics.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/graphlayout/api"
	"github.com/katalvlaran/graphlayout/metrics"
	"github.com/katalvlaran/graphlayout/store"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := parseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	st := store.New()

	var recorder *metrics.Recorder
	mux := http.NewServeMux()
	if cfg.MetricsOn {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewRecorder(reg)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	srv := api.NewServer(st, recorder, logger)
	mux.Handle("/api/", srv.Routes())

	logger.Info("starting graphlayoutd", "addr", cfg.ListenAddr, "metrics", cfg.MetricsOn)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

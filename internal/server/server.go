// Package server provides the base HTTP server, CLI flags, middleware
// chain, and response helpers for the AutoDinar API.
package server

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Config holds the server configuration, parsed from CLI flags.
type Config struct {
	Port       int
	ConfigFile string
	SeedFile   string
	SeedDemo   bool
	WebhookURL string
	Verbose    bool
}

// ParseFlags parses CLI flags and returns a Config.
func ParseFlags() *Config {
	cfg := &Config{}
	flag.IntVar(&cfg.Port, "port", 0, "HTTP listen port (default: 8410)")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to YAML config file")
	flag.StringVar(&cfg.SeedFile, "seed-file", "", "Path to JSON fixture for initial order state")
	flag.BoolVar(&cfg.SeedDemo, "seed-demo", false, "Seed demo orders at startup")
	flag.StringVar(&cfg.WebhookURL, "webhook-url", "", "URL to send order events to")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable request/response logging")
	flag.Parse()

	if cfg.Port == 0 {
		if p := os.Getenv("PORT"); p != "" {
			fmt.Sscanf(p, "%d", &cfg.Port)
		}
	}
	return cfg
}

// Server wraps a chi router with the common middleware stack and
// lifecycle management.
type Server struct {
	Config     *Config
	Router     *chi.Mux
	Logger     *slog.Logger
	RequestLog *RequestLog
}

// New creates a Server with the given config.
func New(cfg *Config) *Server {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	rl := NewRequestLog(256)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(CORS)
	r.Use(LogRequests(logger, rl))

	return &Server{
		Config:     cfg,
		Router:     r,
		Logger:     logger,
		RequestLog: rl,
	}
}

// Serve starts the HTTP server and blocks until a shutdown signal.
func (s *Server) Serve() error {
	addr := fmt.Sprintf(":%d", s.Config.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.Logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-done
	s.Logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// ServeHTTP implements http.Handler so Server can be used directly in
// tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    http.StatusText(status),
			"code":    status,
		},
	})
}

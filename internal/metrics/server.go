package metrics

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gravitas-015/hexroute/internal/config"
)

// defaultLoopbackAddr is forced whenever addr does not resolve to loopback
// and the escape hatch is not set.
const defaultLoopbackAddr = "127.0.0.1:9090"

// StartDebugServer starts the optional observability server serving
// Prometheus metrics and a health check. It refuses to bind anywhere but
// loopback unless ALLOW_DEBUG_EXTERNAL=true is set in the environment,
// logging a warning and forcing loopback otherwise. level gates the
// verbosity of its own log.Printf calls against the configured log level.
func StartDebugServer(addr, level string, collector *Collector) *http.Server {
	addr = enforceLoopback(addr, level)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://127.0.0.1:*", "http://localhost:*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		if config.LevelEnabled(level, "info") {
			log.Printf("debug server listening on %s", addr)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed && config.LevelEnabled(level, "error") {
			log.Printf("debug server error: %v", err)
		}
	}()

	return srv
}

// enforceLoopback validates that addr's host is loopback, forcing it back
// to defaultLoopbackAddr (and warning) otherwise, unless
// ALLOW_DEBUG_EXTERNAL=true explicitly opts out of the guard.
func enforceLoopback(addr, level string) string {
	if os.Getenv("ALLOW_DEBUG_EXTERNAL") == "true" {
		return addr
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil || !isLoopbackHost(host) {
		if config.LevelEnabled(level, "warn") {
			log.Printf("debug server forced to loopback for security (got %q)", addr)
		}
		return defaultLoopbackAddr
	}
	return addr
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Shutdown gracefully stops a debug server started by StartDebugServer.
func Shutdown(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}

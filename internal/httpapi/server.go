package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"datapipe/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Status() types.StatusResponse
	Ready() bool
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// NewMux builds the control-surface router for svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		ctx, cancel := joinContexts(r.Context(), shutdownCtx)
		defer cancel()
		if err := svc.Start(ctx); err != nil {
			status := statusFor(err)
			writeJSONError(w, status, err.Error())
			logRequest(r, lvl, "start", status, time.Since(start), err)
			return
		}
		writeJSON(w, http.StatusOK, types.ControlResponse{State: svc.Status().State})
		logRequest(r, lvl, "start", http.StatusOK, time.Since(start), nil)
	})

	r.Post("/stop", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		ctx, cancel := joinContexts(r.Context(), shutdownCtx)
		defer cancel()
		if stopTimeout > 0 {
			var tcancel context.CancelFunc
			ctx, tcancel = context.WithTimeout(ctx, stopTimeout)
			defer tcancel()
		}
		if err := svc.Stop(ctx); err != nil {
			status := statusFor(err)
			writeJSONError(w, status, err.Error())
			logRequest(r, lvl, "stop", status, time.Since(start), err)
			return
		}
		writeJSON(w, http.StatusOK, types.ControlResponse{State: svc.Status().State})
		logRequest(r, lvl, "stop", http.StatusOK, time.Since(start), nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("idle"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package server exposes the Mapper pipeline over HTTP.
//
//	GET  /healthz    liveness probe
//	POST /v1/graph   {points, labels?, config?} -> export.Document
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/export"
	"github.com/katalvlaran/lvmapper/pointcloud"
)

// MaxBodyBytes bounds the request body of POST /v1/graph.
const MaxBodyBytes = 32 << 20

// Router wires handlers to a base configuration and a logger.
type Router struct {
	base   *config.Config
	logger *zap.Logger
}

// NewRouter returns a router whose requests start from base; a request's
// "config" object overrides individual fields.
func NewRouter(base *config.Config, logger *zap.Logger) *Router {
	if base == nil {
		base = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Router{base: base, logger: logger}
}

// Setup configures middleware and routes.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(rt.logger))

	router.Get("/healthz", rt.healthCheck)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/graph", rt.buildGraph)
	})

	return router
}

// GraphRequest is the body of POST /v1/graph.
type GraphRequest struct {
	Points  [][]float64    `json:"points"`
	Labels  []string       `json:"labels,omitempty"`
	Config  *config.Config `json:"config,omitempty"`
	Members *bool          `json:"members,omitempty"` // include member indices, default true
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) buildGraph(w http.ResponseWriter, r *http.Request) {
	req := GraphRequest{Config: rt.base.Clone()}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		rt.respondError(w, r, http.StatusBadRequest, errors.WithHint(
			errors.Wrap(err, "server: decode request"),
			`expected {"points": [[...], ...], "labels": [...], "config": {...}}`,
		))
		return
	}

	cloud, err := pointcloud.New(req.Points, req.Labels)
	if err != nil {
		rt.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	m, err := req.Config.NewMapper(rt.logger.With(zap.String("request_id", chimiddleware.GetReqID(r.Context()))))
	if err != nil {
		rt.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	res, err := m.Build(r.Context(), cloud)
	if err != nil {
		rt.respondError(w, r, statusFor(err), err)
		return
	}

	opts := []export.Option{export.WithConfig(m.Describe())}
	if req.Members != nil {
		opts = append(opts, export.WithMembers(*req.Members))
	}
	doc, err := export.FromResult(res, cloud, opts...)
	if err != nil {
		rt.respondError(w, r, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalidConfiguration(err), errors.IsEmptyInput(err):
		return http.StatusBadRequest
	case errors.IsAny(err, context.Canceled, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (rt *Router) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		rt.logger.Error("request failed",
			zap.String("requestID", chimiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
	respondJSON(w, status, ErrorResponse{
		Error: err.Error(),
		Hint:  errors.FlattenHints(err),
	})
}

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestID", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "server: listen %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "server: shutdown")
	}
}

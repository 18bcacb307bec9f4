// Package mockapi serves a stand-in for the image search backend.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

const (
	defaultSize = search.DefaultPageSize
	maxSize     = 100
	serviceName = "mock_api"
)

// Options configures the mock backend.
type Options struct {
	Catalog Catalog
	// Bare responds with a plain JSON array instead of the {query, results} envelope.
	Bare bool
	// Latency delays every search response.
	Latency time.Duration
	Logger  *logger.Logger
}

// Server answers /get_image and /health.
type Server struct {
	catalog Catalog
	bare    bool
	latency time.Duration
	log     *logger.Logger
	router  http.Handler
}

type searchResponse struct {
	Query   string              `json:"query"`
	Results []search.ResultItem `json:"results"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// New creates a Server.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		catalog: opts.Catalog,
		bare:    opts.Bare,
		latency: opts.Latency,
		log:     log,
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.healthHandler)
	r.Get("/get_image", s.getImageHandler)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("mock api listening", logger.Fields{
		"addr":    addr,
		"images":  s.catalog.Len(),
		"bare":    s.bare,
		"latency": s.latency.String(),
	})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}

func (s *Server) getImageHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := params.Get("query_string")
	if query == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "query_string: ensure this value has at least 1 characters"})
		return
	}

	page, ok := intParam(params.Get("page"), 1)
	if !ok || page < 1 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "page: ensure this value is greater than or equal to 1"})
		return
	}

	size, ok := intParam(params.Get("size"), defaultSize)
	if !ok || size < 1 || size > maxSize {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "size: ensure this value is between 1 and 100"})
		return
	}

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-r.Context().Done():
			return
		}
	}

	results, total := s.catalog.Search(query, page, size)
	s.log.Debug("search served", logger.Fields{
		"query":      query,
		"page":       page,
		"size":       size,
		"results":    len(results),
		"matches":    total,
		"request_id": middleware.GetReqID(r.Context()),
	})

	if s.bare {
		writeJSON(w, http.StatusOK, results)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request", logger.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		})
	})
}

func intParam(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

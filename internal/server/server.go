package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/analysis"
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/logger"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/prediction"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"github.com/jonathan/career-advisor/internal/types"
)

// DBClient is the persistence surface the handlers need. *db.DB satisfies it.
type DBClient interface {
	SaveResumeAnalysis(ctx context.Context, userID uuid.UUID, result *types.ResumeAnalysis) (uuid.UUID, error)
	SavePrediction(ctx context.Context, userID uuid.UUID, input types.PredictionInput, result *types.PredictionResult) (uuid.UUID, error)
	CountResumeAnalyses(ctx context.Context, userID uuid.UUID) (int64, error)
	CountPredictions(ctx context.Context, userID uuid.UUID) (int64, error)
	ListResumeAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]db.ResumeAnalysisRecord, error)
	ListPredictions(ctx context.Context, userID uuid.UUID, limit int) ([]db.PredictionRecord, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          DBClient
	catalog     *catalog.Catalog
	analyzer    *analysis.Analyzer
	engine      *matching.Engine
	predictor   *prediction.Predictor
	tokens      middleware.TokenValidator
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
	corsOrigins map[string]bool
	allowAll    bool
}

// Config holds server configuration
type Config struct {
	Port        int
	CORSOrigins []string // "*" allows any origin
}

// Deps are the collaborators the server routes requests to.
type Deps struct {
	DB          DBClient
	Catalog     *catalog.Catalog
	Analyzer    *analysis.Analyzer
	Engine      *matching.Engine
	Predictor   *prediction.Predictor
	Tokens      middleware.TokenValidator
	RateLimiter *ratelimit.Limiter // nil disables rate limiting
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if deps.Tokens == nil {
		return nil, fmt.Errorf("token validator is required")
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Analyzer == nil {
		deps.Analyzer = analysis.NewAnalyzer(deps.Catalog, nil)
	}
	if deps.Engine == nil {
		deps.Engine = matching.NewEngine(deps.Catalog)
	}
	if deps.Predictor == nil {
		deps.Predictor = prediction.NewPredictor(nil)
	}

	s := &Server{
		db:          deps.DB,
		catalog:     deps.Catalog,
		analyzer:    deps.Analyzer,
		engine:      deps.Engine,
		predictor:   deps.Predictor,
		tokens:      deps.Tokens,
		rateLimiter: deps.RateLimiter,
		validate:    newValidator(),
		corsOrigins: make(map[string]bool),
	}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			s.allowAll = true
		}
		s.corsOrigins[origin] = true
	}
	if len(cfg.CORSOrigins) == 0 {
		s.allowAll = true
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	auth := middleware.AuthMiddleware(s.tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/{$}", s.handleRoot)

	mux.Handle("POST /api/predict", auth(http.HandlerFunc(s.handlePredict)))
	mux.Handle("POST /api/analyze_resume", auth(http.HandlerFunc(s.handleAnalyzeResume)))
	mux.Handle("POST /api/recommend_jobs", auth(http.HandlerFunc(s.handleRecommendJobs)))
	mux.Handle("POST /api/learning_path", auth(http.HandlerFunc(s.handleLearningPath)))
	mux.Handle("GET /api/dashboard", auth(http.HandlerFunc(s.handleDashboard)))
	mux.Handle("GET /api/history", auth(http.HandlerFunc(s.handleHistory)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers for allowed origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case s.allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && s.corsOrigins[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	if s.rateLimiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		event := logger.Info()
		if rec.status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status with HTTPStatus. Internal errors are logged and not echoed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// setRateLimitHeaders sets rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	seconds := int((info.RetryAfter + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
}

// Package server provides the HTTP REST API for the skill gap analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daniel/skillgap-analyzer/internal/advice"
	"github.com/daniel/skillgap-analyzer/internal/logger"
	"github.com/daniel/skillgap-analyzer/internal/matching"
	"github.com/daniel/skillgap-analyzer/internal/server/ratelimit"
	"github.com/daniel/skillgap-analyzer/internal/vocab"
)

// Default rate limit: requests per client per window.
const (
	defaultRateLimit  = 60
	defaultRateWindow = time.Minute
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *matching.Engine
	source     vocab.Source
	vocabulary *vocab.Cache
	advisor    *advice.Advisor
	generator  advice.Generator
	limiter    *ratelimit.Limiter
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port                 string
	SkillsSource         string
	WeakThreshold        float64
	StrongThreshold      float64
	MinStrongOccurrences int
	GeminiAPIKey         string
	GeminiModel          string
	// RateLimit is requests per client per RateWindow. Zero selects the
	// default; a negative value disables throttling.
	RateLimit  int
	RateWindow time.Duration
	Logger     *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	source, err := vocab.NewSource(context.Background(), cfg.SkillsSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open skills source: %w", err)
	}

	s := &Server{
		engine: matching.New(matching.Config{
			WeakThreshold:        cfg.WeakThreshold,
			StrongThreshold:      cfg.StrongThreshold,
			MinStrongOccurrences: cfg.MinStrongOccurrences,
		}),
		source:     source,
		vocabulary: vocab.NewCache(source),
		log:        log,
	}

	// Advice is optional; without an API key the analyzer still reports gaps.
	if cfg.GeminiAPIKey != "" {
		generator, err := advice.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			s.closeSource()
			return nil, fmt.Errorf("failed to create advice generator: %w", err)
		}
		s.generator = generator
	}
	s.advisor = advice.NewAdvisor(s.generator)

	// Initialize rate limiter
	limit, window := cfg.RateLimit, cfg.RateWindow
	if limit == 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	s.limiter = ratelimit.NewLimiter(limit, window)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /skills", s.handleListSkills)
	mux.HandleFunc("POST /skills/reload", s.handleReloadSkills)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for advice generation
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	s.log.Info("server stopped")
	return nil
}

// Close releases the server's resources. It does not stop a running
// listener; Start handles that on shutdown.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.generator != nil {
		if err := s.generator.Close(); err != nil {
			s.log.Warn("failed to close advice generator", zap.Error(err))
		}
	}
	s.closeSource()
}

func (s *Server) closeSource() {
	if closer, ok := s.source.(interface{ Close() }); ok {
		closer.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.limiter.Allow(clientID)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type contextKey string

// requestIDKey stashes the request ID set by withLogging.
const requestIDKey contextKey = "request_id"

// withLogging adds request logging and tags every request with an ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		s.log.Info("request started",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("user_agent", logger.TruncateForLog(r.UserAgent(), 120)))

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))

		s.log.Info("request completed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// requestIDFromContext returns the request ID stashed by withLogging, or
// an empty string outside the middleware chain.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// handleHome returns the service banner
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Skill Gap Analyzer Backend Running"})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID returns the rate limit key for a request. It uses the IP
// from RemoteAddr; X-Forwarded-For is ignored because the server does not
// know which proxies to trust.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

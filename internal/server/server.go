// Package server assembles the HTTP surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/dailyresults"
	"github.com/courtside/pickem/internal/database"
	"github.com/courtside/pickem/internal/games"
	"github.com/courtside/pickem/internal/handler"
	"github.com/courtside/pickem/internal/identity"
	"github.com/courtside/pickem/internal/leaderboard"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/metrics"
	"github.com/courtside/pickem/internal/picks"
	"github.com/courtside/pickem/internal/season"
)

// Config holds the server settings and shared collaborators
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string

	Seasons *season.Router
	Clock   clock.Clock
	DBPool  database.Pool
	// Dependencies are checked by /readyz next to the database
	Dependencies map[string]handler.HealthChecker
}

// Services are the domain services exposed over HTTP
type Services struct {
	Games        games.Service
	Picks        picks.Service
	Leaderboard  leaderboard.Service
	DailyResults dailyresults.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svcs),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree
func NewRouter(cfg Config, svcs Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(identity.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(cfg.DBPool, cfg.Dependencies))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(svcs.Games, svcs.Picks, cfg.Clock)
	boardHandler := handler.NewLeaderboardHandler(svcs.Leaderboard, cfg.Seasons, cfg.Clock)
	dailyHandler := handler.NewDailyResultsHandler(svcs.DailyResults)
	adminCacheHandler := handler.NewAdminCacheHandler(svcs.Games, svcs.Leaderboard, svcs.DailyResults, cfg.Seasons, cfg.Clock)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", gameHandler.HandleGetGames)
		r.Get("/games/budget", gameHandler.HandleGetBudget)

		r.Post("/picks", gameHandler.HandleSubmitPick)
		r.Delete("/picks", gameHandler.HandleCancelPick)

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", boardHandler.HandleGetLeaderboard)
			r.Get("/stats", boardHandler.HandleGetScoreStats)
			r.Get("/yesterday", boardHandler.HandleGetYesterday)
		})
		r.Get("/teams", boardHandler.HandleListTeams)

		r.Get("/daily-results", dailyHandler.HandleGetLatest)
		r.Get("/daily-results/{date}", dailyHandler.HandleGetForDate)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
			r.Post("/cache/invalidate", adminCacheHandler.HandleInvalidate)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range unloggedPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server and blocks until it stops. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edupet/engine/internal/handler"
	"github.com/edupet/engine/internal/ledger"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/metrics"
	"github.com/edupet/engine/internal/minigame"
	"github.com/edupet/engine/internal/plant"
	"github.com/edupet/engine/internal/repository"
	"github.com/edupet/engine/internal/reset"
)

// Server wires the HTTP surface over the services.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(
	port int,
	store handler.Pinger,
	userRepo repository.UserState,
	plantService plant.Service,
	ledgerService ledger.Service,
	resetService reset.Service,
	minigameService minigame.Service,
) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	userHandler := handler.NewUserHandler(userRepo, ledgerService)
	subjectHandler := handler.NewSubjectHandler(ledgerService)
	plantHandler := handler.NewPlantHandler(plantService, userRepo)
	minigameHandler := handler.NewMinigameHandler(minigameService)
	adminResetHandler := handler.NewAdminResetHandler(resetService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", userHandler.HandleGetState)

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", userHandler.HandleGetWallet)
			r.Post("/add", userHandler.HandleAddMoney)
			r.Post("/spend", userHandler.HandleSpendMoney)
			r.Post("/set", userHandler.HandleSetMoney)
		})

		r.Route("/subjects", func(r chi.Router) {
			r.Post("/complete", subjectHandler.HandleCompleteSubject)
			r.Get("/next-reward", subjectHandler.HandleNextReward)
		})

		r.Route("/plants", func(r chi.Router) {
			r.Post("/", plantHandler.HandlePlantSeed)
			r.Get("/dashboard", plantHandler.HandleDashboard)
			r.Get("/notifications", plantHandler.HandleNotifications)
			r.Get("/statistics", plantHandler.HandleStatistics)

			r.Route("/{plantID}", func(r chi.Router) {
				r.Post("/water", plantHandler.HandleWaterPlant)
				r.Post("/grow", plantHandler.HandleGrowPlant)
				r.Post("/harvest", plantHandler.HandleHarvestPlant)
			})
		})

		r.Route("/minigames", func(r chi.Router) {
			r.Get("/plays", minigameHandler.HandleRemainingPlays)
			r.Get("/stats", minigameHandler.HandleStats)
			r.Post("/memory/reward", minigameHandler.HandleMemoryReward)
			r.Post("/math/reward", minigameHandler.HandleMathReward)
			r.Post("/catch/reward", minigameHandler.HandleCatchReward)
			r.Post("/claw/play", minigameHandler.HandlePlayClaw)
			r.Post("/claw/outcome", minigameHandler.HandleClawOutcome)
		})

		r.Route("/reset", func(r chi.Router) {
			r.Get("/countdown", adminResetHandler.HandleCountdown)
			r.Get("/statistics", adminResetHandler.HandleDailyStatistics)
			r.Post("/check", adminResetHandler.HandleCheckReset)
			r.Post("/force", adminResetHandler.HandleForceReset)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
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
		start := time.Now()

		// Health checks and metrics scrapes are noise at info level
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/config"
	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

// Per-client ceilings applied to every route before the per-group
// limiters in routes.go.
const (
	globalDailyLimit  = 200
	globalHourlyLimit = 50
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(settings config.Settings, db database.Database, mailer services.Mailer, stats *services.StatsService) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", settings.Port) // Bind to 0.0.0.0 for external access
	startupTime := time.Now()

	router := newRouter(settings, db, mailer, stats)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return Server{server, startupTime}, nil
}

func newRouter(settings config.Settings, db database.Database, mailer services.Mailer, stats *services.StatsService) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	// CORS applies before anything that can write a response
	chiRouter.Use(CORSCheckMiddleware(settings.AcceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   settings.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global per-client ceilings sit under the per-route ones
	chiRouter.Use(perDay(globalDailyLimit, "200 per day").middleware)
	chiRouter.Use(perHour(globalHourlyLimit, "50 per hour").middleware)

	// Every request leaves a visitor log entry except static and health
	chiRouter.Use(VisitorLogMiddleware(db.VisitorLogRepo()))

	sessions := newSessionManager(settings.SecretKey, settings.AdminUser, settings.AdminPasswordHash, settings.CookieSecure)
	handlers := initializeHandlers(db, settings, mailer, stats, sessions)

	setupRoutes(chiRouter, handlers, sessions)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

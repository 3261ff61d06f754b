package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// Options carries the tunables the handler layer needs.
type Options struct {
	TopPicksLimit  int
	LeagueTableTTL time.Duration
}

// NewServer creates a new REST API server. redis may be nil; the service
// then reads league tables from the database on every request.
func NewServer(port string, db *store.Database, redis *cache.RedisCache, opts Options) *Server {
	handler := NewHandler(db, redis, opts)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/search", handler.SearchTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID}", handler.GetTeam).Methods("GET")
	api.HandleFunc("/teams/{teamID}/stats", handler.GetTeamStats).Methods("GET")
	api.HandleFunc("/teams/{teamID}/roster", handler.GetTeamRoster).Methods("GET")

	// Players
	api.HandleFunc("/players", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/players/search", handler.SearchPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/players/{playerID}/shooting-zones", handler.GetPlayerShootingZones).Methods("GET")
	api.HandleFunc("/players/{playerID}/assist-zones", handler.GetPlayerAssistZones).Methods("GET")
	api.HandleFunc("/players/{playerID}/play-types", handler.GetPlayerPlayTypes).Methods("GET")
	api.HandleFunc("/players/{playerID}/props", handler.GetPlayerProps).Methods("GET")
	api.HandleFunc("/players/{playerID}/game-logs", handler.GetPlayerGameLogs).Methods("GET")
	api.HandleFunc("/players/{playerID}/shooting-zone-matchup", handler.GetShootingZoneMatchup).Methods("GET")
	api.HandleFunc("/players/{playerID}/assist-zone-matchup", handler.GetAssistZoneMatchup).Methods("GET")
	api.HandleFunc("/players/{playerID}/play-type-matchup", handler.GetPlayTypeMatchup).Methods("GET")
	api.HandleFunc("/players/{playerID}/upcoming-matchup", handler.GetUpcomingMatchup).Methods("GET")

	// Schedule
	api.HandleFunc("/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/schedule/today", handler.GetTodaysSchedule).Methods("GET")
	api.HandleFunc("/schedule/upcoming", handler.GetUpcomingSchedule).Methods("GET")
	api.HandleFunc("/schedule/upcoming/rosters", handler.GetUpcomingRosters).Methods("GET")

	// Screener
	api.HandleFunc("/screener/top-picks", handler.GetTopPicks).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

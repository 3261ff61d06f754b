package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db              *store.Database
	redis           *cache.RedisCache
	teamService     *service.TeamService
	playerService   *service.PlayerService
	matchupService  *service.MatchupService
	scheduleService *service.ScheduleService
	screenerService *service.ScreenerService
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, redis *cache.RedisCache, opts Options) *Handler {
	return &Handler{
		db:              db,
		redis:           redis,
		teamService:     service.NewTeamService(db),
		playerService:   service.NewPlayerService(db),
		matchupService:  service.NewMatchupService(db, redis, opts.LeagueTableTTL),
		scheduleService: service.NewScheduleService(db),
		screenerService: service.NewScreenerService(db, opts.TopPicksLimit),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "courtside",
	}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if h.redis != nil {
		if err := h.redis.HealthCheck(r.Context()); err != nil {
			status["cache"] = err.Error()
		}
	}

	code := http.StatusOK
	if status["status"] != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// GetTeams returns all teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.GetTeams(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// SearchTeams finds a team by abbreviation
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	abbr := r.URL.Query().Get("abbr")
	if abbr == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'abbr'", nil)
		return
	}

	team, err := h.teamService.GetTeamByAbbreviation(r.Context(), abbr)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

// GetTeam returns one team by ID
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

// GetTeamStats returns a team's season pace and rating line
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	stats, err := h.teamService.GetTeamStats(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team stats not found", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetTeamRoster returns a team's roster with injury and prop annotation
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	roster, err := h.teamService.GetRoster(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch roster", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"roster": roster})
}

// GetPlayers returns players ordered by scoring with paging
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	players, err := h.playerService.GetPlayers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// SearchPlayers finds players by partial name
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("name")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'name'", nil)
		return
	}

	players, err := h.playerService.SearchPlayers(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayer returns one player's season line
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// GetPlayerShootingZones returns a player's raw charted shooting zones
func (h *Handler) GetPlayerShootingZones(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	zones, err := h.playerService.GetShootingZones(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch shooting zones", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"zones": zones})
}

// GetPlayerAssistZones returns a player's raw assist zones
func (h *Handler) GetPlayerAssistZones(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	zones, err := h.playerService.GetAssistZones(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch assist zones", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"zones": zones})
}

// GetPlayerPlayTypes returns a player's raw play-type rows
func (h *Handler) GetPlayerPlayTypes(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	types, err := h.playerService.GetPlayTypes(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch play types", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"play_types": types})
}

// GetPlayerProps returns a player's live prop markets grouped per stat
func (h *Handler) GetPlayerProps(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	props, err := h.playerService.GetPlayerProps(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch props", err)
		return
	}

	respondJSON(w, http.StatusOK, props)
}

// GetPlayerGameLogs returns recent game logs with DNP annotation
func (h *Handler) GetPlayerGameLogs(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	stat := r.URL.Query().Get("stat")

	report, err := h.playerService.GetPlayerGameLogs(r.Context(), playerID, limit, stat)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch game logs", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (h *Handler) matchupIDs(w http.ResponseWriter, r *http.Request) (playerID, opponentID int64, ok bool) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return 0, 0, false
	}
	opponentID, err = strconv.ParseInt(r.URL.Query().Get("opponent_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid or missing opponent_id", err)
		return 0, 0, false
	}
	return playerID, opponentID, true
}

// GetShootingZoneMatchup returns the six-zone shooting table for a player
// against an opponent
func (h *Handler) GetShootingZoneMatchup(w http.ResponseWriter, r *http.Request) {
	playerID, teamID, ok := h.matchupIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.matchupService.ShootingZoneMatchup(r.Context(), playerID, teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build shooting matchup", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetAssistZoneMatchup returns the assist-zone table for a player against
// an opponent
func (h *Handler) GetAssistZoneMatchup(w http.ResponseWriter, r *http.Request) {
	playerID, teamID, ok := h.matchupIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.matchupService.AssistZoneMatchup(r.Context(), playerID, teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build assist matchup", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayTypeMatchup returns the play-type table for a player against an
// opponent
func (h *Handler) GetPlayTypeMatchup(w http.ResponseWriter, r *http.Request) {
	playerID, teamID, ok := h.matchupIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.matchupService.PlayTypeMatchup(r.Context(), playerID, teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build play-type matchup", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetUpcomingMatchup returns stat-specific context for a player's next game
func (h *Handler) GetUpcomingMatchup(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	stat := r.URL.Query().Get("stat_type")
	if stat == "" {
		stat = "points"
	}

	// opponent_id overrides the schedule lookup when present.
	var opponentID int64
	if raw := r.URL.Query().Get("opponent_id"); raw != "" {
		opponentID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid opponent_id", err)
			return
		}
	}

	resp, err := h.matchupService.UpcomingMatchup(r.Context(), playerID, opponentID, stat, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build upcoming matchup", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetSchedule returns the games on one date (defaults to today Eastern)
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	date := r.URL.Query().Get("date")
	team := r.URL.Query().Get("team")

	var (
		games []*store.ScheduleEntry
		err   error
	)
	if team != "" {
		games, err = h.scheduleService.GetByTeam(r.Context(), team)
	} else if date == "" {
		games, err = h.scheduleService.GetToday(r.Context(), now)
	} else {
		if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", parseErr)
			return
		}
		games, err = h.scheduleService.GetByDate(r.Context(), date)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// GetTodaysSchedule returns today's games on the Eastern calendar
func (h *Handler) GetTodaysSchedule(w http.ResponseWriter, r *http.Request) {
	games, err := h.scheduleService.GetToday(r.Context(), time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch today's games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// GetUpcomingSchedule returns the games in the next few days
func (h *Handler) GetUpcomingSchedule(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	games, err := h.scheduleService.GetUpcoming(r.Context(), days, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch upcoming games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// GetUpcomingRosters returns rosters for today's not-yet-started games
func (h *Handler) GetUpcomingRosters(w http.ResponseWriter, r *http.Request) {
	rosters, err := h.scheduleService.GetUpcomingRosters(r.Context(), time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch upcoming rosters", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"games": rosters})
}

// GetTopPicks returns the ranked screener output for one game date
func (h *Handler) GetTopPicks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("game_date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
			return
		}
	}

	picks, err := h.screenerService.TopPicks(r.Context(), date, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to screen picks", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"picks": picks})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}

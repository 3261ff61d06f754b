package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// GameLogRepository handles player game-log data access
type GameLogRepository struct {
	db *store.Database
}

// NewGameLogRepository creates a new game-log repository
func NewGameLogRepository(db *store.Database) *GameLogRepository {
	return &GameLogRepository{db: db}
}

// GetPlayerGameLogs returns a player's box scores, most recent first, with
// result and margin computed against the schedule's final scores
func (r *GameLogRepository) GetPlayerGameLogs(ctx context.Context, playerID int64, limit int) ([]*store.GameLog, error) {
	query := `
		SELECT g.game_id, g.player_id, g.team_id, g.season, s.game_date,
			CASE
				WHEN g.team_id = s.home_team_id THEN aw.abbreviation
				ELSE ht.abbreviation
			END AS matchup,
			CASE
				WHEN s.home_score IS NULL THEN NULL
				WHEN g.team_id = s.home_team_id AND s.home_score > s.away_score THEN 'W'
				WHEN g.team_id = s.away_team_id AND s.away_score > s.home_score THEN 'W'
				ELSE 'L'
			END AS wl,
			g.min, g.pts, g.reb, g.ast, g.stl, g.blk,
			g.fgm, g.fga, g.fg3m, g.fg3a, g.ftm, g.fta, g.tov,
			CASE
				WHEN s.home_score IS NULL THEN NULL
				WHEN g.team_id = s.home_team_id THEN s.home_score - s.away_score
				ELSE s.away_score - s.home_score
			END AS game_margin,
			g.oreb, g.dreb
		FROM player_game_logs g
		JOIN schedule s ON s.game_id = g.game_id
		JOIN teams ht ON ht.team_id = s.home_team_id
		JOIN teams aw ON aw.team_id = s.away_team_id
		WHERE g.player_id = $1
		ORDER BY s.game_date DESC
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying game logs: %w", err)
	}
	defer rows.Close()

	var logs []*store.GameLog
	for rows.Next() {
		log := &store.GameLog{}
		err := rows.Scan(
			&log.GameID, &log.PlayerID, &log.TeamID, &log.Season, &log.GameDate,
			&log.Matchup, &log.WinLoss,
			&log.Minutes, &log.Points, &log.Rebounds, &log.Assists,
			&log.Steals, &log.Blocks, &log.FGM, &log.FGA,
			&log.ThreePM, &log.ThreePA, &log.FTM, &log.FTA, &log.Turnovers,
			&log.GameMargin, &log.OffRebounds, &log.DefRebounds,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// dnpStatColumns are the box-score columns a DNP probe may select. The
// column name arrives from a route parameter and must never reach the
// query unchecked.
var dnpStatColumns = map[string]string{
	"points":   "pts",
	"rebounds": "reb",
	"assists":  "ast",
	"steals":   "stl",
	"blocks":   "blk",
	"threes":   "fg3m",
	"minutes":  "min",
}

// DNPPlayer is a roster player absent from a game's box score, with their
// season average for the probed stat.
type DNPPlayer struct {
	PlayerID   int64   `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Stat       string  `json:"stat"`
	SeasonAvg  float64 `json:"season_avg"`
}

// GetDNPPlayersForGame returns teammates who sat out a game: roster
// players of the same team with no box-score row for the game, annotated
// with their season average for the requested stat. Stat names outside the
// allowlist are rejected.
func (r *GameLogRepository) GetDNPPlayersForGame(ctx context.Context, gameID string, teamID int64, stat string) ([]DNPPlayer, error) {
	column, ok := dnpStatColumns[stat]
	if !ok {
		return nil, fmt.Errorf("unsupported stat for DNP lookup: %s", stat)
	}

	// The allowlisted column is interpolated, never the caller's string.
	query := `
		SELECT p.player_id, p.player_name,
			COALESCE(AVG(g.` + column + `), 0) AS season_avg
		FROM player_stats p
		LEFT JOIN player_game_logs g ON g.player_id = p.player_id
		WHERE p.team_id = $1
			AND NOT EXISTS (
				SELECT 1 FROM player_game_logs x
				WHERE x.player_id = p.player_id AND x.game_id = $2
			)
		GROUP BY p.player_id, p.player_name
		ORDER BY season_avg DESC
		LIMIT 2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying DNP players: %w", err)
	}
	defer rows.Close()

	var players []DNPPlayer
	for rows.Next() {
		player := DNPPlayer{Stat: stat}
		if err := rows.Scan(&player.PlayerID, &player.PlayerName, &player.SeasonAvg); err != nil {
			return nil, fmt.Errorf("scanning DNP player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

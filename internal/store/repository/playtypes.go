package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// PlayTypeRepository handles play-type data access
type PlayTypeRepository struct {
	db *store.Database
}

// NewPlayTypeRepository creates a new play-type repository
func NewPlayTypeRepository(db *store.Database) *PlayTypeRepository {
	return &PlayTypeRepository{db: db}
}

// GetPlayerPlayTypes returns a player's play types ordered by scoring
func (r *PlayTypeRepository) GetPlayerPlayTypes(ctx context.Context, playerID int64) ([]store.PlayType, error) {
	query := `
		SELECT player_id, season, play_type, points, points_per_game,
			possessions, poss_per_game, ppp, fg_pct, pct_of_total_points,
			games_played
		FROM player_play_types
		WHERE player_id = $1
		ORDER BY points_per_game DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying player play types: %w", err)
	}
	defer rows.Close()

	var types []store.PlayType
	for rows.Next() {
		var pt store.PlayType
		err := rows.Scan(
			&pt.PlayerID, &pt.Season, &pt.PlayTypeName, &pt.Points,
			&pt.PointsPerGame, &pt.Possessions, &pt.PossPerGame, &pt.PPP,
			&pt.FGPct, &pt.PctOfTotalPoints, &pt.GamesPlayed,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning play type: %w", err)
		}
		types = append(types, pt)
	}

	return types, rows.Err()
}

// GetDefensivePlayTypes returns one team's defensive play-type rows
// ordered by efficiency allowed
func (r *PlayTypeRepository) GetDefensivePlayTypes(ctx context.Context, teamID int64) ([]store.DefensivePlayType, error) {
	query := `
		SELECT team_id, season, play_type, poss_pct, possessions,
			poss_per_game, ppp, fg_pct, efg_pct, points, points_per_game,
			games_played
		FROM team_defensive_play_types
		WHERE team_id = $1
		ORDER BY ppp ASC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying defensive play types: %w", err)
	}
	defer rows.Close()

	return scanDefensivePlayTypes(rows)
}

// GetAllDefensivePlayTypes returns every team's defensive play-type rows,
// the input for league-wide ranks
func (r *PlayTypeRepository) GetAllDefensivePlayTypes(ctx context.Context) ([]store.DefensivePlayType, error) {
	query := `
		SELECT team_id, season, play_type, poss_pct, possessions,
			poss_per_game, ppp, fg_pct, efg_pct, points, points_per_game,
			games_played
		FROM team_defensive_play_types
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying defensive play types: %w", err)
	}
	defer rows.Close()

	return scanDefensivePlayTypes(rows)
}

func scanDefensivePlayTypes(rows *sql.Rows) ([]store.DefensivePlayType, error) {
	var types []store.DefensivePlayType
	for rows.Next() {
		var dpt store.DefensivePlayType
		err := rows.Scan(
			&dpt.TeamID, &dpt.Season, &dpt.PlayTypeName, &dpt.PossPct,
			&dpt.Possessions, &dpt.PossPerGame, &dpt.PPP, &dpt.FGPct,
			&dpt.EFGPct, &dpt.Points, &dpt.PointsPerGame, &dpt.GamesPlayed,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning defensive play type: %w", err)
		}
		types = append(types, dpt)
	}

	return types, rows.Err()
}

package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// ZoneRepository handles shooting, assist and defensive zone data access
type ZoneRepository struct {
	db *store.Database
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *store.Database) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// GetShootingZones returns a player's charted shooting zones
func (r *ZoneRepository) GetShootingZones(ctx context.Context, playerID int64) ([]store.ShootingZone, error) {
	query := `
		SELECT player_id, season, zone_name, fgm, fga, fg_pct, efg_pct
		FROM player_shooting_zones
		WHERE player_id = $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying shooting zones: %w", err)
	}
	defer rows.Close()

	var zones []store.ShootingZone
	for rows.Next() {
		var z store.ShootingZone
		err := rows.Scan(&z.PlayerID, &z.Season, &z.ZoneName, &z.FGM, &z.FGA, &z.FGPct, &z.EFGPct)
		if err != nil {
			return nil, fmt.Errorf("scanning shooting zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

// GetAssistZones returns a player's assist zones ordered by assist count
// descending, the order the matchup table preserves
func (r *ZoneRepository) GetAssistZones(ctx context.Context, playerID int64) ([]store.AssistZone, error) {
	query := `
		SELECT player_id, season, zone_name, ast, fgm, fga, last_updated
		FROM player_assist_zones
		WHERE player_id = $1
		ORDER BY ast DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying assist zones: %w", err)
	}
	defer rows.Close()

	var zones []store.AssistZone
	for rows.Next() {
		var z store.AssistZone
		err := rows.Scan(&z.PlayerID, &z.Season, &z.ZoneName, &z.Assists, &z.AssistedFGM, &z.AssistedFGA, &z.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("scanning assist zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

// GetAllDefensiveZones returns every team's defensive zone rows, the input
// for league averages and ranks
func (r *ZoneRepository) GetAllDefensiveZones(ctx context.Context) ([]store.DefensiveZone, error) {
	query := `
		SELECT team_id, season, zone_name, opp_fgm, opp_fga, opp_fg_pct, opp_efg_pct
		FROM team_defensive_zones
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying defensive zones: %w", err)
	}
	defer rows.Close()

	var zones []store.DefensiveZone
	for rows.Next() {
		var z store.DefensiveZone
		err := rows.Scan(&z.TeamID, &z.Season, &z.ZoneName, &z.OppFGM, &z.OppFGA, &z.OppFGPct, &z.OppEFGPct)
		if err != nil {
			return nil, fmt.Errorf("scanning defensive zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

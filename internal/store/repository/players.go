package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

const playerColumns = `player_id, player_name, season, team_id, position,
		points, assists, rebounds, threes_made, threes_attempted,
		fg_attempted, steals, blocks, turnovers, fouls, ft_attempted,
		pts_plus_ast, pts_plus_reb, ast_plus_reb, pts_plus_ast_plus_reb,
		steals_plus_blocks, double_doubles, triple_doubles, games_played,
		last_updated`

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func scanPlayerRow(row *sql.Row, p *store.Player) error {
	return row.Scan(
		&p.PlayerID, &p.PlayerName, &p.Season, &p.TeamID, &p.Position,
		&p.Points, &p.Assists, &p.Rebounds, &p.ThreesMade, &p.ThreesAttempted,
		&p.FGAttempted, &p.Steals, &p.Blocks, &p.Turnovers, &p.Fouls,
		&p.FTAttempted, &p.PtsPlusAst, &p.PtsPlusReb, &p.AstPlusReb,
		&p.PtsPlusAstPlusReb, &p.StealsPlusBlocks, &p.DoubleDoubles,
		&p.TripleDoubles, &p.GamesPlayed, &p.LastUpdated,
	)
}

func scanPlayerRows(rows *sql.Rows, p *store.Player) error {
	return rows.Scan(
		&p.PlayerID, &p.PlayerName, &p.Season, &p.TeamID, &p.Position,
		&p.Points, &p.Assists, &p.Rebounds, &p.ThreesMade, &p.ThreesAttempted,
		&p.FGAttempted, &p.Steals, &p.Blocks, &p.Turnovers, &p.Fouls,
		&p.FTAttempted, &p.PtsPlusAst, &p.PtsPlusReb, &p.AstPlusReb,
		&p.PtsPlusAstPlusReb, &p.StealsPlusBlocks, &p.DoubleDoubles,
		&p.TripleDoubles, &p.GamesPlayed, &p.LastUpdated,
	)
}

// GetAll returns players ordered by scoring, with limit/offset paging
func (r *PlayerRepository) GetAll(ctx context.Context, limit, offset int) ([]*store.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM player_stats
		ORDER BY points DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		if err := scanPlayerRows(rows, player); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

// GetByID finds a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (*store.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM player_stats
		WHERE player_id = $1
	`

	player := &store.Player{}
	err := scanPlayerRow(r.db.DB().QueryRowContext(ctx, query, playerID), player)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %d", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// SearchByName finds players by case-insensitive partial name match
func (r *PlayerRepository) SearchByName(ctx context.Context, name string, limit int) ([]*store.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM player_stats
		WHERE player_name ILIKE '%' || $1 || '%'
		ORDER BY points DESC
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, name, limit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		if err := scanPlayerRows(rows, player); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

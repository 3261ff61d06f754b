package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/names"
	"github.com/fortuna/courtside/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns all NBA teams ordered by abbreviation
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := `
		SELECT team_id, name, full_name, abbreviation, city, state,
			year_founded, last_updated
		FROM teams
		ORDER BY abbreviation
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		err := rows.Scan(
			&team.TeamID, &team.Name, &team.FullName, &team.Abbreviation,
			&team.City, &team.State, &team.YearFounded, &team.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByID finds a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*store.Team, error) {
	query := `
		SELECT team_id, name, full_name, abbreviation, city, state,
			year_founded, last_updated
		FROM teams
		WHERE team_id = $1
	`

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(
		&team.TeamID, &team.Name, &team.FullName, &team.Abbreviation,
		&team.City, &team.State, &team.YearFounded, &team.LastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// GetByAbbreviation finds a team by abbreviation (e.g., "LAL", "BOS")
func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbr string) (*store.Team, error) {
	query := `
		SELECT team_id, name, full_name, abbreviation, city, state,
			year_founded, last_updated
		FROM teams
		WHERE abbreviation = $1
	`

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, abbr).Scan(
		&team.TeamID, &team.Name, &team.FullName, &team.Abbreviation,
		&team.City, &team.State, &team.YearFounded, &team.LastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %s", abbr)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// GetTeamStats returns the team's season pace and rating line
func (r *TeamRepository) GetTeamStats(ctx context.Context, teamID int64) (*store.TeamStats, error) {
	query := `
		SELECT team_id, season, pace, off_rating, def_rating, net_rating,
			games_played, wins, losses
		FROM team_pace
		WHERE team_id = $1
	`

	stats := &store.TeamStats{}
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(
		&stats.TeamID, &stats.Season, &stats.Pace, &stats.OffRating,
		&stats.DefRating, &stats.NetRating, &stats.GamesPlayed,
		&stats.Wins, &stats.Losses,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team stats not found: %d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team stats: %w", err)
	}

	return stats, nil
}

// GetRoster returns a team's players with injury status and whether any
// live prop line exists for them. The prop lookup matches on the exact
// stored name first and the diacritic-stripped spelling second, since the
// prop feed records plain-ASCII names.
func (r *TeamRepository) GetRoster(ctx context.Context, teamID int64) ([]*store.RosterEntry, error) {
	query := `
		SELECT p.player_id, p.player_name, p.season, p.team_id, p.position,
			p.points, p.assists, p.rebounds, p.threes_made, p.threes_attempted,
			p.fg_attempted, p.steals, p.blocks, p.turnovers, p.fouls,
			p.ft_attempted, p.pts_plus_ast, p.pts_plus_reb, p.ast_plus_reb,
			p.pts_plus_ast_plus_reb, p.steals_plus_blocks, p.double_doubles,
			p.triple_doubles, p.games_played, p.last_updated,
			i.status AS injury_status
		FROM player_stats p
		LEFT JOIN player_injuries i ON i.player_id = p.player_id
		WHERE p.team_id = $1
		ORDER BY p.points DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	var roster []*store.RosterEntry
	for rows.Next() {
		entry := &store.RosterEntry{}
		err := rows.Scan(
			&entry.PlayerID, &entry.PlayerName, &entry.Season, &entry.TeamID,
			&entry.Position, &entry.Points, &entry.Assists, &entry.Rebounds,
			&entry.ThreesMade, &entry.ThreesAttempted, &entry.FGAttempted,
			&entry.Steals, &entry.Blocks, &entry.Turnovers, &entry.Fouls,
			&entry.FTAttempted, &entry.PtsPlusAst, &entry.PtsPlusReb,
			&entry.AstPlusReb, &entry.PtsPlusAstPlusReb, &entry.StealsPlusBlocks,
			&entry.DoubleDoubles, &entry.TripleDoubles, &entry.GamesPlayed,
			&entry.LastUpdated, &entry.InjuryStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning roster entry: %w", err)
		}
		roster = append(roster, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, entry := range roster {
		hasProps, err := r.hasLiveProps(ctx, entry.PlayerName)
		if err != nil {
			return nil, err
		}
		entry.HasProps = hasProps
	}

	return roster, nil
}

func (r *TeamRepository) hasLiveProps(ctx context.Context, playerName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM prop_lines WHERE full_name IN ($1, $2)
		)
	`

	var exists bool
	err := r.db.DB().QueryRowContext(ctx, query, playerName, names.Normalize(playerName)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probing prop lines for %s: %w", playerName, err)
	}
	return exists, nil
}

// GetReboundsAllowed returns each team's rebounds conceded per game from
// opponent game logs, ranked ascending (1 = fewest allowed).
func (r *TeamRepository) GetReboundsAllowed(ctx context.Context) ([]*store.ReboundsAllowed, error) {
	query := `
		WITH conceded AS (
			SELECT s.opponent_id AS team_id,
				SUM(g.reb)::float / COUNT(DISTINCT g.game_id) AS rebounds_per_game
			FROM player_game_logs g
			JOIN (
				SELECT game_id, home_team_id AS team_id, away_team_id AS opponent_id FROM schedule
				UNION ALL
				SELECT game_id, away_team_id AS team_id, home_team_id AS opponent_id FROM schedule
			) s ON s.game_id = g.game_id AND s.team_id = g.team_id
			GROUP BY s.opponent_id
		)
		SELECT team_id, rebounds_per_game,
			RANK() OVER (ORDER BY rebounds_per_game ASC) AS rank
		FROM conceded
		ORDER BY rank
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rebounds allowed: %w", err)
	}
	defer rows.Close()

	var allowed []*store.ReboundsAllowed
	for rows.Next() {
		ra := &store.ReboundsAllowed{}
		if err := rows.Scan(&ra.TeamID, &ra.ReboundsPerGame, &ra.Rank); err != nil {
			return nil, fmt.Errorf("scanning rebounds allowed: %w", err)
		}
		allowed = append(allowed, ra)
	}

	return allowed, rows.Err()
}

// GetAssistsAllowed returns the average assists per player-game that
// opposing players record in the team's games. Nil when no game logs
// cover the team yet.
func (r *TeamRepository) GetAssistsAllowed(ctx context.Context, teamID int64) (*float64, error) {
	query := `
		SELECT AVG(ast)
		FROM player_game_logs
		WHERE team_id <> $1 AND game_id IN (
			SELECT game_id FROM schedule
			WHERE home_team_id = $1 OR away_team_id = $1
		)
	`

	var avg sql.NullFloat64
	if err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(&avg); err != nil {
		return nil, fmt.Errorf("querying assists allowed: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/names"
	"github.com/fortuna/courtside/internal/store"
)

// PropRepository handles prop-line and sharp-line data access
type PropRepository struct {
	db *store.Database
}

// NewPropRepository creates a new prop repository
func NewPropRepository(db *store.Database) *PropRepository {
	return &PropRepository{db: db}
}

// GetPlayerProps returns the live reference lines for one player, one row
// per (stat, choice). Successive scrapes accumulate rows; only the most
// recently updated row per combination is live. Exact name match is tried
// first, then the diacritic-stripped spelling, since the prop feed records
// plain-ASCII names.
func (r *PropRepository) GetPlayerProps(ctx context.Context, playerName string) ([]*store.PropLine, error) {
	props, err := r.propsByName(ctx, playerName)
	if err != nil {
		return nil, err
	}
	if len(props) > 0 {
		return props, nil
	}

	normalized := names.Normalize(playerName)
	if normalized == playerName {
		return props, nil
	}
	return r.propsByName(ctx, normalized)
}

func (r *PropRepository) propsByName(ctx context.Context, playerName string) ([]*store.PropLine, error) {
	query := `
		SELECT id, full_name, team_name, opponent_name, stat_name,
			stat_value, choice, american_price, decimal_price, scheduled_at
		FROM (
			SELECT id, full_name, team_name, opponent_name, stat_name,
				stat_value, choice, american_price, decimal_price, scheduled_at,
				ROW_NUMBER() OVER (
					PARTITION BY stat_name, choice
					ORDER BY updated_at DESC
				) AS rn
			FROM prop_lines
			WHERE full_name = $1
		) latest
		WHERE rn = 1
		ORDER BY stat_name, choice
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerName)
	if err != nil {
		return nil, fmt.Errorf("querying prop lines: %w", err)
	}
	defer rows.Close()

	var props []*store.PropLine
	for rows.Next() {
		prop := &store.PropLine{}
		err := rows.Scan(
			&prop.ID, &prop.FullName, &prop.TeamName, &prop.OpponentName,
			&prop.StatName, &prop.StatValue, &prop.Choice,
			&prop.AmericanPrice, &prop.DecimalPrice, &prop.ScheduledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning prop line: %w", err)
		}
		props = append(props, prop)
	}

	return props, rows.Err()
}

// TopPickCandidate is one live reference over-line joined with one sharp
// book's quote for the same market, ready for the screener.
type TopPickCandidate struct {
	PlayerName string
	StatName   string
	RefLine    float64
	RefOdds    *int
	Sportsbook string
	BookLine   float64
	OverOdds   *int
	UnderOdds  *int
	HomeTeam   string
	AwayTeam   string
	GameDate   string
	GameTime   *string
}

// GetTopPickCandidates joins the latest reference over-lines for one game
// date against every sharp book's quotes for the same player and stat.
// Game date and time ride along so the screener can drop tipped-off games.
func (r *PropRepository) GetTopPickCandidates(ctx context.Context, gameDate string) ([]TopPickCandidate, error) {
	query := `
		WITH latest_ref AS (
			SELECT full_name, stat_name, stat_value, american_price
			FROM (
				SELECT full_name, stat_name, stat_value, american_price,
					ROW_NUMBER() OVER (
						PARTITION BY full_name, stat_name, choice
						ORDER BY updated_at DESC
					) AS rn
				FROM prop_lines
				WHERE choice = 'over' AND game_date = $1
			) p
			WHERE rn = 1
		)
		SELECT ref.full_name, ref.stat_name, ref.stat_value, ref.american_price,
			sl.sportsbook, sl.line, sl.over_odds, sl.under_odds,
			sl.home_team, sl.away_team, sl.game_date, sl.game_time
		FROM latest_ref ref
		JOIN sharp_lines sl
			ON sl.player_name = ref.full_name
			AND sl.stat_name = ref.stat_name
			AND sl.game_date = $1
		ORDER BY ref.full_name, ref.stat_name, sl.sportsbook
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameDate)
	if err != nil {
		return nil, fmt.Errorf("querying top pick candidates: %w", err)
	}
	defer rows.Close()

	var candidates []TopPickCandidate
	for rows.Next() {
		var c TopPickCandidate
		err := rows.Scan(
			&c.PlayerName, &c.StatName, &c.RefLine, &c.RefOdds,
			&c.Sportsbook, &c.BookLine, &c.OverOdds, &c.UnderOdds,
			&c.HomeTeam, &c.AwayTeam, &c.GameDate, &c.GameTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning top pick candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

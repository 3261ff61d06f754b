package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/gametime"
	"github.com/fortuna/courtside/internal/store"
)

const scheduleColumns = `s.game_id, s.game_date, s.game_time, s.game_status,
		s.home_team_id, ht.full_name, ht.abbreviation, ht.city,
		s.away_team_id, aw.full_name, aw.abbreviation, aw.city,
		s.home_score, s.away_score`

const scheduleJoins = `
		FROM schedule s
		JOIN teams ht ON ht.team_id = s.home_team_id
		JOIN teams aw ON aw.team_id = s.away_team_id`

// ScheduleRepository handles schedule data access. Methods that depend on
// "today" take the request clock as a parameter so a single instant covers
// the whole request.
type ScheduleRepository struct {
	db *store.Database
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *store.Database) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func scanScheduleRows(rows *sql.Rows, e *store.ScheduleEntry) error {
	return rows.Scan(
		&e.GameID, &e.GameDate, &e.GameTime, &e.GameStatus,
		&e.HomeTeamID, &e.HomeTeamName, &e.HomeTeamAbbreviation, &e.HomeTeamCity,
		&e.AwayTeamID, &e.AwayTeamName, &e.AwayTeamAbbreviation, &e.AwayTeamCity,
		&e.HomeScore, &e.AwayScore,
	)
}

func (r *ScheduleRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*store.ScheduleEntry, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}
	defer rows.Close()

	var entries []*store.ScheduleEntry
	for rows.Next() {
		entry := &store.ScheduleEntry{}
		if err := scanScheduleRows(rows, entry); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ByDate returns the games scheduled on one ISO calendar date
func (r *ScheduleRepository) ByDate(ctx context.Context, date string) ([]*store.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleColumns + scheduleJoins + `
		WHERE s.game_date = $1
		ORDER BY s.game_time, s.game_id
	`
	return r.queryEntries(ctx, query, date)
}

// Today returns the games on the Eastern calendar date of now
func (r *ScheduleRepository) Today(ctx context.Context, now time.Time) ([]*store.ScheduleEntry, error) {
	return r.ByDate(ctx, gametime.EasternDate(now))
}

// ByTeam returns a team's games for the season, most recent first
func (r *ScheduleRepository) ByTeam(ctx context.Context, teamID int64) ([]*store.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleColumns + scheduleJoins + `
		WHERE s.home_team_id = $1 OR s.away_team_id = $1
		ORDER BY s.game_date DESC, s.game_id
	`
	return r.queryEntries(ctx, query, teamID)
}

// Upcoming returns the games in the window [today, today+days] on the
// Eastern calendar
func (r *ScheduleRepository) Upcoming(ctx context.Context, days int, now time.Time) ([]*store.ScheduleEntry, error) {
	from := gametime.EasternDate(now)
	to := gametime.EasternDate(now.AddDate(0, 0, days))

	query := `
		SELECT ` + scheduleColumns + scheduleJoins + `
		WHERE s.game_date >= $1 AND s.game_date <= $2
		ORDER BY s.game_date, s.game_time, s.game_id
	`
	return r.queryEntries(ctx, query, from, to)
}

// NextGameForTeam returns a team's next game on or after today that has
// not finished, or nil when the schedule is exhausted
func (r *ScheduleRepository) NextGameForTeam(ctx context.Context, teamID int64, now time.Time) (*store.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleColumns + scheduleJoins + `
		WHERE (s.home_team_id = $1 OR s.away_team_id = $1)
			AND s.game_date >= $2
			AND s.home_score IS NULL
		ORDER BY s.game_date, s.game_time, s.game_id
		LIMIT 1
	`

	entries, err := r.queryEntries(ctx, query, teamID, gametime.EasternDate(now))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

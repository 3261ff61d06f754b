package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/gametime"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// ScheduleService handles schedule reads. Every method that depends on
// "now" takes the request clock as a parameter so a single instant covers
// all filtering within one request.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	teamRepo     *repository.TeamRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(db *store.Database) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: repository.NewScheduleRepository(db),
		teamRepo:     repository.NewTeamRepository(db),
	}
}

// GetByDate returns the games on one ISO date
func (s *ScheduleService) GetByDate(ctx context.Context, date string) ([]*store.ScheduleEntry, error) {
	return s.scheduleRepo.ByDate(ctx, date)
}

// GetToday returns today's games on the Eastern calendar
func (s *ScheduleService) GetToday(ctx context.Context, now time.Time) ([]*store.ScheduleEntry, error) {
	return s.scheduleRepo.Today(ctx, now)
}

// GetUpcoming returns the games within days of now
func (s *ScheduleService) GetUpcoming(ctx context.Context, days int, now time.Time) ([]*store.ScheduleEntry, error) {
	if days <= 0 || days > 14 {
		days = 3
	}
	return s.scheduleRepo.Upcoming(ctx, days, now)
}

// GetByTeam returns a team's schedule by abbreviation
func (s *ScheduleService) GetByTeam(ctx context.Context, abbr string) ([]*store.ScheduleEntry, error) {
	team, err := s.teamRepo.GetByAbbreviation(ctx, abbr)
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.ByTeam(ctx, team.TeamID)
}

// GameRosters is one not-yet-started game with both teams' rosters.
type GameRosters struct {
	Game       *store.ScheduleEntry `json:"game"`
	HomeRoster []*store.RosterEntry `json:"home_roster"`
	AwayRoster []*store.RosterEntry `json:"away_roster"`
}

// GetUpcomingRosters returns rosters for today's and tomorrow's games that
// have not tipped off yet, evaluated against a single reference instant
func (s *ScheduleService) GetUpcomingRosters(ctx context.Context, now time.Time) ([]*GameRosters, error) {
	games, err := s.scheduleRepo.Upcoming(ctx, 1, now)
	if err != nil {
		return nil, fmt.Errorf("fetching upcoming games: %w", err)
	}

	var result []*GameRosters
	for _, game := range games {
		var gameTime *string
		if game.GameTime.Valid {
			gameTime = &game.GameTime.String
		}
		if gametime.HasGameStarted(game.GameDate, gameTime, now) {
			continue
		}

		home, err := s.teamRepo.GetRoster(ctx, game.HomeTeamID)
		if err != nil {
			return nil, fmt.Errorf("fetching home roster: %w", err)
		}
		away, err := s.teamRepo.GetRoster(ctx, game.AwayTeamID)
		if err != nil {
			return nil, fmt.Errorf("fetching away roster: %w", err)
		}

		result = append(result, &GameRosters{Game: game, HomeRoster: home, AwayRoster: away})
	}

	return result, nil
}

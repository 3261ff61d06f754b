package service

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// TeamService handles team reads and roster annotation
type TeamService struct {
	teamRepo *repository.TeamRepository
}

// NewTeamService creates a new team service
func NewTeamService(db *store.Database) *TeamService {
	return &TeamService{
		teamRepo: repository.NewTeamRepository(db),
	}
}

// GetTeams returns all teams
func (s *TeamService) GetTeams(ctx context.Context) ([]*store.Team, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns one team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (*store.Team, error) {
	return s.teamRepo.GetByID(ctx, teamID)
}

// GetTeamByAbbreviation returns one team by its abbreviation
func (s *TeamService) GetTeamByAbbreviation(ctx context.Context, abbr string) (*store.Team, error) {
	return s.teamRepo.GetByAbbreviation(ctx, abbr)
}

// GetTeamStats returns a team's season pace and rating line
func (s *TeamService) GetTeamStats(ctx context.Context, teamID int64) (*store.TeamStats, error) {
	return s.teamRepo.GetTeamStats(ctx, teamID)
}

// GetRoster returns a team's players with injury status and prop coverage
func (s *TeamService) GetRoster(ctx context.Context, teamID int64) ([]*store.RosterEntry, error) {
	roster, err := s.teamRepo.GetRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	return roster, nil
}

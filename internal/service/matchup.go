package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/matchup"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

const (
	leagueZonesKey     = "league:defensive_zones"
	leaguePlayTypesKey = "league:defensive_play_types"
)

// MatchupService builds player-vs-opponent matchup tables. League-wide
// defensive tables are optionally fronted by Redis with a short TTL; they
// change only when the ingestion process refreshes the cache, never within
// a request.
type MatchupService struct {
	playerRepo   *repository.PlayerRepository
	teamRepo     *repository.TeamRepository
	zoneRepo     *repository.ZoneRepository
	playTypeRepo *repository.PlayTypeRepository
	scheduleRepo *repository.ScheduleRepository

	redis    *cache.RedisCache
	cacheTTL time.Duration
}

// NewMatchupService creates a new matchup service. redis may be nil, in
// which case league tables are read from the database every request.
func NewMatchupService(db *store.Database, redis *cache.RedisCache, cacheTTL time.Duration) *MatchupService {
	return &MatchupService{
		playerRepo:   repository.NewPlayerRepository(db),
		teamRepo:     repository.NewTeamRepository(db),
		zoneRepo:     repository.NewZoneRepository(db),
		playTypeRepo: repository.NewPlayTypeRepository(db),
		scheduleRepo: repository.NewScheduleRepository(db),
		redis:        redis,
		cacheTTL:     cacheTTL,
	}
}

func (s *MatchupService) leagueDefensiveZones(ctx context.Context) ([]store.DefensiveZone, error) {
	if s.redis != nil {
		var zones []store.DefensiveZone
		if err := s.redis.GetJSON(ctx, leagueZonesKey, &zones); err == nil {
			return zones, nil
		}
	}

	zones, err := s.zoneRepo.GetAllDefensiveZones(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		// Best effort; a failed write just means the next request rereads.
		_ = s.redis.SetJSON(ctx, leagueZonesKey, zones, s.cacheTTL)
	}

	return zones, nil
}

func (s *MatchupService) leagueDefensivePlayTypes(ctx context.Context) ([]store.DefensivePlayType, error) {
	if s.redis != nil {
		var types []store.DefensivePlayType
		if err := s.redis.GetJSON(ctx, leaguePlayTypesKey, &types); err == nil {
			return types, nil
		}
	}

	types, err := s.playTypeRepo.GetAllDefensivePlayTypes(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.SetJSON(ctx, leaguePlayTypesKey, types, s.cacheTTL)
	}

	return types, nil
}

// ShootingZoneResponse is the shooting matchup with names attached for
// display.
type ShootingZoneResponse struct {
	PlayerName   string                    `json:"player_name"`
	OpponentName string                    `json:"opponent_name"`
	Matchup      matchup.ShootingZoneTable `json:"matchup"`
}

// ShootingZoneMatchup builds the six-zone shooting table for a player
// against an opponent team
func (s *MatchupService) ShootingZoneMatchup(ctx context.Context, playerID, opponentID int64) (*ShootingZoneResponse, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.teamRepo.GetByID(ctx, opponentID)
	if err != nil {
		return nil, err
	}

	playerZones, err := s.zoneRepo.GetShootingZones(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching shooting zones: %w", err)
	}
	leagueZones, err := s.leagueDefensiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching defensive zones: %w", err)
	}

	return &ShootingZoneResponse{
		PlayerName:   player.PlayerName,
		OpponentName: opponent.FullName,
		Matchup:      matchup.ShootingZones(playerZones, opponentID, leagueZones),
	}, nil
}

// AssistZoneResponse is the assist matchup with names attached.
type AssistZoneResponse struct {
	PlayerName   string                  `json:"player_name"`
	OpponentName string                  `json:"opponent_name"`
	Matchup      matchup.AssistZoneTable `json:"matchup"`
}

// AssistZoneMatchup builds the assist-zone table for a player against an
// opponent team
func (s *MatchupService) AssistZoneMatchup(ctx context.Context, playerID, opponentID int64) (*AssistZoneResponse, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.teamRepo.GetByID(ctx, opponentID)
	if err != nil {
		return nil, err
	}

	assistZones, err := s.zoneRepo.GetAssistZones(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching assist zones: %w", err)
	}
	leagueZones, err := s.leagueDefensiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching defensive zones: %w", err)
	}

	return &AssistZoneResponse{
		PlayerName:   player.PlayerName,
		OpponentName: opponent.FullName,
		Matchup:      matchup.AssistZones(assistZones, opponentID, leagueZones),
	}, nil
}

// PlayTypeResponse is the play-type matchup with names attached.
type PlayTypeResponse struct {
	PlayerName   string                `json:"player_name"`
	OpponentName string                `json:"opponent_name"`
	Matchup      []matchup.PlayTypeRow `json:"matchup"`
}

// PlayTypeMatchup builds the play-type table for a player against an
// opponent team, ranked league-wide
func (s *MatchupService) PlayTypeMatchup(ctx context.Context, playerID, opponentID int64) (*PlayTypeResponse, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.teamRepo.GetByID(ctx, opponentID)
	if err != nil {
		return nil, err
	}

	playerTypes, err := s.playTypeRepo.GetPlayerPlayTypes(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player play types: %w", err)
	}
	oppDefense, err := s.playTypeRepo.GetDefensivePlayTypes(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("fetching defensive play types: %w", err)
	}
	leagueTypes, err := s.leagueDefensivePlayTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching league play types: %w", err)
	}

	ranks := matchup.DefensivePlayTypeRanks(leagueTypes)

	return &PlayTypeResponse{
		PlayerName:   player.PlayerName,
		OpponentName: opponent.FullName,
		Matchup:      matchup.PlayTypes(playerTypes, oppDefense, ranks, opponentID),
	}, nil
}

// UpcomingMatchupResponse is the stat-specific context for a player's next
// game. Pace and defensive rating describe the opponent and are present for
// every stat category; the remaining fields are set per the requested one.
type UpcomingMatchupResponse struct {
	PlayerName   string               `json:"player_name"`
	OpponentName string               `json:"opponent_name"`
	Game         *store.ScheduleEntry `json:"game,omitempty"`
	Stat         string               `json:"stat"`

	Pace      *float64 `json:"pace,omitempty"`
	DefRating *float64 `json:"def_rating,omitempty"`

	ShootingZones       *matchup.ShootingZoneTable `json:"shooting_zones,omitempty"`
	DominantZones       []matchup.Dominant         `json:"dominant_zones,omitempty"`
	DominantPlayTypes   []matchup.Dominant         `json:"dominant_play_types,omitempty"`
	AssistZones         *matchup.AssistZoneTable   `json:"assist_zones,omitempty"`
	DominantAssistZones []matchup.Dominant         `json:"dominant_assist_zones,omitempty"`
	AssistsAllowed      *float64                   `json:"assists_allowed,omitempty"`
	Rebounds            *store.ReboundsAllowed     `json:"rebounds,omitempty"`
}

// UpcomingMatchup builds next-game context for one stat category: shooting
// zones plus dominant zone and play-type ranks for points, assist zones
// plus assists conceded for assists, rebounds conceded for rebounds, and
// the opponent's pace and defensive rating either way. When opponentID is
// zero the opponent comes from the player's next scheduled game. The
// request clock decides what "next" means and is passed in, not read here.
func (s *MatchupService) UpcomingMatchup(ctx context.Context, playerID, opponentID int64, stat string, now time.Time) (*UpcomingMatchupResponse, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var game *store.ScheduleEntry
	if opponentID == 0 {
		if !player.TeamID.Valid {
			return nil, fmt.Errorf("player %d has no current team", playerID)
		}
		game, err = s.scheduleRepo.NextGameForTeam(ctx, player.TeamID.Int64, now)
		if err != nil {
			return nil, fmt.Errorf("fetching next game: %w", err)
		}
		if game == nil {
			return nil, fmt.Errorf("no upcoming game for player %d", playerID)
		}
		opponentID = game.HomeTeamID
		if opponentID == player.TeamID.Int64 {
			opponentID = game.AwayTeamID
		}
	}

	opponent, err := s.teamRepo.GetByID(ctx, opponentID)
	if err != nil {
		return nil, err
	}

	resp := &UpcomingMatchupResponse{
		PlayerName:   player.PlayerName,
		OpponentName: opponent.FullName,
		Game:         game,
		Stat:         stat,
	}

	// Opponent pace and defensive rating, when charted.
	if stats, err := s.teamRepo.GetTeamStats(ctx, opponentID); err == nil {
		if stats.Pace.Valid {
			resp.Pace = &stats.Pace.Float64
		}
		if stats.DefRating.Valid {
			resp.DefRating = &stats.DefRating.Float64
		}
	}

	switch stat {
	case "points":
		playerZones, err := s.zoneRepo.GetShootingZones(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("fetching shooting zones: %w", err)
		}
		leagueZones, err := s.leagueDefensiveZones(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching defensive zones: %w", err)
		}
		table := matchup.ShootingZones(playerZones, opponentID, leagueZones)
		resp.ShootingZones = &table
		resp.DominantZones = matchup.DominantShootingZones(table, 2)

		playerTypes, err := s.playTypeRepo.GetPlayerPlayTypes(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("fetching player play types: %w", err)
		}
		oppDefense, err := s.playTypeRepo.GetDefensivePlayTypes(ctx, opponentID)
		if err != nil {
			return nil, fmt.Errorf("fetching defensive play types: %w", err)
		}
		leagueTypes, err := s.leagueDefensivePlayTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching league play types: %w", err)
		}
		ranks := matchup.DefensivePlayTypeRanks(leagueTypes)
		resp.DominantPlayTypes = matchup.DominantPlayTypes(
			matchup.PlayTypes(playerTypes, oppDefense, ranks, opponentID), 2)
	case "assists":
		assistZones, err := s.zoneRepo.GetAssistZones(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("fetching assist zones: %w", err)
		}
		leagueZones, err := s.leagueDefensiveZones(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching defensive zones: %w", err)
		}
		table := matchup.AssistZones(assistZones, opponentID, leagueZones)
		resp.AssistZones = &table
		resp.DominantAssistZones = matchup.DominantAssistZones(table, 2)

		allowed, err := s.teamRepo.GetAssistsAllowed(ctx, opponentID)
		if err != nil {
			return nil, fmt.Errorf("fetching assists allowed: %w", err)
		}
		resp.AssistsAllowed = allowed
	case "rebounds":
		allowed, err := s.teamRepo.GetReboundsAllowed(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching rebounds allowed: %w", err)
		}
		for _, ra := range allowed {
			if ra.TeamID == opponentID {
				resp.Rebounds = ra
				break
			}
		}
	default:
		return nil, fmt.Errorf("unsupported matchup stat: %s", stat)
	}

	return resp, nil
}

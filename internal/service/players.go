package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// statOrder fixes the display order of prop stat categories; unknown
// categories sort after the known ones, alphabetically.
var statOrder = map[string]int{
	"points":                1,
	"rebounds":              2,
	"assists":               3,
	"threes":                4,
	"pts_plus_ast":          5,
	"pts_plus_reb":          6,
	"ast_plus_reb":          7,
	"pts_plus_ast_plus_reb": 8,
	"steals":                9,
	"blocks":                10,
	"steals_plus_blocks":    11,
	"turnovers":             12,
}

// PlayerService handles player reads, prop lines and game logs
type PlayerService struct {
	playerRepo   *repository.PlayerRepository
	propRepo     *repository.PropRepository
	gameLogRepo  *repository.GameLogRepository
	zoneRepo     *repository.ZoneRepository
	playTypeRepo *repository.PlayTypeRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		playerRepo:   repository.NewPlayerRepository(db),
		propRepo:     repository.NewPropRepository(db),
		gameLogRepo:  repository.NewGameLogRepository(db),
		zoneRepo:     repository.NewZoneRepository(db),
		playTypeRepo: repository.NewPlayTypeRepository(db),
	}
}

// GetPlayers returns players ordered by scoring with paging
func (s *PlayerService) GetPlayers(ctx context.Context, limit, offset int) ([]*store.Player, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.playerRepo.GetAll(ctx, limit, offset)
}

// GetPlayer returns one player by ID
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (*store.Player, error) {
	return s.playerRepo.GetByID(ctx, playerID)
}

// SearchPlayers finds players by partial name
func (s *PlayerService) SearchPlayers(ctx context.Context, name string) ([]*store.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("search name must not be empty")
	}
	return s.playerRepo.SearchByName(ctx, name, 25)
}

// GetShootingZones returns a player's raw charted shooting zones
func (s *PlayerService) GetShootingZones(ctx context.Context, playerID int64) ([]store.ShootingZone, error) {
	return s.zoneRepo.GetShootingZones(ctx, playerID)
}

// GetAssistZones returns a player's raw assist zones, highest volume first
func (s *PlayerService) GetAssistZones(ctx context.Context, playerID int64) ([]store.AssistZone, error) {
	return s.zoneRepo.GetAssistZones(ctx, playerID)
}

// GetPlayTypes returns a player's raw play-type rows, highest scoring first
func (s *PlayerService) GetPlayTypes(ctx context.Context, playerID int64) ([]store.PlayType, error) {
	return s.playTypeRepo.GetPlayerPlayTypes(ctx, playerID)
}

// PropMarket is the live over/under pair for one stat category.
type PropMarket struct {
	StatName string          `json:"stat_name"`
	Over     *store.PropLine `json:"over,omitempty"`
	Under    *store.PropLine `json:"under,omitempty"`
}

// PlayerProps is every live market for one player, ordered by stat
// importance.
type PlayerProps struct {
	PlayerName string       `json:"player_name"`
	Markets    []PropMarket `json:"markets"`
}

// GetPlayerProps returns a player's live prop markets grouped per stat
func (s *PlayerService) GetPlayerProps(ctx context.Context, playerID int64) (*PlayerProps, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	lines, err := s.propRepo.GetPlayerProps(ctx, player.PlayerName)
	if err != nil {
		return nil, fmt.Errorf("fetching prop lines: %w", err)
	}

	byStat := map[string]*PropMarket{}
	order := []string{}
	for _, line := range lines {
		market, ok := byStat[line.StatName]
		if !ok {
			market = &PropMarket{StatName: line.StatName}
			byStat[line.StatName] = market
			order = append(order, line.StatName)
		}
		switch line.Choice {
		case "over":
			market.Over = line
		case "under":
			market.Under = line
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		oi, oki := statOrder[order[i]]
		oj, okj := statOrder[order[j]]
		if oki && okj {
			return oi < oj
		}
		if oki != okj {
			return oki
		}
		return order[i] < order[j]
	})

	props := &PlayerProps{PlayerName: player.PlayerName, Markets: make([]PropMarket, 0, len(order))}
	for _, stat := range order {
		props.Markets = append(props.Markets, *byStat[stat])
	}

	return props, nil
}

// GameLogEntry is one box score together with the teammates who sat that
// particular game out. DNP teammates shift playing time and usage, so each
// game carries its own list.
type GameLogEntry struct {
	*store.GameLog
	DNPPlayers []repository.DNPPlayer `json:"dnp_players,omitempty"`
}

// GameLogReport is a player's recent box scores, each annotated per game.
type GameLogReport struct {
	PlayerName string         `json:"player_name"`
	Logs       []GameLogEntry `json:"logs"`
}

// annotateGameLogs pairs every log with the DNP list for its own game.
func annotateGameLogs(logs []*store.GameLog, lookup func(gameID string) ([]repository.DNPPlayer, error)) ([]GameLogEntry, error) {
	entries := make([]GameLogEntry, 0, len(logs))
	for _, gl := range logs {
		dnp, err := lookup(gl.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching DNP players: %w", err)
		}
		entries = append(entries, GameLogEntry{GameLog: gl, DNPPlayers: dnp})
	}
	return entries, nil
}

// GetPlayerGameLogs returns recent game logs, each annotated with the
// teammates on the player's current team who sat that game out for the
// given stat category
func (s *PlayerService) GetPlayerGameLogs(ctx context.Context, playerID int64, limit int, stat string) (*GameLogReport, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 82 {
		limit = 10
	}
	if stat == "" {
		stat = "points"
	}

	logs, err := s.gameLogRepo.GetPlayerGameLogs(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching game logs: %w", err)
	}

	entries, err := annotateGameLogs(logs, func(gameID string) ([]repository.DNPPlayer, error) {
		if !player.TeamID.Valid {
			return nil, nil
		}
		return s.gameLogRepo.GetDNPPlayersForGame(ctx, gameID, player.TeamID.Int64, stat)
	})
	if err != nil {
		return nil, err
	}

	return &GameLogReport{PlayerName: player.PlayerName, Logs: entries}, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/gametime"
	"github.com/fortuna/courtside/internal/screener"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// ScreenerService produces the ranked top-picks list.
type ScreenerService struct {
	propRepo *repository.PropRepository
	limit    int
}

// NewScreenerService creates a new screener service with the configured
// pick limit
func NewScreenerService(db *store.Database, limit int) *ScreenerService {
	if limit <= 0 {
		limit = screener.DefaultLimit
	}
	return &ScreenerService{
		propRepo: repository.NewPropRepository(db),
		limit:    limit,
	}
}

// TopPicks screens the given game date, defaulting to today on the
// Eastern calendar. The request clock is taken once by the caller and
// reused for every game-state decision.
func (s *ScreenerService) TopPicks(ctx context.Context, gameDate string, now time.Time) ([]screener.Pick, error) {
	if gameDate == "" {
		gameDate = gametime.EasternDate(now)
	}

	rows, err := s.propRepo.GetTopPickCandidates(ctx, gameDate)
	if err != nil {
		return nil, fmt.Errorf("fetching screener candidates: %w", err)
	}

	candidates := make([]screener.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, screener.Candidate{
			PlayerName: row.PlayerName,
			StatType:   row.StatName,
			RefLine:    row.RefLine,
			RefOdds:    row.RefOdds,
			Sportsbook: row.Sportsbook,
			BookLine:   row.BookLine,
			OverOdds:   row.OverOdds,
			UnderOdds:  row.UnderOdds,
			HomeTeam:   row.HomeTeam,
			AwayTeam:   row.AwayTeam,
			GameDate:   row.GameDate,
			GameTime:   row.GameTime,
		})
	}

	return screener.TopPicks(candidates, s.limit, now), nil
}

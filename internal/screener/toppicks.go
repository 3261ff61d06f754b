// Package screener turns joined prop-line and sharp-line rows into a ranked
// list of betting edges.
package screener

import (
	"math"
	"sort"
	"time"

	"github.com/fortuna/courtside/internal/gametime"
	"github.com/fortuna/courtside/internal/odds"
)

// DefaultLimit caps the picks returned when no override is configured.
const DefaultLimit = 20

// defaultRefOdds stands in for a missing price on the reference line.
const defaultRefOdds = -110

// lineTolerance is the maximum gap between a sharp book's line and the
// reference line for the book to count as quoting the same market.
const lineTolerance = 0.01

// minEdge drops picks whose absolute edge is inside market noise.
const minEdge = 0.005

// Candidate is one reference prop line paired with one sharp book's quote
// for the same (player, stat, game), as returned by the repository layer.
type Candidate struct {
	PlayerName string
	StatType   string
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

// BookLine is one sharp book's quote, echoed back on every pick so the
// client can expand the full market.
type BookLine struct {
	Sportsbook string  `json:"sportsbook"`
	Line       float64 `json:"line"`
	OverOdds   *int    `json:"over_odds"`
	UnderOdds  *int    `json:"under_odds"`
}

// Pick is one screened edge. Probabilities are for the taken direction, in
// percentage points rounded to one decimal.
type Pick struct {
	PlayerName  string     `json:"player_name"`
	StatType    string     `json:"stat_type"`
	Line        float64    `json:"line"`
	Direction   string     `json:"direction"`
	Sportsbook  string     `json:"sportsbook"`
	RefProbPct  float64    `json:"ref_prob_pct"`
	FairProbPct float64    `json:"fair_prob_pct"`
	EdgePct     float64    `json:"edge_pct"`
	Books       []BookLine `json:"books"`
	HomeTeam    string     `json:"home_team"`
	AwayTeam    string     `json:"away_team"`
	GameDate    string     `json:"game_date"`
	GameTime    string     `json:"game_time,omitempty"`
}

type marketKey struct {
	player string
	stat   string
}

// TopPicks screens candidates for the largest gaps between a sharp book's
// devigged price and the reference book's implied price. Candidates whose
// game has already tipped off are discarded up front, against a single
// reference instant. Within each (player, stat) market the book with the
// largest absolute edge wins; markets with no book matching the reference
// line, or only noise-level edges, are dropped. Results are sorted by edge
// descending and truncated to limit.
func TopPicks(candidates []Candidate, limit int, now time.Time) []Pick {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Group by market, preserving first-seen order so equal edges come
	// out in a stable order.
	keys := make([]marketKey, 0, len(candidates))
	markets := make(map[marketKey][]Candidate, len(candidates))
	for _, c := range candidates {
		if gametime.HasGameStarted(c.GameDate, c.GameTime, now) {
			continue
		}
		k := marketKey{player: c.PlayerName, stat: c.StatType}
		if _, seen := markets[k]; !seen {
			keys = append(keys, k)
		}
		markets[k] = append(markets[k], c)
	}

	picks := make([]Pick, 0, len(keys))
	for _, k := range keys {
		if pick, ok := bestEdge(markets[k]); ok {
			picks = append(picks, pick)
		}
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].EdgePct > picks[j].EdgePct
	})
	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// bestEdge selects the single strongest sharp quote in one market, or
// reports that the market has nothing worth surfacing.
func bestEdge(quotes []Candidate) (Pick, bool) {
	ref := quotes[0]
	refOddsValue := defaultRefOdds
	if ref.RefOdds != nil {
		refOddsValue = *ref.RefOdds
	}
	refOverProb := odds.ImpliedProbability(refOddsValue)

	var best *Candidate
	var bestEdge, bestFairProb float64
	for i := range quotes {
		q := &quotes[i]
		if math.Abs(q.BookLine-ref.RefLine) >= lineTolerance {
			continue
		}
		fair := odds.DevigOverProbability(q.OverOdds, q.UnderOdds)
		if fair == nil {
			continue
		}
		// Positive edge favors the over at the reference book.
		edge := *fair - refOverProb
		if best == nil || math.Abs(edge) > math.Abs(bestEdge) {
			best = q
			bestEdge = edge
			bestFairProb = *fair
		}
	}

	if best == nil || math.Abs(bestEdge) < minEdge {
		return Pick{}, false
	}

	direction := "OVER"
	refProb := refOverProb
	fairProb := bestFairProb
	if bestEdge < 0 {
		direction = "UNDER"
		refProb = 1.0 - refOverProb
		fairProb = 1.0 - bestFairProb
	}

	books := make([]BookLine, 0, len(quotes))
	for _, q := range quotes {
		books = append(books, BookLine{
			Sportsbook: q.Sportsbook,
			Line:       q.BookLine,
			OverOdds:   q.OverOdds,
			UnderOdds:  q.UnderOdds,
		})
	}

	pick := Pick{
		PlayerName:  best.PlayerName,
		StatType:    best.StatType,
		Line:        ref.RefLine,
		Direction:   direction,
		Sportsbook:  best.Sportsbook,
		RefProbPct:  roundPct(refProb),
		FairProbPct: roundPct(fairProb),
		EdgePct:     roundPct(math.Abs(bestEdge)),
		Books:       books,
		HomeTeam:    best.HomeTeam,
		AwayTeam:    best.AwayTeam,
		GameDate:    best.GameDate,
	}
	if best.GameTime != nil {
		pick.GameTime = *best.GameTime
	}
	return pick, true
}

// roundPct converts a probability fraction to percentage points rounded to
// one decimal place.
func roundPct(fraction float64) float64 {
	return math.Round(fraction*1000.0) / 10.0
}

package screener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

// testNow is mid-day UTC so same-day evening games have not tipped off.
var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// quote builds a candidate with even reference odds so the reference
// implied probability is exactly 0.5 and edges are easy to reason about.
func quote(player, stat, book string, line float64, over, under int) Candidate {
	return Candidate{
		PlayerName: player,
		StatType:   stat,
		RefLine:    line,
		RefOdds:    intPtr(100),
		Sportsbook: book,
		BookLine:   line,
		OverOdds:   intPtr(over),
		UnderOdds:  intPtr(under),
		HomeTeam:   "BOS",
		AwayTeam:   "NYK",
		GameDate:   "2099-01-01",
		GameTime:   strPtr("7:00 PM ET"),
	}
}

func TestTopPicks_LargestAbsoluteEdgeFirst(t *testing.T) {
	// Pinnacle on Tatum points devigs to ~0.522 over (edge +0.022, OVER);
	// Circa on Brunson assists devigs to ~0.423 over (edge -0.077, UNDER).
	// The UNDER pick has the larger absolute edge and must sort first.
	candidates := []Candidate{
		quote("Jayson Tatum", "points", "Pinnacle", 27.5, -120, 100),
		quote("Jalen Brunson", "assists", "Circa", 6.5, 150, -120),
	}

	picks := TopPicks(candidates, 0, testNow)
	require.Len(t, picks, 2)

	assert.Equal(t, "Jalen Brunson", picks[0].PlayerName)
	assert.Equal(t, "UNDER", picks[0].Direction)
	assert.InDelta(t, 7.7, picks[0].EdgePct, 0.0001)
	assert.InDelta(t, 50.0, picks[0].RefProbPct, 0.0001)
	assert.InDelta(t, 57.7, picks[0].FairProbPct, 0.0001)

	assert.Equal(t, "Jayson Tatum", picks[1].PlayerName)
	assert.Equal(t, "OVER", picks[1].Direction)
	assert.InDelta(t, 2.2, picks[1].EdgePct, 0.0001)
}

func TestTopPicks_NoiseEdgeDropped(t *testing.T) {
	// Over -102 / under +100 devigs to ~0.5025: |edge| ~0.0025 is below
	// the half-point noise floor, so the whole market is dropped.
	candidates := []Candidate{quote("Luka Doncic", "points", "Pinnacle", 32.5, -102, 100)}
	assert.Empty(t, TopPicks(candidates, 0, testNow))
}

func TestTopPicks_NoMatchingLineDropped(t *testing.T) {
	c := quote("Luka Doncic", "points", "Pinnacle", 32.5, 150, -120)
	c.BookLine = 31.5
	assert.Empty(t, TopPicks([]Candidate{c}, 0, testNow))
}

func TestTopPicks_LineToleranceIsLoose(t *testing.T) {
	c := quote("Luka Doncic", "points", "Pinnacle", 32.5, 150, -120)
	c.BookLine = 32.505
	picks := TopPicks([]Candidate{c}, 0, testNow)
	require.Len(t, picks, 1, "lines within 0.01 count as the same market")
}

func TestTopPicks_StartedGameFiltered(t *testing.T) {
	c := quote("Luka Doncic", "points", "Pinnacle", 32.5, 150, -120)
	c.GameDate = "2020-01-01"
	assert.Empty(t, TopPicks([]Candidate{c}, 0, testNow))
}

func TestTopPicks_BestBookWinsAndAllBooksEchoed(t *testing.T) {
	candidates := []Candidate{
		quote("Jayson Tatum", "points", "Pinnacle", 27.5, -120, 100),
		quote("Jayson Tatum", "points", "Circa", 27.5, 150, -120),
	}

	picks := TopPicks(candidates, 0, testNow)
	require.Len(t, picks, 1)

	assert.Equal(t, "Circa", picks[0].Sportsbook, "larger absolute edge wins the market")
	require.Len(t, picks[0].Books, 2)
	assert.Equal(t, "Pinnacle", picks[0].Books[0].Sportsbook)
	assert.Equal(t, "Circa", picks[0].Books[1].Sportsbook)
}

func TestTopPicks_TieGoesToFirstBook(t *testing.T) {
	candidates := []Candidate{
		quote("Jayson Tatum", "points", "Pinnacle", 27.5, -120, 100),
		quote("Jayson Tatum", "points", "Circa", 27.5, -120, 100),
	}

	picks := TopPicks(candidates, 0, testNow)
	require.Len(t, picks, 1)
	assert.Equal(t, "Pinnacle", picks[0].Sportsbook)
}

func TestTopPicks_MissingBookOddsSkipped(t *testing.T) {
	c := quote("Jayson Tatum", "points", "Pinnacle", 27.5, 0, 0)
	c.OverOdds = nil
	c.UnderOdds = nil
	assert.Empty(t, TopPicks([]Candidate{c}, 0, testNow))
}

func TestTopPicks_DefaultReferenceOdds(t *testing.T) {
	// With no reference odds the screener assumes -110 (0.5238). A book
	// devigging to exactly 0.5 produces an UNDER edge of ~0.0238.
	c := quote("Jayson Tatum", "points", "Pinnacle", 27.5, -110, -110)
	c.RefOdds = nil

	picks := TopPicks([]Candidate{c}, 0, testNow)
	require.Len(t, picks, 1)
	assert.Equal(t, "UNDER", picks[0].Direction)
	assert.InDelta(t, 2.4, picks[0].EdgePct, 0.0001)
}

func TestTopPicks_LimitTruncates(t *testing.T) {
	candidates := []Candidate{
		quote("Jayson Tatum", "points", "Pinnacle", 27.5, 150, -120),
		quote("Jalen Brunson", "assists", "Pinnacle", 6.5, 150, -120),
		quote("Luka Doncic", "rebounds", "Pinnacle", 8.5, 150, -120),
	}

	picks := TopPicks(candidates, 2, testNow)
	assert.Len(t, picks, 2)
}

package matchup

import (
	"math/rand"
	"testing"

	"github.com/fortuna/courtside/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defPlayType(teamID int64, name string, ppp float64) store.DefensivePlayType {
	return store.DefensivePlayType{TeamID: teamID, Season: "2025-26", PlayTypeName: name, PPP: ppp}
}

func TestDefensivePlayTypeRanks_SequentialPerGroup(t *testing.T) {
	rows := []store.DefensivePlayType{
		defPlayType(1, "Isolation", 0.95),
		defPlayType(2, "Isolation", 0.88),
		defPlayType(3, "Isolation", 1.02),
		defPlayType(1, "Transition", 1.20),
		defPlayType(2, "Transition", 1.10),
	}

	ranks := DefensivePlayTypeRanks(rows)
	require.Len(t, ranks, 5)

	assert.Equal(t, 1, ranks[RankKey{TeamID: 2, PlayType: "Isolation"}])
	assert.Equal(t, 2, ranks[RankKey{TeamID: 1, PlayType: "Isolation"}])
	assert.Equal(t, 3, ranks[RankKey{TeamID: 3, PlayType: "Isolation"}])

	// Ranks restart at the group boundary
	assert.Equal(t, 1, ranks[RankKey{TeamID: 2, PlayType: "Transition"}])
	assert.Equal(t, 2, ranks[RankKey{TeamID: 1, PlayType: "Transition"}])
}

func TestDefensivePlayTypeRanks_FullLeaguePermutation(t *testing.T) {
	// 30 teams with distinct PPP values in shuffled input order: ranks must
	// come out as the permutation 1..30 regardless of input order.
	rng := rand.New(rand.NewSource(7))
	rows := make([]store.DefensivePlayType, 0, 30)
	for teamID := int64(1); teamID <= 30; teamID++ {
		rows = append(rows, defPlayType(teamID, "Spot Up", 0.80+float64(teamID)*0.01))
	}
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	ranks := DefensivePlayTypeRanks(rows)
	require.Len(t, ranks, 30)
	for teamID := int64(1); teamID <= 30; teamID++ {
		assert.Equal(t, int(teamID), ranks[RankKey{TeamID: teamID, PlayType: "Spot Up"}])
	}
}

func TestDefensivePlayTypeRanks_DoesNotMutateInput(t *testing.T) {
	rows := []store.DefensivePlayType{
		defPlayType(1, "Isolation", 0.95),
		defPlayType(2, "Isolation", 0.88),
	}
	DefensivePlayTypeRanks(rows)
	assert.Equal(t, int64(1), rows[0].TeamID)
	assert.Equal(t, int64(2), rows[1].TeamID)
}

func TestPlayTypes_SortedByPlayerPPGDescending(t *testing.T) {
	player := []store.PlayType{
		{PlayerID: 1, PlayTypeName: "Spot Up", PointsPerGame: 4.2, PctOfTotalPoints: 0.15},
		{PlayerID: 1, PlayTypeName: "Isolation", PointsPerGame: 8.1, PctOfTotalPoints: 0.28},
		{PlayerID: 1, PlayTypeName: "Transition", PointsPerGame: 5.5, PctOfTotalPoints: 0.19},
	}
	oppDefense := []store.DefensivePlayType{
		defPlayType(12, "Spot Up", 1.01),
		defPlayType(12, "Isolation", 0.92),
		defPlayType(12, "Transition", 1.15),
	}
	ranks := map[RankKey]int{
		{TeamID: 12, PlayType: "Spot Up"}:    14,
		{TeamID: 12, PlayType: "Isolation"}:  3,
		{TeamID: 12, PlayType: "Transition"}: 22,
	}

	rows := PlayTypes(player, oppDefense, ranks, 12)
	require.Len(t, rows, 3)

	assert.Equal(t, "Isolation", rows[0].PlayType)
	assert.Equal(t, "Transition", rows[1].PlayType)
	assert.Equal(t, "Spot Up", rows[2].PlayType)

	assert.Equal(t, 8.1, rows[0].PlayerPPG)
	assert.Equal(t, 0.92, rows[0].OppPPP)
	assert.Equal(t, 3, rows[0].OppRank)
}

func TestPlayTypes_DropsUncoveredPlayTypes(t *testing.T) {
	player := []store.PlayType{
		{PlayerID: 1, PlayTypeName: "Isolation", PointsPerGame: 8.1},
		{PlayerID: 1, PlayTypeName: "Putbacks", PointsPerGame: 2.0},
	}
	oppDefense := []store.DefensivePlayType{defPlayType(12, "Isolation", 0.92)}

	rows := PlayTypes(player, oppDefense, map[RankKey]int{}, 12)
	require.Len(t, rows, 1)
	assert.Equal(t, "Isolation", rows[0].PlayType)
}

func TestPlayTypes_Empty(t *testing.T) {
	assert.Empty(t, PlayTypes(nil, nil, nil, 1))
}

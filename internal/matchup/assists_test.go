package matchup

import (
	"testing"

	"github.com/fortuna/courtside/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistZones_PreservesInputOrder(t *testing.T) {
	player := []store.AssistZone{
		{PlayerID: 1, ZoneName: "Restricted Area", Assists: 120},
		{PlayerID: 1, ZoneName: "Above the Break 3", Assists: 80},
		{PlayerID: 1, ZoneName: "Mid-Range", Assists: 40},
	}
	league := []store.DefensiveZone{
		leagueAt(5, "Restricted Area", 0.64),
		leagueAt(5, "Above the Break 3", 0.36),
		leagueAt(5, "Mid-Range", 0.41),
	}

	table := AssistZones(player, 5, league)
	require.Len(t, table.Zones, 3)
	assert.Equal(t, int64(240), table.TotalAssists)

	assert.Equal(t, "Restricted Area", table.Zones[0].ZoneName)
	assert.Equal(t, "Above the Break 3", table.Zones[1].ZoneName)
	assert.Equal(t, "Mid-Range", table.Zones[2].ZoneName)

	assert.InDelta(t, 50.0, table.Zones[0].PlayerAstPct, 0.0001)
	assert.InDelta(t, 100.0/3.0, table.Zones[1].PlayerAstPct, 0.0001)
	assert.InDelta(t, 100.0/6.0, table.Zones[2].PlayerAstPct, 0.0001)
}

func TestAssistZones_RankCountsStrictlyBetterTeams(t *testing.T) {
	player := []store.AssistZone{{PlayerID: 1, ZoneName: "Restricted Area", Assists: 10}}
	league := []store.DefensiveZone{
		leagueAt(1, "Restricted Area", 0.60),
		leagueAt(2, "Restricted Area", 0.62),
		leagueAt(3, "Restricted Area", 0.62),
		leagueAt(4, "Restricted Area", 0.66),
	}

	// Teams 2 and 3 are tied; both have exactly one team strictly better,
	// so both rank 2, and team 4 with three strictly better ranks 4.
	for opponentID, wantRank := range map[int64]int{1: 1, 2: 2, 3: 2, 4: 4} {
		table := AssistZones(player, opponentID, league)
		require.Len(t, table.Zones, 1)
		assert.Equal(t, wantRank, table.Zones[0].OppDefRank, "team %d", opponentID)
		assert.True(t, table.Zones[0].HasData)
	}
}

func TestAssistZones_OpponentFGPctIsUnscaled(t *testing.T) {
	player := []store.AssistZone{{PlayerID: 1, ZoneName: "Mid-Range", Assists: 10}}
	league := []store.DefensiveZone{leagueAt(9, "Mid-Range", 0.435)}

	table := AssistZones(player, 9, league)
	require.Len(t, table.Zones, 1)
	assert.InDelta(t, 0.435, table.Zones[0].OppDefFGPct, 0.000001,
		"defensive value passes through as a fraction, not percentage points")
}

func TestAssistZones_MissingOpponentZone(t *testing.T) {
	player := []store.AssistZone{
		{PlayerID: 1, ZoneName: "Restricted Area", Assists: 30},
		{PlayerID: 1, ZoneName: "Left Corner 3", Assists: 10},
	}
	league := []store.DefensiveZone{leagueAt(3, "Restricted Area", 0.64)}

	table := AssistZones(player, 3, league)
	require.Len(t, table.Zones, 2)

	corner := table.Zones[1]
	assert.Equal(t, "Left Corner 3", corner.ZoneName)
	assert.False(t, corner.HasData)
	assert.Zero(t, corner.OppDefRank)
	assert.Zero(t, corner.OppDefFGPct)
	// Volume share still computed from the player's own totals
	assert.InDelta(t, 25.0, corner.PlayerAstPct, 0.0001)
}

func TestAssistZones_Empty(t *testing.T) {
	table := AssistZones(nil, 1, nil)
	assert.Zero(t, table.TotalAssists)
	assert.Empty(t, table.Zones)
}

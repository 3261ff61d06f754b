package matchup

import (
	"testing"

	"github.com/fortuna/courtside/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leagueAt builds a defensive row for one team in one zone, pct as fraction.
func leagueAt(teamID int64, zone string, pct float64) store.DefensiveZone {
	return store.DefensiveZone{TeamID: teamID, Season: "2025-26", ZoneName: zone, OppFGPct: pct}
}

func TestShootingZones_AlwaysSixZones(t *testing.T) {
	table := ShootingZones(nil, 1, nil)
	require.Len(t, table.Zones, 6)

	wantOrder := []string{
		"Above the Break 3", "In The Paint (Non-RA)", "Left Corner 3",
		"Mid-Range", "Restricted Area", "Right Corner 3",
	}
	for i, z := range table.Zones {
		assert.Equal(t, wantOrder[i], z.ZoneName)
		assert.False(t, z.HasData)
		assert.Equal(t, defaultZoneRank, z.OppRank, "no opponent row defaults to mid-pack")
		assert.Zero(t, z.PlayerVolumePct)
	}

	threes := map[string]bool{}
	for _, z := range table.Zones {
		threes[z.ZoneName] = z.IsThree
	}
	assert.True(t, threes["Above the Break 3"])
	assert.True(t, threes["Left Corner 3"])
	assert.True(t, threes["Right Corner 3"])
	assert.False(t, threes["Restricted Area"])
	assert.False(t, threes["Mid-Range"])
	assert.False(t, threes["In The Paint (Non-RA)"])
}

func TestShootingZones_OpponentAtLeagueAverage(t *testing.T) {
	// Opponent (team 7) allows exactly the league average in both zones the
	// player shoots from; the playerVsLeague term alone drives advantage.
	league := []store.DefensiveZone{
		leagueAt(7, "Mid-Range", 0.42),
		leagueAt(8, "Mid-Range", 0.40),
		leagueAt(9, "Mid-Range", 0.44),
		leagueAt(7, "Restricted Area", 0.65),
		leagueAt(8, "Restricted Area", 0.63),
		leagueAt(9, "Restricted Area", 0.67),
	}
	playerZones := []store.ShootingZone{
		{PlayerID: 1, ZoneName: "Mid-Range", FGM: 90, FGA: 200, FGPct: 45.0},
		{PlayerID: 1, ZoneName: "Restricted Area", FGM: 120, FGA: 200, FGPct: 60.0},
	}

	table := ShootingZones(playerZones, 7, league)
	require.Len(t, table.Zones, 6)
	assert.Equal(t, 400.0, table.TotalFGA)

	byZone := map[string]ShootingZoneRow{}
	for _, z := range table.Zones {
		byZone[z.ZoneName] = z
	}

	mid := byZone["Mid-Range"]
	assert.True(t, mid.HasData)
	assert.InDelta(t, 42.0, mid.LeagueAvgPct, 0.0001)
	assert.InDelta(t, 42.0, mid.OppFGPct, 0.0001)
	// oppVsLeague is zero, so advantage is the player's edge over league alone
	assert.InDelta(t, 45.0-42.0, mid.Advantage, 0.0001)
	assert.InDelta(t, 50.0, mid.PlayerVolumePct, 0.0001)

	ra := byZone["Restricted Area"]
	assert.True(t, ra.HasData)
	assert.InDelta(t, 60.0-65.0, ra.Advantage, 0.0001)

	// The four zones the player never shoots from are zero-filled
	for _, name := range []string{"Above the Break 3", "In The Paint (Non-RA)", "Left Corner 3", "Right Corner 3"} {
		z := byZone[name]
		assert.False(t, z.HasData, name)
		assert.Zero(t, z.PlayerFGM, name)
		assert.Zero(t, z.PlayerFGA, name)
		assert.Zero(t, z.PlayerVolumePct, name)
	}
}

func TestShootingZones_AdvantageInvariantUnderUniformInflation(t *testing.T) {
	base := []store.DefensiveZone{
		leagueAt(7, "Mid-Range", 0.40),
		leagueAt(8, "Mid-Range", 0.44),
	}
	player := []store.ShootingZone{{PlayerID: 1, ZoneName: "Mid-Range", FGM: 50, FGA: 100, FGPct: 46.0}}

	before := ShootingZones(player, 7, base)

	// Shift every percentage up by the same constant (5 points)
	shiftedLeague := []store.DefensiveZone{
		leagueAt(7, "Mid-Range", 0.45),
		leagueAt(8, "Mid-Range", 0.49),
	}
	shiftedPlayer := []store.ShootingZone{{PlayerID: 1, ZoneName: "Mid-Range", FGM: 50, FGA: 100, FGPct: 51.0}}

	after := ShootingZones(shiftedPlayer, 7, shiftedLeague)

	var beforeMid, afterMid ShootingZoneRow
	for _, z := range before.Zones {
		if z.ZoneName == "Mid-Range" {
			beforeMid = z
		}
	}
	for _, z := range after.Zones {
		if z.ZoneName == "Mid-Range" {
			afterMid = z
		}
	}

	assert.InDelta(t, beforeMid.Advantage, afterMid.Advantage, 0.0001,
		"uniform inflation of player and opponent cancels in the advantage score")
}

func TestShootingZones_OppRankIsSortPosition(t *testing.T) {
	league := []store.DefensiveZone{
		leagueAt(1, "Restricted Area", 0.60),
		leagueAt(2, "Restricted Area", 0.62),
		leagueAt(3, "Restricted Area", 0.64),
		leagueAt(4, "Restricted Area", 0.66),
	}

	for teamID, wantRank := range map[int64]int{1: 1, 2: 2, 3: 3, 4: 4} {
		table := ShootingZones(nil, teamID, league)
		for _, z := range table.Zones {
			if z.ZoneName == "Restricted Area" {
				assert.Equal(t, wantRank, z.OppRank, "team %d", teamID)
			}
		}
	}
}

func TestShootingZones_UnknownZoneNameIgnored(t *testing.T) {
	player := []store.ShootingZone{
		{PlayerID: 1, ZoneName: "Backcourt", FGM: 1, FGA: 4, FGPct: 25.0},
	}
	table := ShootingZones(player, 1, nil)
	for _, z := range table.Zones {
		assert.False(t, z.HasData)
		assert.Zero(t, z.PlayerFGA)
	}
	// Off-chart attempts still count toward the volume denominator
	assert.Equal(t, 4.0, table.TotalFGA)
}

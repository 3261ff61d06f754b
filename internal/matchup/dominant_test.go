package matchup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantShootingZonesByVolume(t *testing.T) {
	table := ShootingZoneTable{
		Zones: []ShootingZoneRow{
			{ZoneName: "Above the Break 3", PlayerFGA: 180, OppRank: 22, HasData: true},
			{ZoneName: "In The Paint (Non-RA)", PlayerFGA: 95, OppRank: 4, HasData: true},
			{ZoneName: "Left Corner 3", PlayerFGA: 40, OppRank: 11, HasData: true},
			{ZoneName: "Mid-Range", PlayerFGA: 210, OppRank: 7, HasData: true},
			{ZoneName: "Restricted Area", PlayerFGA: 0, OppRank: 1, HasData: true},
			{ZoneName: "Right Corner 3", PlayerFGA: 300, OppRank: 9, HasData: false},
		},
	}

	dominant := DominantShootingZones(table, 2)
	require.Len(t, dominant, 2)

	// Mid-Range leads on attempts; the bigger Right Corner 3 volume has no
	// matchup data and Restricted Area has no attempts, so neither counts.
	assert.Equal(t, Dominant{Name: "Mid-Range", Rank: 7}, dominant[0])
	assert.Equal(t, Dominant{Name: "Above the Break 3", Rank: 22}, dominant[1])
}

func TestDominantShootingZonesFewerThanRequested(t *testing.T) {
	table := ShootingZoneTable{
		Zones: []ShootingZoneRow{
			{ZoneName: "Restricted Area", PlayerFGA: 120, OppRank: 3, HasData: true},
		},
	}

	dominant := DominantShootingZones(table, 2)
	require.Len(t, dominant, 1)
	assert.Equal(t, "Restricted Area", dominant[0].Name)
}

func TestDominantPlayTypesByShareOfScoring(t *testing.T) {
	// Ordered by per-game points, the way PlayTypes emits them. Share of
	// total scoring disagrees with that order.
	rows := []PlayTypeRow{
		{PlayType: "Transition", PlayerPPG: 7.1, PctOfTotal: 18.0, OppRank: 12},
		{PlayType: "Isolation", PlayerPPG: 6.8, PctOfTotal: 26.5, OppRank: 3},
		{PlayType: "Spot Up", PlayerPPG: 5.2, PctOfTotal: 21.0, OppRank: 28},
	}

	dominant := DominantPlayTypes(rows, 2)
	require.Len(t, dominant, 2)
	assert.Equal(t, Dominant{Name: "Isolation", Rank: 3}, dominant[0])
	assert.Equal(t, Dominant{Name: "Spot Up", Rank: 28}, dominant[1])

	// Input order untouched.
	assert.Equal(t, "Transition", rows[0].PlayType)
}

func TestDominantAssistZonesTakesTableHead(t *testing.T) {
	table := AssistZoneTable{
		Zones: []AssistZoneRow{
			{ZoneName: "Restricted Area", PlayerAssists: 140, OppDefRank: 19},
			{ZoneName: "Above the Break 3", PlayerAssists: 90, OppDefRank: 2},
			{ZoneName: "Mid-Range", PlayerAssists: 35, OppDefRank: 25},
		},
	}

	dominant := DominantAssistZones(table, 2)
	require.Len(t, dominant, 2)
	assert.Equal(t, Dominant{Name: "Restricted Area", Rank: 19}, dominant[0])
	assert.Equal(t, Dominant{Name: "Above the Break 3", Rank: 2}, dominant[1])
}

func TestDominantEmptyInputs(t *testing.T) {
	assert.Empty(t, DominantShootingZones(ShootingZoneTable{}, 2))
	assert.Empty(t, DominantPlayTypes(nil, 2))
	assert.Empty(t, DominantAssistZones(AssistZoneTable{}, 2))
}

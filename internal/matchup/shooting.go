package matchup

import (
	"sort"

	"github.com/fortuna/courtside/internal/store"
)

// The six charted shooting zones, in display order, tagged as three-point
// zones or not. Rows carrying any other zone name are treated as no data.
var displayZones = []struct {
	name    string
	isThree bool
}{
	{"Above the Break 3", true},
	{"In The Paint (Non-RA)", false},
	{"Left Corner 3", true},
	{"Mid-Range", false},
	{"Restricted Area", false},
	{"Right Corner 3", true},
}

// defaultZoneRank is the mid-pack placeholder used when the opponent has no
// defensive row for a zone, in a 30-team league.
const defaultZoneRank = 15

// ShootingZoneRow is one zone of a player-vs-opponent shooting matchup.
// PlayerFGPct, OppFGPct, LeagueAvgPct and Advantage are all expressed in
// percentage points (38.9 means 38.9%).
type ShootingZoneRow struct {
	ZoneName        string  `json:"zone_name"`
	PlayerFGM       float64 `json:"player_fgm"`
	PlayerFGA       float64 `json:"player_fga"`
	PlayerFGPct     float64 `json:"player_fg_pct"`
	PlayerVolumePct float64 `json:"player_volume_pct"`
	OppFGPct        float64 `json:"opp_fg_pct"`
	OppRank         int     `json:"opp_rank"`
	LeagueAvgPct    float64 `json:"league_avg_pct"`
	Advantage       float64 `json:"advantage"`
	IsThree         bool    `json:"is_three"`
	HasData         bool    `json:"has_data"`
}

// ShootingZoneTable is the full six-zone matchup table for one player
// against one opponent.
type ShootingZoneTable struct {
	TotalFGA float64           `json:"total_fga"`
	Zones    []ShootingZoneRow `json:"zones"`
}

// ShootingZones builds the per-zone matchup table for a player against one
// opponent. leagueZones carries every team's defensive rows (the opponent's
// included) and drives league averages and ranks. All six zones appear in
// the output regardless of data coverage, zero-filled where absent, so the
// table always renders complete.
//
// The advantage score is additive: (player FG% − league avg) + (opponent
// allowed FG% − league avg), in percentage points. Higher means a more
// favorable matchup.
func ShootingZones(playerZones []store.ShootingZone, opponentID int64, leagueZones []store.DefensiveZone) ShootingZoneTable {
	var totalFGA float64
	for _, z := range playerZones {
		totalFGA += z.FGA
	}

	table := ShootingZoneTable{
		TotalFGA: totalFGA,
		Zones:    make([]ShootingZoneRow, 0, len(displayZones)),
	}

	for _, dz := range displayZones {
		// All teams' defensive rows for this zone, stingiest first
		zoneDefenses := make([]store.DefensiveZone, 0, 30)
		for _, lz := range leagueZones {
			if lz.ZoneName == dz.name {
				zoneDefenses = append(zoneDefenses, lz)
			}
		}
		sort.SliceStable(zoneDefenses, func(i, j int) bool {
			return zoneDefenses[i].OppFGPct < zoneDefenses[j].OppFGPct
		})

		var leagueAvg float64
		if len(zoneDefenses) > 0 {
			var sum float64
			for _, z := range zoneDefenses {
				sum += z.OppFGPct
			}
			leagueAvg = sum / float64(len(zoneDefenses))
		}

		var playerZone *store.ShootingZone
		for i := range playerZones {
			if playerZones[i].ZoneName == dz.name {
				playerZone = &playerZones[i]
				break
			}
		}

		var oppZone *store.DefensiveZone
		oppRank := defaultZoneRank
		for i := range zoneDefenses {
			if zoneDefenses[i].TeamID == opponentID {
				oppZone = &zoneDefenses[i]
				oppRank = i + 1
				break
			}
		}

		row := ShootingZoneRow{
			ZoneName: dz.name,
			IsThree:  dz.isThree,
			OppRank:  oppRank,
			HasData:  playerZone != nil && oppZone != nil,
		}

		if playerZone != nil {
			row.PlayerFGM = playerZone.FGM
			row.PlayerFGA = playerZone.FGA
			// Player FG% is stored as a percentage already
			row.PlayerFGPct = playerZone.FGPct
		}
		if oppZone != nil {
			// Defensive FG% is stored as a fraction; scale to percentage
			row.OppFGPct = oppZone.OppFGPct * 100.0
		}
		row.LeagueAvgPct = leagueAvg * 100.0

		if totalFGA > 0 {
			row.PlayerVolumePct = (row.PlayerFGA / totalFGA) * 100.0
		}

		playerVsLeague := row.PlayerFGPct - row.LeagueAvgPct
		oppVsLeague := row.OppFGPct - row.LeagueAvgPct // positive = allows more = bad defense
		row.Advantage = playerVsLeague + oppVsLeague

		table.Zones = append(table.Zones, row)
	}

	return table
}

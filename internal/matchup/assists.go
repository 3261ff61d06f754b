package matchup

import "github.com/fortuna/courtside/internal/store"

// AssistZoneRow is one zone of a player-vs-opponent assist matchup.
// OppDefFGPct passes through the stored defensive value unscaled, i.e. as a
// decimal fraction (0.35 means 35%); PlayerAstPct is in percentage points.
type AssistZoneRow struct {
	ZoneName      string  `json:"zone_name"`
	PlayerAssists int64   `json:"player_assists"`
	PlayerAstPct  float64 `json:"player_ast_pct"`
	OppDefRank    int     `json:"opp_def_rank"`
	OppDefFGPct   float64 `json:"opp_def_fg_pct"`
	HasData       bool    `json:"has_data"`
}

// AssistZoneTable is the assist matchup for one player against one
// opponent, covering whatever zones the player has assist data in.
type AssistZoneTable struct {
	TotalAssists int64           `json:"total_assists"`
	Zones        []AssistZoneRow `json:"zones"`
}

// AssistZones joins a player's assist zones against the opponent's
// defensive zones. Input order is preserved (repositories return assist
// zones by assist count descending). The opponent's rank counts teams with
// a strictly lower allowed FG% in the zone, plus one, so tied teams share a
// rank; this deliberately differs from the shooting-zone engine's
// sort-position rank. Zones the opponent has no row for report rank 0,
// pct 0 and hasData false.
func AssistZones(playerZones []store.AssistZone, opponentID int64, leagueZones []store.DefensiveZone) AssistZoneTable {
	var totalAssists int64
	for _, z := range playerZones {
		totalAssists += z.Assists
	}

	table := AssistZoneTable{
		TotalAssists: totalAssists,
		Zones:        make([]AssistZoneRow, 0, len(playerZones)),
	}

	for _, pz := range playerZones {
		var oppZone *store.DefensiveZone
		for i := range leagueZones {
			if leagueZones[i].TeamID == opponentID && leagueZones[i].ZoneName == pz.ZoneName {
				oppZone = &leagueZones[i]
				break
			}
		}

		row := AssistZoneRow{
			ZoneName:      pz.ZoneName,
			PlayerAssists: pz.Assists,
		}

		if oppZone != nil {
			better := 0
			for _, lz := range leagueZones {
				if lz.ZoneName == pz.ZoneName && lz.OppFGPct < oppZone.OppFGPct {
					better++
				}
			}
			row.OppDefRank = better + 1
			row.OppDefFGPct = oppZone.OppFGPct
			row.HasData = true
		}

		if totalAssists > 0 {
			row.PlayerAstPct = (float64(pz.Assists) / float64(totalAssists)) * 100.0
		}

		table.Zones = append(table.Zones, row)
	}

	return table
}

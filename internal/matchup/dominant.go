package matchup

import "sort"

// Dominant names one high-volume zone or play type together with the
// opponent's defensive rank in it. Used for compact next-game context
// where the full matchup table is too much.
type Dominant struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// DominantShootingZones picks the player's top n zones by attempt volume.
// Zones without matchup data or without a single attempt carry no signal
// and are skipped.
func DominantShootingZones(table ShootingZoneTable, n int) []Dominant {
	zones := make([]ShootingZoneRow, 0, len(table.Zones))
	for _, z := range table.Zones {
		if z.HasData && z.PlayerFGA > 0 {
			zones = append(zones, z)
		}
	}
	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].PlayerFGA > zones[j].PlayerFGA
	})
	if len(zones) > n {
		zones = zones[:n]
	}

	out := make([]Dominant, 0, len(zones))
	for _, z := range zones {
		out = append(out, Dominant{Name: z.ZoneName, Rank: z.OppRank})
	}
	return out
}

// DominantPlayTypes picks the player's top n play types by share of total
// scoring. The input rows come from PlayTypes, so uncovered play types are
// already gone; the rows there are ordered by per-game points, which is
// not the same ordering.
func DominantPlayTypes(rows []PlayTypeRow, n int) []Dominant {
	sorted := append([]PlayTypeRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PctOfTotal > sorted[j].PctOfTotal
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]Dominant, 0, len(sorted))
	for _, row := range sorted {
		out = append(out, Dominant{Name: row.PlayType, Rank: row.OppRank})
	}
	return out
}

// DominantAssistZones takes the first n zones of the table. Assist zones
// arrive ordered by assist volume, so the head of the table is already the
// dominant end.
func DominantAssistZones(table AssistZoneTable, n int) []Dominant {
	zones := table.Zones
	if len(zones) > n {
		zones = zones[:n]
	}

	out := make([]Dominant, 0, len(zones))
	for _, z := range zones {
		out = append(out, Dominant{Name: z.ZoneName, Rank: z.OppDefRank})
	}
	return out
}

package matchup

import (
	"sort"

	"github.com/fortuna/courtside/internal/store"
)

// RankKey identifies one team's defensive standing in one play type.
type RankKey struct {
	TeamID   int64
	PlayType string
}

// DefensivePlayTypeRanks assigns league-wide defensive ranks per play type:
// rows are grouped by play type, sorted ascending by points per possession
// allowed, and given sequential 1-based ranks restarting at each group
// boundary (1 = stingiest). Computed once per request over all teams' rows.
func DefensivePlayTypeRanks(all []store.DefensivePlayType) map[RankKey]int {
	sorted := append([]store.DefensivePlayType(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PlayTypeName != sorted[j].PlayTypeName {
			return sorted[i].PlayTypeName < sorted[j].PlayTypeName
		}
		return sorted[i].PPP < sorted[j].PPP
	})

	ranks := make(map[RankKey]int, len(sorted))
	currentType := ""
	rank := 0
	for _, row := range sorted {
		if row.PlayTypeName != currentType {
			currentType = row.PlayTypeName
			rank = 0
		}
		rank++
		ranks[RankKey{TeamID: row.TeamID, PlayType: row.PlayTypeName}] = rank
	}

	return ranks
}

// PlayTypeRow is one row of a player-vs-opponent play-type matchup.
type PlayTypeRow struct {
	PlayType   string  `json:"play_type"`
	PlayerPPG  float64 `json:"player_ppg"`
	PctOfTotal float64 `json:"pct_of_total"`
	OppPPP     float64 `json:"opp_ppp"`
	OppRank    int     `json:"opp_rank"`
}

// PlayTypes joins a player's play types against the opponent's defensive
// coverage. Play types the opponent has no defensive row for are dropped,
// not zero-filled. The result is sorted by the player's points per game in
// the play type, descending.
func PlayTypes(playerTypes []store.PlayType, oppDefense []store.DefensivePlayType, ranks map[RankKey]int, opponentID int64) []PlayTypeRow {
	matchups := make([]PlayTypeRow, 0, len(playerTypes))

	for _, pt := range playerTypes {
		var oppDef *store.DefensivePlayType
		for i := range oppDefense {
			if oppDefense[i].PlayTypeName == pt.PlayTypeName {
				oppDef = &oppDefense[i]
				break
			}
		}
		if oppDef == nil {
			continue
		}

		matchups = append(matchups, PlayTypeRow{
			PlayType:   pt.PlayTypeName,
			PlayerPPG:  pt.PointsPerGame,
			PctOfTotal: pt.PctOfTotalPoints,
			OppPPP:     oppDef.PPP,
			OppRank:    ranks[RankKey{TeamID: opponentID, PlayType: pt.PlayTypeName}],
		})
	}

	sort.SliceStable(matchups, func(i, j int) bool {
		return matchups[i].PlayerPPG > matchups[j].PlayerPPG
	})

	return matchups
}

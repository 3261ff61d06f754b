package store

import "database/sql"

// Team represents an NBA franchise as cached from the stats feed
type Team struct {
	TeamID       int64          `json:"team_id" db:"team_id"`
	Name         string         `json:"name" db:"name"`
	FullName     string         `json:"full_name" db:"full_name"`
	Abbreviation string         `json:"abbreviation" db:"abbreviation"`
	City         string         `json:"city" db:"city"`
	State        sql.NullString `json:"state,omitempty" db:"state"`
	YearFounded  sql.NullInt32  `json:"year_founded,omitempty" db:"year_founded"`
	LastUpdated  sql.NullString `json:"last_updated,omitempty" db:"last_updated"`
}

// Player represents a player's season aggregate line. Stats are per-game
// averages; players without a current team carry a null team_id.
type Player struct {
	PlayerID          int64           `json:"player_id" db:"player_id"`
	PlayerName        string          `json:"player_name" db:"player_name"`
	Season            string          `json:"season" db:"season"`
	TeamID            sql.NullInt64   `json:"team_id,omitempty" db:"team_id"`
	Position          sql.NullString  `json:"position,omitempty" db:"position"`
	Points            float64         `json:"points" db:"points"`
	Assists           float64         `json:"assists" db:"assists"`
	Rebounds          float64         `json:"rebounds" db:"rebounds"`
	ThreesMade        float64         `json:"threes_made" db:"threes_made"`
	ThreesAttempted   sql.NullFloat64 `json:"threes_attempted,omitempty" db:"threes_attempted"`
	FGAttempted       sql.NullFloat64 `json:"fg_attempted,omitempty" db:"fg_attempted"`
	Steals            float64         `json:"steals" db:"steals"`
	Blocks            float64         `json:"blocks" db:"blocks"`
	Turnovers         float64         `json:"turnovers" db:"turnovers"`
	Fouls             float64         `json:"fouls" db:"fouls"`
	FTAttempted       float64         `json:"ft_attempted" db:"ft_attempted"`
	PtsPlusAst        float64         `json:"pts_plus_ast" db:"pts_plus_ast"`
	PtsPlusReb        float64         `json:"pts_plus_reb" db:"pts_plus_reb"`
	AstPlusReb        float64         `json:"ast_plus_reb" db:"ast_plus_reb"`
	PtsPlusAstPlusReb float64         `json:"pts_plus_ast_plus_reb" db:"pts_plus_ast_plus_reb"`
	StealsPlusBlocks  float64         `json:"steals_plus_blocks" db:"steals_plus_blocks"`
	DoubleDoubles     int64           `json:"double_doubles" db:"double_doubles"`
	TripleDoubles     int64           `json:"triple_doubles" db:"triple_doubles"`
	GamesPlayed       int64           `json:"games_played" db:"games_played"`
	LastUpdated       sql.NullString  `json:"last_updated,omitempty" db:"last_updated"`
}

// ShootingZone is a player's production from one charted court zone.
// FGPct is stored as a percentage already (38.9 means 38.9%).
type ShootingZone struct {
	PlayerID int64   `json:"player_id" db:"player_id"`
	Season   string  `json:"season" db:"season"`
	ZoneName string  `json:"zone_name" db:"zone_name"`
	FGM      float64 `json:"fgm" db:"fgm"`
	FGA      float64 `json:"fga" db:"fga"`
	FGPct    float64 `json:"fg_pct" db:"fg_pct"`
	EFGPct   float64 `json:"efg_pct" db:"efg_pct"`
}

// DefensiveZone is what a team allows opponents to shoot from one zone.
// OppFGPct is stored as a decimal fraction (0.35 means 35%) and must be
// scaled by 100 before comparing against ShootingZone.FGPct.
type DefensiveZone struct {
	TeamID    int64   `json:"team_id" db:"team_id"`
	Season    string  `json:"season" db:"season"`
	ZoneName  string  `json:"zone_name" db:"zone_name"`
	OppFGM    float64 `json:"opp_fgm" db:"opp_fgm"`
	OppFGA    float64 `json:"opp_fga" db:"opp_fga"`
	OppFGPct  float64 `json:"opp_fg_pct" db:"opp_fg_pct"`
	OppEFGPct float64 `json:"opp_efg_pct" db:"opp_efg_pct"`
}

// AssistZone is where a player's assists lead to makes. Rows are returned
// ordered by assists descending.
type AssistZone struct {
	PlayerID    int64          `json:"player_id" db:"player_id"`
	Season      string         `json:"season" db:"season"`
	ZoneName    string         `json:"zone_name" db:"zone_name"`
	Assists     int64          `json:"assists" db:"ast"`
	AssistedFGM int64          `json:"assisted_fgm" db:"fgm"`
	AssistedFGA int64          `json:"assisted_fga" db:"fga"`
	LastUpdated sql.NullString `json:"last_updated,omitempty" db:"last_updated"`
}

// PlayType is a player's production in one offensive possession category.
type PlayType struct {
	PlayerID         int64   `json:"player_id" db:"player_id"`
	Season           string  `json:"season" db:"season"`
	PlayTypeName     string  `json:"play_type" db:"play_type"`
	Points           float64 `json:"points" db:"points"`
	PointsPerGame    float64 `json:"points_per_game" db:"points_per_game"`
	Possessions      float64 `json:"possessions" db:"possessions"`
	PossPerGame      float64 `json:"poss_per_game" db:"poss_per_game"`
	PPP              float64 `json:"ppp" db:"ppp"`
	FGPct            float64 `json:"fg_pct" db:"fg_pct"`
	PctOfTotalPoints float64 `json:"pct_of_total_points" db:"pct_of_total_points"`
	GamesPlayed      int64   `json:"games_played" db:"games_played"`
}

// DefensivePlayType is what a team allows in one possession category.
type DefensivePlayType struct {
	TeamID        int64   `json:"team_id" db:"team_id"`
	Season        string  `json:"season" db:"season"`
	PlayTypeName  string  `json:"play_type" db:"play_type"`
	PossPct       float64 `json:"poss_pct" db:"poss_pct"`
	Possessions   float64 `json:"possessions" db:"possessions"`
	PossPerGame   float64 `json:"poss_per_game" db:"poss_per_game"`
	PPP           float64 `json:"ppp" db:"ppp"`
	FGPct         float64 `json:"fg_pct" db:"fg_pct"`
	EFGPct        float64 `json:"efg_pct" db:"efg_pct"`
	Points        float64 `json:"points" db:"points"`
	PointsPerGame float64 `json:"points_per_game" db:"points_per_game"`
	GamesPlayed   int64   `json:"games_played" db:"games_played"`
}

// ScheduleEntry is one scheduled game. GameTime is free text from the feed
// ("7:30 PM ET", "TBD", "Scheduled") and is interpreted by the gametime
// package, never parsed here.
type ScheduleEntry struct {
	GameID               string         `json:"game_id" db:"game_id"`
	GameDate             string         `json:"game_date" db:"game_date"`
	GameTime             sql.NullString `json:"game_time,omitempty" db:"game_time"`
	GameStatus           sql.NullString `json:"game_status,omitempty" db:"game_status"`
	HomeTeamID           int64          `json:"home_team_id" db:"home_team_id"`
	HomeTeamName         sql.NullString `json:"home_team_name,omitempty" db:"home_team_name"`
	HomeTeamAbbreviation sql.NullString `json:"home_team_abbreviation,omitempty" db:"home_team_abbreviation"`
	HomeTeamCity         sql.NullString `json:"home_team_city,omitempty" db:"home_team_city"`
	AwayTeamID           int64          `json:"away_team_id" db:"away_team_id"`
	AwayTeamName         sql.NullString `json:"away_team_name,omitempty" db:"away_team_name"`
	AwayTeamAbbreviation sql.NullString `json:"away_team_abbreviation,omitempty" db:"away_team_abbreviation"`
	AwayTeamCity         sql.NullString `json:"away_team_city,omitempty" db:"away_team_city"`
	HomeScore            sql.NullInt32  `json:"home_score,omitempty" db:"home_score"`
	AwayScore            sql.NullInt32  `json:"away_score,omitempty" db:"away_score"`
}

// PropLine is one scraped reference-book line for a (player, stat, choice)
// combination. Successive scrapes accumulate rows; only the latest row per
// (stat, choice) is live, selected by the repository's window query.
type PropLine struct {
	ID            int64           `json:"id" db:"id"`
	FullName      string          `json:"full_name" db:"full_name"`
	TeamName      sql.NullString  `json:"team_name,omitempty" db:"team_name"`
	OpponentName  sql.NullString  `json:"opponent_name,omitempty" db:"opponent_name"`
	StatName      string          `json:"stat_name" db:"stat_name"`
	StatValue     float64         `json:"stat_value" db:"stat_value"`
	Choice        string          `json:"choice" db:"choice"`
	AmericanPrice sql.NullInt64   `json:"american_price,omitempty" db:"american_price"`
	DecimalPrice  sql.NullFloat64 `json:"decimal_price,omitempty" db:"decimal_price"`
	ScheduledAt   sql.NullString  `json:"scheduled_at,omitempty" db:"scheduled_at"`
}

// GameLog is one player's box score line for one game. Result and margin
// are computed against the schedule's final scores at query time.
type GameLog struct {
	GameID      string          `json:"game_id" db:"game_id"`
	PlayerID    int64           `json:"player_id" db:"player_id"`
	TeamID      sql.NullInt64   `json:"team_id,omitempty" db:"team_id"`
	Season      sql.NullString  `json:"season,omitempty" db:"season"`
	GameDate    sql.NullString  `json:"game_date,omitempty" db:"game_date"`
	Matchup     sql.NullString  `json:"matchup,omitempty" db:"matchup"`
	WinLoss     sql.NullString  `json:"wl,omitempty" db:"wl"`
	Minutes     sql.NullFloat64 `json:"min,omitempty" db:"min"`
	Points      sql.NullInt32   `json:"pts,omitempty" db:"pts"`
	Rebounds    sql.NullInt32   `json:"reb,omitempty" db:"reb"`
	Assists     sql.NullInt32   `json:"ast,omitempty" db:"ast"`
	Steals      sql.NullInt32   `json:"stl,omitempty" db:"stl"`
	Blocks      sql.NullInt32   `json:"blk,omitempty" db:"blk"`
	FGM         sql.NullInt32   `json:"fgm,omitempty" db:"fgm"`
	FGA         sql.NullInt32   `json:"fga,omitempty" db:"fga"`
	ThreePM     sql.NullInt32   `json:"fg3m,omitempty" db:"fg3m"`
	ThreePA     sql.NullInt32   `json:"fg3a,omitempty" db:"fg3a"`
	FTM         sql.NullInt32   `json:"ftm,omitempty" db:"ftm"`
	FTA         sql.NullInt32   `json:"fta,omitempty" db:"fta"`
	Turnovers   sql.NullInt32   `json:"tov,omitempty" db:"tov"`
	GameMargin  sql.NullInt32   `json:"game_margin,omitempty" db:"game_margin"`
	OffRebounds sql.NullInt32   `json:"oreb,omitempty" db:"oreb"`
	DefRebounds sql.NullInt32   `json:"dreb,omitempty" db:"dreb"`
}

// RosterEntry is a player on a team's roster annotated with injury status
// and whether any live prop line exists for them.
type RosterEntry struct {
	Player
	InjuryStatus sql.NullString `json:"injury_status,omitempty" db:"injury_status"`
	HasProps     bool           `json:"has_props" db:"has_props"`
}

// ReboundsAllowed is a team's rebounds conceded per game with its league
// rank (1 = fewest allowed).
type ReboundsAllowed struct {
	TeamID          int64   `json:"team_id" db:"team_id"`
	ReboundsPerGame float64 `json:"rebounds_per_game" db:"rebounds_per_game"`
	Rank            int     `json:"rank" db:"rank"`
}

// TeamStats carries a team's pace and rating line for the season.
type TeamStats struct {
	TeamID      int64           `json:"team_id" db:"team_id"`
	Season      string          `json:"season" db:"season"`
	Pace        sql.NullFloat64 `json:"pace,omitempty" db:"pace"`
	OffRating   sql.NullFloat64 `json:"off_rating,omitempty" db:"off_rating"`
	DefRating   sql.NullFloat64 `json:"def_rating,omitempty" db:"def_rating"`
	NetRating   sql.NullFloat64 `json:"net_rating,omitempty" db:"net_rating"`
	GamesPlayed sql.NullInt64   `json:"games_played,omitempty" db:"games_played"`
	Wins        sql.NullInt64   `json:"wins,omitempty" db:"wins"`
	Losses      sql.NullInt64   `json:"losses,omitempty" db:"losses"`
}

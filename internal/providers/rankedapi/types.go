package rankedapi

import "encoding/json"

// rankingsResponse mirrors the upstream season rankings payload.
// Rankings is decoded as raw JSON first so a non-list shape can be reported
// as a malformed snapshot instead of a generic decode failure.
type rankingsResponse struct {
	Rankings    json.RawMessage `json:"rankings"`
	LastUpdated string          `json:"lastUpdated"`
}

// upstreamTeam is the upstream team record. Field names match the snapshot
// contract casing exactly.
type upstreamTeam struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Club                string   `json:"club"`
	AgeGroup            string   `json:"ageGroup"`
	League              string   `json:"league"`
	State               string   `json:"state"`
	Wins                int      `json:"wins"`
	Losses              int      `json:"losses"`
	Draws               int      `json:"draws"`
	GoalsFor            int      `json:"goalsFor"`
	GoalsAgainst        int      `json:"goalsAgainst"`
	PowerScore          *float64 `json:"powerScore"`
	OffensiveRank       *int     `json:"offensiveRank"`
	OffensivePowerScore *float64 `json:"offensivePowerScore"`
	DefensiveRank       *int     `json:"defensiveRank"`
	DefensivePowerScore *float64 `json:"defensivePowerScore"`
	IsRanked            *bool    `json:"isRanked"`
	BestWin             string   `json:"bestWin"`
	SecondBestWin       string   `json:"secondBestWin"`
	WorstLoss           string   `json:"worstLoss"`
	SecondWorstLoss     string   `json:"secondWorstLoss"`
}

// upstreamGame is the upstream fixture record from the games resource.
type upstreamGame struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
	Date      string `json:"date"`
	League    string `json:"league"`
	AgeGroup  string `json:"ageGroup"`
}

package domain

// Team is one season record for one roster. Fields mirror the upstream
// snapshot shape; the engine never mutates a Team once loaded.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Club     string `json:"club"`
	AgeGroup string `json:"ageGroup"`
	League   string `json:"league"`
	State    string `json:"state"`

	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Draws        int `json:"draws"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`

	PowerScore          float64 `json:"powerScore"`
	OffensiveRank       int     `json:"offensiveRank"`
	OffensivePowerScore float64 `json:"offensivePowerScore"`
	DefensiveRank       int     `json:"defensiveRank"`
	DefensivePowerScore float64 `json:"defensivePowerScore"`

	// IsRanked defaults to true; false excludes the team from the primary
	// ranking pool (e.g. insufficient games).
	IsRanked *bool `json:"isRanked"`

	BestWin         string `json:"bestWin"`
	SecondBestWin   string `json:"secondBestWin"`
	WorstLoss       string `json:"worstLoss"`
	SecondWorstLoss string `json:"secondWorstLoss"`
}

// Ranked reports whether the team belongs to the primary ranking pool.
// A missing flag counts as ranked.
func (t Team) Ranked() bool {
	return t.IsRanked == nil || *t.IsRanked
}

// GoalDiff returns goalsFor - goalsAgainst.
func (t Team) GoalDiff() int {
	return t.GoalsFor - t.GoalsAgainst
}

// GamesPlayed returns the sum of wins, losses and draws.
func (t Team) GamesPlayed() int {
	return t.Wins + t.Losses + t.Draws
}

// PointsPerGame returns (3*wins + draws) / gamesPlayed, or 0 with no games.
func (t Team) PointsPerGame() float64 {
	gp := t.GamesPlayed()
	if gp == 0 {
		return 0
	}
	return float64(3*t.Wins+t.Draws) / float64(gp)
}

// GoalDiffPerGame returns goal differential per game, or 0 with no games.
func (t Team) GoalDiffPerGame() float64 {
	gp := t.GamesPlayed()
	if gp == 0 {
		return 0
	}
	return float64(t.GoalDiff()) / float64(gp)
}

// DrawRate returns draws/gamesPlayed and whether the team has any games.
func (t Team) DrawRate() (float64, bool) {
	gp := t.GamesPlayed()
	if gp == 0 {
		return 0, false
	}
	return float64(t.Draws) / float64(gp), true
}

// Gender derives the team gender from the leading letter of the age group
// ("G13" -> Girls, "B14" -> Boys). Unknown prefixes return "".
func (t Team) Gender() string {
	if t.AgeGroup == "" {
		return ""
	}
	switch t.AgeGroup[0] {
	case 'G', 'g':
		return GenderGirls
	case 'B', 'b':
		return GenderBoys
	}
	return ""
}

// Gender filter values.
const (
	GenderGirls = "Girls"
	GenderBoys  = "Boys"
)

// Game is a played or scheduled fixture. Scores are nil until played.
// Teams are referenced by name, not id; ids are not stable across loads.
type Game struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
	Date      string `json:"date"`
	League    string `json:"league"`
	AgeGroup  string `json:"ageGroup,omitempty"`
}

// IsPast reports whether the game is completed: dated on or before today
// (YYYY-MM-DD comparison) with both scores recorded.
func (g Game) IsPast(today string) bool {
	return g.Date != "" && g.Date <= today && g.HomeScore != nil && g.AwayScore != nil
}

// Snapshot is one season load: every component observes the same immutable
// lists for the lifetime of a snapshot.
type Snapshot struct {
	Teams       []Team `json:"rankings"`
	Games       []Game `json:"games,omitempty"`
	LastUpdated string `json:"lastUpdated"`
}

// Sort fields accepted by the leaderboard pipeline.
const (
	SortPower         = "power"
	SortRecord        = "record"
	SortGoalDiff      = "gd"
	SortOffensiveRank = "offRank"
	SortDefensiveRank = "defRank"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterAll is the wildcard value for category filters.
const FilterAll = "ALL"

// Umbrella league filter values matching any league in the respective tier.
const (
	LeagueTierNational = "NATIONAL"
	LeagueTierRegional = "REGIONAL"
)

// FilterState is the full set of leaderboard controls. It is a value object:
// each recompute sees a fully-formed state, never a partial mutation.
type FilterState struct {
	AgeGroup      string `json:"ageGroup"`
	League        string `json:"league"`
	State         string `json:"state"`
	Gender        string `json:"gender"`
	Search        string `json:"search"`
	SortField     string `json:"sortField"`
	SortDirection string `json:"sortDirection"`
}

// DefaultFilterState returns the initial control settings.
func DefaultFilterState() FilterState {
	return FilterState{
		AgeGroup:      FilterAll,
		League:        FilterAll,
		State:         FilterAll,
		Gender:        FilterAll,
		SortField:     SortPower,
		SortDirection: SortDesc,
	}
}

// WithoutSearch returns a copy with the search term cleared. Rank assignment
// runs on the search-free state so typing a search never shifts rank numbers.
func (f FilterState) WithoutSearch() FilterState {
	f.Search = ""
	return f
}

// RankedTeam wraps a Team with its filter-dependent leaderboard position.
// DisplayRank is nil for teams outside the primary ranking pool.
type RankedTeam struct {
	Team
	DisplayRank *int `json:"displayRank"`
	TotalRanked int  `json:"totalRanked"`
}

// PredictionResult holds win/draw/loss percentages (summing to exactly 100)
// and a predicted scoreline.
type PredictionResult struct {
	HomeWinProbability int `json:"homeWinProbability"`
	DrawProbability    int `json:"drawProbability"`
	AwayWinProbability int `json:"awayWinProbability"`
	PredictedHomeScore int `json:"predictedHomeScore"`
	PredictedAwayScore int `json:"predictedAwayScore"`
}

// LatLng is a geographic coordinate pair in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PositionedTeam is a Team plus its collision-free map placement. Ephemeral:
// recomputed whenever the input list or zoom changes, never persisted.
type PositionedTeam struct {
	Team
	DisplayLat float64 `json:"displayLat"`
	DisplayLng float64 `json:"displayLng"`
	Rank       int     `json:"rank"`
	Color      string  `json:"color"`
}

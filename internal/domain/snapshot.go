package domain

// MaxRecapGoals bounds the recap goal list; downstream page layout depends on
// this list never growing past it.
const MaxRecapGoals = 24

// MaxAbbrevLen is the longest team short code the renderers lay out for.
const MaxAbbrevLen = 3

// TeamInfo describes one side of the tracked game.
type TeamInfo struct {
	ID     int64
	Abbrev string
	Name   string
	Score  int
	SOG    int
}

// GoalEvent carries the metadata attached to a one-shot goal edge.
type GoalEvent struct {
	EventID       int64
	OwnerTeamID   int64
	Scorer        string
	Assist1       string
	Assist2       string
	TimeRemaining string
	Period        int
}

// RecapGoal is one entry of the post-game goal list.
type RecapGoal struct {
	EventID       int64
	TeamAbbrev    string
	Scorer        string
	Assist1       string
	Assist2       string
	TimeRemaining string
	Period        int
}

// GameSnapshot is the single in-memory record of the currently tracked game.
// A zero GameID means no game is selected.
type GameSnapshot struct {
	GameID         int64
	GameState      string
	StartTimeUTC   string
	UTCOffset      string
	Away           TeamInfo
	Home           TeamInfo
	Period         int
	TimeRemaining  string
	InIntermission bool
	AwayPP         bool
	HomePP         bool

	// Goal edge: set by ingestion, cleared only by the display consumer.
	GoalIsNew bool
	Goal      GoalEvent

	RecapReady bool
	RecapText  string
	RecapGoals []RecapGoal
}

// TruncateAbbrev bounds a team short code to the renderer's layout limit.
func TruncateAbbrev(abbrev string) string {
	if len(abbrev) > MaxAbbrevLen {
		return abbrev[:MaxAbbrevLen]
	}
	return abbrev
}

// BoundRecapGoals drops entries past the fixed recap capacity.
func BoundRecapGoals(goals []RecapGoal) []RecapGoal {
	if len(goals) > MaxRecapGoals {
		goals = goals[:MaxRecapGoals]
	}
	out := make([]RecapGoal, len(goals))
	copy(out, goals)
	return out
}

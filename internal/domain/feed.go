package domain

// ScheduleDay is one day's slate of games as reported by the upstream
// scoreboard feed.
type ScheduleDay struct {
	Date  string
	Games []ScheduledGame
}

// ScheduledGame is one schedule entry. Team ids are not part of the schedule
// feed; the play-by-play feed fills them in once a game is selected.
type ScheduledGame struct {
	GameID         int64
	GameState      string
	StartTimeUTC   string
	UTCOffset      string
	Away           ScheduledTeam
	Home           ScheduledTeam
	Period         int
	TimeRemaining  string
	InIntermission bool
	ClockRunning   bool
}

// ScheduledTeam is one side of a schedule entry.
type ScheduledTeam struct {
	Abbrev string
	Place  string
	Name   string
	Score  int
	SOG    int
}

// GameFeed is the normalized play-by-play payload for a single game.
type GameFeed struct {
	GameID         int64
	GameState      string
	StartTimeUTC   string
	UTCOffset      string
	Period         int
	TimeRemaining  string
	InIntermission bool
	ClockRunning   bool
	Away           FeedTeam
	Home           FeedTeam
	AwayPP         bool
	HomePP         bool
	Roster         []RosterEntry
	Plays          []Play
}

// FeedTeam is one side of a play-by-play payload.
type FeedTeam struct {
	ID     int64
	Abbrev string
	Name   string
	Score  int
	SOG    int
}

// RosterEntry maps an upstream player id to a display name.
type RosterEntry struct {
	PlayerID int64
	Name     string
}

// Play is a single event from the play-by-play stream. Only goal events carry
// the scoring details; other event types keep their ordering fields so goal
// detection can track the stream cursor.
type Play struct {
	EventID         int64
	SortOrder       int
	Type            string
	Period          int
	TimeRemaining   string
	OwnerTeamID     int64
	ScoringPlayerID int64
	ScorerName      string
	Assist1PlayerID int64
	Assist1Name     string
	Assist2PlayerID int64
	Assist2Name     string
	GoalieName      string
	ShotType        string
}

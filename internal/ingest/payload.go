package ingest

// The admin API serves the pollers' last good fetch verbatim, so the wire
// shapes live here next to the code that fills them.

type schedulePayload struct {
	Games []scheduleGamePayload `json:"games"`
}

type scheduleGamePayload struct {
	ID               int64         `json:"id"`
	Date             string        `json:"date"`
	StartTimeUTC     string        `json:"startTimeUTC"`
	EasternUTCOffset string        `json:"easternUTCOffset"`
	GameState        string        `json:"gameState"`
	Away             teamPayload   `json:"away"`
	Home             teamPayload   `json:"home"`
	Period           int           `json:"period"`
	Clock            *clockPayload `json:"clock,omitempty"`
}

type teamPayload struct {
	Abbrev string `json:"abbrev"`
	Place  string `json:"place"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	SOG    int    `json:"sog"`
}

type clockPayload struct {
	TimeRemaining  string `json:"timeRemaining"`
	InIntermission bool   `json:"inIntermission"`
	Running        bool   `json:"running"`
}

type playByPlayPayload struct {
	GameID    int64            `json:"gameId"`
	GameState string           `json:"gameState"`
	Period    int              `json:"period"`
	Clock     clockPayload     `json:"clock"`
	Away      scorePayload     `json:"away"`
	Home      scorePayload     `json:"home"`
	LastPlay  *lastPlayPayload `json:"lastPlay,omitempty"`
	LastGoal  *lastGoalPayload `json:"lastGoal,omitempty"`
	GoalIsNew bool             `json:"goalIsNew"`
}

type scorePayload struct {
	Score int `json:"score"`
	SOG   int `json:"sog"`
}

type lastPlayPayload struct {
	Type          string `json:"type"`
	TimeRemaining string `json:"timeRemaining"`
	Period        int    `json:"period"`
	EventID       int64  `json:"eventId"`
	SortOrder     int    `json:"sortOrder"`
}

type lastGoalPayload struct {
	TimeRemaining     string `json:"timeRemaining"`
	Period            int    `json:"period"`
	EventOwnerTeamID  int64  `json:"eventOwnerTeamId"`
	ScoringPlayerName string `json:"scoringPlayerName"`
	Assist1PlayerName string `json:"assist1PlayerName"`
	Assist2PlayerName string `json:"assist2PlayerName"`
}

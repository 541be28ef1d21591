package nhlweb

const providerName = "nhlweb"

// localizedName carries the upstream "default" translation of a name field.
type localizedName struct {
	Default string `json:"default"`
}

type scoreboardResponse struct {
	FocusedDate string        `json:"focusedDate"`
	GamesByDate []gamesByDate `json:"gamesByDate"`
}

type gamesByDate struct {
	Date  string             `json:"date"`
	Games []scheduleGameJSON `json:"games"`
}

type scheduleGameJSON struct {
	ID               int64            `json:"id"`
	StartTimeUTC     string           `json:"startTimeUTC"`
	EasternUTCOffset string           `json:"easternUTCOffset"`
	VenueUTCOffset   string           `json:"venueUTCOffset"`
	GameState        string           `json:"gameState"`
	AwayTeam         scheduleTeamJSON `json:"awayTeam"`
	HomeTeam         scheduleTeamJSON `json:"homeTeam"`
	PeriodDescriptor periodJSON       `json:"periodDescriptor"`
	Clock            *clockJSON       `json:"clock"`
}

type scheduleTeamJSON struct {
	Abbrev                   string        `json:"abbrev"`
	Name                     localizedName `json:"name"`
	CommonName               localizedName `json:"commonName"`
	PlaceNameWithPreposition localizedName `json:"placeNameWithPreposition"`
	Score                    int           `json:"score"`
	SOG                      int           `json:"sog"`
}

type periodJSON struct {
	Number int `json:"number"`
}

type clockJSON struct {
	TimeRemaining  string `json:"timeRemaining"`
	InIntermission bool   `json:"inIntermission"`
	Running        bool   `json:"running"`
}

type playByPlayResponse struct {
	GameState        string           `json:"gameState"`
	StartTimeUTC     string           `json:"startTimeUTC"`
	EasternUTCOffset string           `json:"easternUTCOffset"`
	VenueUTCOffset   string           `json:"venueUTCOffset"`
	PeriodDescriptor periodJSON       `json:"periodDescriptor"`
	Clock            clockJSON        `json:"clock"`
	AwayTeam         feedTeamJSON     `json:"awayTeam"`
	HomeTeam         feedTeamJSON     `json:"homeTeam"`
	Situation        *situationJSON   `json:"situation"`
	RosterSpots      []rosterSpotJSON `json:"rosterSpots"`
	Plays            []playJSON       `json:"plays"`
}

type feedTeamJSON struct {
	ID         int64         `json:"id"`
	Abbrev     string        `json:"abbrev"`
	CommonName localizedName `json:"commonName"`
	PlaceName  localizedName `json:"placeName"`
	Score      int           `json:"score"`
	SOG        int           `json:"sog"`
}

type situationJSON struct {
	AwayTeam situationTeamJSON `json:"awayTeam"`
	HomeTeam situationTeamJSON `json:"homeTeam"`
}

type situationTeamJSON struct {
	Strength              int      `json:"strength"`
	SituationDescriptions []string `json:"situationDescriptions"`
}

type rosterSpotJSON struct {
	PlayerID  int64         `json:"playerId"`
	FirstName localizedName `json:"firstName"`
	LastName  localizedName `json:"lastName"`
}

type playJSON struct {
	EventID          int64           `json:"eventId"`
	SortOrder        int             `json:"sortOrder"`
	TypeDescKey      string          `json:"typeDescKey"`
	TimeRemaining    string          `json:"timeRemaining"`
	PeriodDescriptor periodJSON      `json:"periodDescriptor"`
	Details          playDetailsJSON `json:"details"`
}

type playDetailsJSON struct {
	EventOwnerTeamID   int64         `json:"eventOwnerTeamId"`
	ScoringPlayerID    int64         `json:"scoringPlayerId"`
	ScoringPlayerName  localizedName `json:"scoringPlayerName"`
	ShootingPlayerName localizedName `json:"shootingPlayerName"`
	Assist1PlayerID    int64         `json:"assist1PlayerId"`
	Assist1PlayerName  localizedName `json:"assist1PlayerName"`
	Assist2PlayerID    int64         `json:"assist2PlayerId"`
	Assist2PlayerName  localizedName `json:"assist2PlayerName"`
	GoalieInNetName    localizedName `json:"goalieInNetName"`
	ShotType           string        `json:"shotType"`
}

package store

import (
	"sync"

	"nhl-scoreboard/internal/domain"
)

// ScheduleUpdate carries the fields the schedule feed knows about the
// selected game.
type ScheduleUpdate struct {
	GameID       int64
	GameState    string
	StartTimeUTC string
	UTCOffset    string
	Away         domain.TeamInfo
	Home         domain.TeamInfo
}

// TeamIdentity carries the identifying team fields the play-by-play feed
// reports. Zero values leave the stored fields alone so a thin payload cannot
// wipe what the schedule already filled in.
type TeamIdentity struct {
	ID     int64
	Abbrev string
	Name   string
}

// LiveUpdate carries the fields the play-by-play feed knows about the
// selected game. Goal is non-nil only on the cycle a new goal was detected.
type LiveUpdate struct {
	GameID         int64
	GameState      string
	StartTimeUTC   string
	UTCOffset      string
	Period         int
	TimeRemaining  string
	InIntermission bool
	AwayTeam       TeamIdentity
	HomeTeam       TeamIdentity
	AwayScore      int
	HomeScore      int
	AwaySOG        int
	HomeSOG        int
	AwayPP         bool
	HomePP         bool

	Goal *domain.GoalEvent

	RecapReady bool
	RecapText  string
	RecapGoals []domain.RecapGoal
}

// Store keeps a thread-safe snapshot of the single tracked game. All writers
// must name the game they believe is selected; updates for any other game are
// dropped so a stale poll cycle cannot dirty a freshly selected game.
type Store struct {
	mu       sync.RWMutex
	selected int64
	snap     domain.GameSnapshot
}

// New constructs an empty Store with no game selected.
func New() *Store {
	return &Store{}
}

// SelectedGameID returns the currently selected game, zero when none.
func (s *Store) SelectedGameID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetSelectedGame switches the tracked game. Selecting a different game
// resets the snapshot so nothing from the previous game leaks through;
// re-selecting the current game is a no-op. Selecting zero deselects.
func (s *Store) SetSelectedGame(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.selected {
		return
	}
	s.selected = id
	s.snap = domain.GameSnapshot{GameID: id}
}

// UpdateFromSchedule applies schedule-feed fields to the snapshot. It reports
// whether the update was accepted; updates naming a non-selected game are
// rejected. The goal edge and live-feed fields are left untouched.
func (s *Store) UpdateFromSchedule(u ScheduleUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.GameID == 0 || u.GameID != s.selected {
		return false
	}

	s.snap.GameID = u.GameID
	s.snap.GameState = u.GameState
	s.snap.StartTimeUTC = u.StartTimeUTC
	s.snap.UTCOffset = u.UTCOffset

	u.Away.Abbrev = domain.TruncateAbbrev(u.Away.Abbrev)
	u.Home.Abbrev = domain.TruncateAbbrev(u.Home.Abbrev)

	// The live feed owns scores and shots once it is running; keep its
	// values when the schedule lags behind.
	if u.Away.Score < s.snap.Away.Score {
		u.Away.Score = s.snap.Away.Score
	}
	if u.Home.Score < s.snap.Home.Score {
		u.Home.Score = s.snap.Home.Score
	}
	u.Away.SOG = s.snap.Away.SOG
	u.Home.SOG = s.snap.Home.SOG

	s.snap.Away = u.Away
	s.snap.Home = u.Home
	return true
}

// UpdateFromLiveFeed applies play-by-play fields to the snapshot. It reports
// whether the update was accepted. A new goal replaces the pending goal
// payload and flag as one unit, so a later goal arriving before the display
// consumes the edge wins. Updates without a goal leave both untouched.
func (s *Store) UpdateFromLiveFeed(u LiveUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.GameID == 0 || u.GameID != s.selected {
		return false
	}

	if u.GameState != "" {
		s.snap.GameState = u.GameState
	}
	if u.StartTimeUTC != "" {
		s.snap.StartTimeUTC = u.StartTimeUTC
	}
	if u.UTCOffset != "" {
		s.snap.UTCOffset = u.UTCOffset
	}
	applyTeamIdentity(&s.snap.Away, u.AwayTeam)
	applyTeamIdentity(&s.snap.Home, u.HomeTeam)
	s.snap.Period = u.Period
	s.snap.TimeRemaining = u.TimeRemaining
	s.snap.InIntermission = u.InIntermission
	s.snap.Away.Score = u.AwayScore
	s.snap.Home.Score = u.HomeScore
	s.snap.Away.SOG = u.AwaySOG
	s.snap.Home.SOG = u.HomeSOG
	s.snap.AwayPP = u.AwayPP
	s.snap.HomePP = u.HomePP

	if u.Goal != nil {
		s.snap.Goal = *u.Goal
		s.snap.GoalIsNew = true
	}

	if u.RecapReady {
		s.snap.RecapReady = true
		s.snap.RecapText = u.RecapText
		s.snap.RecapGoals = domain.BoundRecapGoals(u.RecapGoals)
	}
	return true
}

func applyTeamIdentity(dst *domain.TeamInfo, u TeamIdentity) {
	if u.ID != 0 {
		dst.ID = u.ID
	}
	if u.Abbrev != "" {
		dst.Abbrev = domain.TruncateAbbrev(u.Abbrev)
	}
	if u.Name != "" {
		dst.Name = u.Name
	}
}

// ClearGoalFlag marks the pending goal edge as consumed. The goal metadata
// stays readable until the next edge overwrites it.
func (s *Store) ClearGoalFlag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.GoalIsNew = false
}

// Snapshot returns a copy of the current snapshot and whether a game is
// selected. The copy owns its recap slice so callers can hold it across
// later updates.
func (s *Store) Snapshot() (domain.GameSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	if len(snap.RecapGoals) > 0 {
		goals := make([]domain.RecapGoal, len(snap.RecapGoals))
		copy(goals, snap.RecapGoals)
		snap.RecapGoals = goals
	}
	return snap, snap.GameID != 0
}

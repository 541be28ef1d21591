package nhlweb

import (
	"strings"

	"nhl-scoreboard/internal/domain"
)

// mapScoreboard picks the focused day (or the first one) and normalizes its
// games.
func mapScoreboard(payload *scoreboardResponse) *domain.ScheduleDay {
	if len(payload.GamesByDate) == 0 {
		return &domain.ScheduleDay{}
	}

	day := payload.GamesByDate[0]
	if payload.FocusedDate != "" {
		for _, d := range payload.GamesByDate {
			if d.Date == payload.FocusedDate {
				day = d
				break
			}
		}
	}

	out := &domain.ScheduleDay{Date: day.Date}
	for _, g := range day.Games {
		out.Games = append(out.Games, mapScheduleGame(g))
	}
	return out
}

func mapScheduleGame(g scheduleGameJSON) domain.ScheduledGame {
	game := domain.ScheduledGame{
		GameID:       g.ID,
		GameState:    g.GameState,
		StartTimeUTC: g.StartTimeUTC,
		UTCOffset:    pickOffset(g.EasternUTCOffset, g.VenueUTCOffset),
		Away:         mapScheduleTeam(g.AwayTeam),
		Home:         mapScheduleTeam(g.HomeTeam),
		Period:       g.PeriodDescriptor.Number,
	}
	if g.Clock != nil {
		game.TimeRemaining = g.Clock.TimeRemaining
		game.InIntermission = g.Clock.InIntermission
		game.ClockRunning = g.Clock.Running
	}
	return game
}

func mapScheduleTeam(t scheduleTeamJSON) domain.ScheduledTeam {
	name := t.Name.Default
	if name == "" {
		name = t.CommonName.Default
	}
	return domain.ScheduledTeam{
		Abbrev: t.Abbrev,
		Place:  t.PlaceNameWithPreposition.Default,
		Name:   name,
		Score:  t.Score,
		SOG:    t.SOG,
	}
}

func mapPlayByPlay(gameID int64, payload *playByPlayResponse) *domain.GameFeed {
	feed := &domain.GameFeed{
		GameID:         gameID,
		GameState:      payload.GameState,
		StartTimeUTC:   payload.StartTimeUTC,
		UTCOffset:      pickOffset(payload.EasternUTCOffset, payload.VenueUTCOffset),
		Period:         payload.PeriodDescriptor.Number,
		TimeRemaining:  payload.Clock.TimeRemaining,
		InIntermission: payload.Clock.InIntermission,
		ClockRunning:   payload.Clock.Running,
		Away:           mapFeedTeam(payload.AwayTeam),
		Home:           mapFeedTeam(payload.HomeTeam),
	}

	if payload.Situation != nil {
		feed.AwayPP = hasPowerPlay(payload.Situation.AwayTeam.SituationDescriptions)
		feed.HomePP = hasPowerPlay(payload.Situation.HomeTeam.SituationDescriptions)
	}

	for _, spot := range payload.RosterSpots {
		if spot.PlayerID == 0 {
			continue
		}
		feed.Roster = append(feed.Roster, domain.RosterEntry{
			PlayerID: spot.PlayerID,
			Name:     joinName(spot.FirstName.Default, spot.LastName.Default),
		})
	}

	for _, p := range payload.Plays {
		feed.Plays = append(feed.Plays, domain.Play{
			EventID:         p.EventID,
			SortOrder:       p.SortOrder,
			Type:            p.TypeDescKey,
			Period:          p.PeriodDescriptor.Number,
			TimeRemaining:   p.TimeRemaining,
			OwnerTeamID:     p.Details.EventOwnerTeamID,
			ScoringPlayerID: p.Details.ScoringPlayerID,
			ScorerName:      p.Details.ScoringPlayerName.Default,
			Assist1PlayerID: p.Details.Assist1PlayerID,
			Assist1Name:     p.Details.Assist1PlayerName.Default,
			Assist2PlayerID: p.Details.Assist2PlayerID,
			Assist2Name:     p.Details.Assist2PlayerName.Default,
			GoalieName:      p.Details.GoalieInNetName.Default,
			ShotType:        p.Details.ShotType,
		})
	}

	return feed
}

func mapFeedTeam(t feedTeamJSON) domain.FeedTeam {
	return domain.FeedTeam{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Name:   joinName(t.PlaceName.Default, t.CommonName.Default),
		Score:  t.Score,
		SOG:    t.SOG,
	}
}

func pickOffset(eastern, venue string) string {
	if eastern != "" {
		return eastern
	}
	return venue
}

func joinName(first, second string) string {
	if first != "" && second != "" {
		return first + " " + second
	}
	return first + second
}

func hasPowerPlay(descriptions []string) bool {
	for _, d := range descriptions {
		if strings.EqualFold(d, "PP") {
			return true
		}
	}
	return false
}

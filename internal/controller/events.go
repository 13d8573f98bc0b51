package controller

import "github.com/playperu/jeopardy/internal/jeopardy"

// EventKind identifies a state-changed notification.
type EventKind string

const (
	EventBoardChanged EventKind = "board_changed"
	EventModeChanged  EventKind = "mode_changed"
	EventScoreChanged EventKind = "score_changed"
	EventCellSelected EventKind = "cell_selected"
	EventTeamChanged  EventKind = "team_changed"
)

// Event is emitted after the command that caused it. Payload is nil for
// board_changed and one of the *Payload types below otherwise.
type Event struct {
	Kind    EventKind
	Payload any
}

type ModeChangedPayload struct {
	Mode jeopardy.Mode `json:"mode"`
}

type ScoreChangedPayload struct {
	Score int `json:"score"`
}

type CellSelectedPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type TeamChangedPayload struct {
	TeamIndex int               `json:"teamIndex"`
	Team      jeopardy.TeamView `json:"team"`
}

// Handler receives events. Handlers may query the controller but must not
// issue commands.
type Handler func(Event)

func boardChanged() Event {
	return Event{Kind: EventBoardChanged}
}

func modeChanged(g *jeopardy.Game) Event {
	return Event{Kind: EventModeChanged, Payload: ModeChangedPayload{Mode: g.Mode()}}
}

func scoreChanged(score int) Event {
	return Event{Kind: EventScoreChanged, Payload: ScoreChangedPayload{Score: score}}
}

func cellSelected(row, col int) Event {
	return Event{Kind: EventCellSelected, Payload: CellSelectedPayload{Row: row, Col: col}}
}

func teamChanged(g *jeopardy.Game) Event {
	t, _ := g.CurrentTeam()
	return Event{Kind: EventTeamChanged, Payload: TeamChangedPayload{
		TeamIndex: g.CurrentTeamIndex(),
		Team:      t.View(),
	}}
}

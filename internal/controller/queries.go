package controller

import "github.com/playperu/jeopardy/internal/jeopardy"

// Snapshot is everything a presentation layer needs to redraw.
type Snapshot struct {
	Mode        jeopardy.Mode       `json:"mode"`
	Board       jeopardy.BoardView  `json:"board"`
	Teams       []jeopardy.TeamView `json:"teams"`
	CurrentTeam int                 `json:"currentTeam"`
	MaxTeams    int                 `json:"maxTeams"`
}

// CellState is a cell view plus the steal-protocol queries for it.
type CellState struct {
	Row        int               `json:"row"`
	Col        int               `json:"col"`
	Cell       jeopardy.CellView `json:"cell"`
	Category   string            `json:"category"`
	CanAttempt bool              `json:"canAttempt"`
	InProgress bool              `json:"inProgress"`
}

func (c *Controller) Snapshot() Snapshot {
	var s Snapshot
	c.read(func(g *jeopardy.Game) {
		s = Snapshot{
			Mode:        g.Mode(),
			Board:       g.Board(),
			Teams:       teamViews(g.Teams()),
			CurrentTeam: g.CurrentTeamIndex(),
			MaxTeams:    g.MaxTeams(),
		}
	})
	return s
}

func (c *Controller) Mode() jeopardy.Mode {
	var m jeopardy.Mode
	c.read(func(g *jeopardy.Game) { m = g.Mode() })
	return m
}

func (c *Controller) Board() jeopardy.BoardView {
	var b jeopardy.BoardView
	c.read(func(g *jeopardy.Game) { b = g.Board() })
	return b
}

func (c *Controller) Content() jeopardy.Content {
	var content jeopardy.Content
	c.read(func(g *jeopardy.Game) { content = g.Content() })
	return content
}

func (c *Controller) Cell(row, col int) (CellState, bool) {
	var (
		s  CellState
		ok bool
	)
	c.read(func(g *jeopardy.Game) {
		var cell jeopardy.CellView
		if cell, ok = g.Cell(row, col); !ok {
			return
		}
		s = CellState{
			Row:        row,
			Col:        col,
			Cell:       cell,
			Category:   g.Category(col),
			CanAttempt: g.CanCurrentTeamAttempt(row, col),
			InProgress: g.IsQuestionInProgress(row, col),
		}
	})
	return s, ok
}

func (c *Controller) Teams() []jeopardy.TeamView {
	var teams []jeopardy.TeamView
	c.read(func(g *jeopardy.Game) { teams = teamViews(g.Teams()) })
	return teams
}

func (c *Controller) CurrentTeam() (jeopardy.TeamView, bool) {
	var (
		t  jeopardy.Team
		ok bool
	)
	c.read(func(g *jeopardy.Game) { t, ok = g.CurrentTeam() })
	return t.View(), ok
}

func (c *Controller) CurrentTeamIndex() int {
	var i int
	c.read(func(g *jeopardy.Game) { i = g.CurrentTeamIndex() })
	return i
}

func (c *Controller) CurrentTeamScore() int {
	var score int
	c.read(func(g *jeopardy.Game) { score = g.CurrentTeamScore() })
	return score
}

func (c *Controller) CanCurrentTeamAttempt(row, col int) bool {
	var ok bool
	c.read(func(g *jeopardy.Game) { ok = g.CanCurrentTeamAttempt(row, col) })
	return ok
}

func (c *Controller) IsQuestionInProgress(row, col int) bool {
	var ok bool
	c.read(func(g *jeopardy.Game) { ok = g.IsQuestionInProgress(row, col) })
	return ok
}

func teamViews(teams []jeopardy.Team) []jeopardy.TeamView {
	out := make([]jeopardy.TeamView, len(teams))
	for i, t := range teams {
		out[i] = t.View()
	}
	return out
}

package jeopardy

import "sort"

// Cell is one square of the board.
type Cell struct {
	question       string
	answer         string
	points         int
	revealed       bool
	answerRevealed bool
	attempted      map[int]struct{}
}

// CellView is a read-only copy of a Cell.
type CellView struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Points         int    `json:"points"`
	Revealed       bool   `json:"revealed"`
	AnswerRevealed bool   `json:"answerRevealed"`
	AttemptedBy    []int  `json:"attemptedBy"`
}

func (c *Cell) Question() string     { return c.question }
func (c *Cell) Answer() string       { return c.answer }
func (c *Cell) Points() int          { return c.points }
func (c *Cell) Revealed() bool       { return c.revealed }
func (c *Cell) AnswerRevealed() bool { return c.answerRevealed }

func (c *Cell) SetQuestion(q string)         { c.question = q }
func (c *Cell) SetAnswer(a string)           { c.answer = a }
func (c *Cell) SetPoints(p int)              { c.points = p }
func (c *Cell) SetRevealed(revealed bool)    { c.revealed = revealed }
func (c *Cell) SetAnswerRevealed(shown bool) { c.answerRevealed = shown }

// Reveal closes the cell for the rest of the session.
func (c *Cell) Reveal() { c.revealed = true }

// Reset clears all per-session state. Text and points are kept.
func (c *Cell) Reset() {
	c.revealed = false
	c.answerRevealed = false
	c.attempted = nil
}

func (c *Cell) AddAttemptedTeam(team int) {
	if c.attempted == nil {
		c.attempted = make(map[int]struct{})
	}
	c.attempted[team] = struct{}{}
}

func (c *Cell) HasTeamAttempted(team int) bool {
	_, ok := c.attempted[team]
	return ok
}

// AttemptedTeams returns the attempted team indexes in ascending order.
func (c *Cell) AttemptedTeams() []int {
	teams := make([]int, 0, len(c.attempted))
	for i := range c.attempted {
		teams = append(teams, i)
	}
	sort.Ints(teams)
	return teams
}

func (c *Cell) ClearAttemptedTeams() { c.attempted = nil }

// inProgress reports whether a steal sequence is running on the cell.
func (c *Cell) inProgress() bool {
	return len(c.attempted) > 0 && !c.revealed
}

func (c *Cell) View() CellView {
	return CellView{
		Question:       c.question,
		Answer:         c.answer,
		Points:         c.points,
		Revealed:       c.revealed,
		AnswerRevealed: c.answerRevealed,
		AttemptedBy:    c.AttemptedTeams(),
	}
}

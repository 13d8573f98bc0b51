package jeopardy

import "fmt"

// Options configures a new Game. Zero fields take the defaults.
type Options struct {
	Rows      int
	Cols      int
	MinRows   int
	MaxRows   int
	MinCols   int
	MaxCols   int
	MaxTeams  int
	TeamNames []string
}

func DefaultOptions() Options {
	return Options{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		MinRows:   3,
		MaxRows:   10,
		MinCols:   3,
		MaxCols:   8,
		MaxTeams:  5,
		TeamNames: []string{"Team 1", "Team 2", "Team 3"},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Rows <= 0 {
		o.Rows = d.Rows
	}
	if o.Cols <= 0 {
		o.Cols = d.Cols
	}
	if o.MinRows <= 0 {
		o.MinRows = d.MinRows
	}
	if o.MaxRows <= 0 {
		o.MaxRows = d.MaxRows
	}
	if o.MinCols <= 0 {
		o.MinCols = d.MinCols
	}
	if o.MaxCols <= 0 {
		o.MaxCols = d.MaxCols
	}
	if o.MaxTeams <= 0 {
		o.MaxTeams = d.MaxTeams
	}
	if o.TeamNames == nil {
		o.TeamNames = d.TeamNames
	}
	return o
}

// Outcome describes how an answer was resolved.
type Outcome struct {
	Team      int  `json:"team"`
	Points    int  `json:"points"`
	Score     int  `json:"score"`
	Stolen    bool `json:"stolen"`
	Completed bool `json:"completed"`
	NextTeam  int  `json:"nextTeam"`
}

// Game is the state of one Jeopardy session: the board, the roster, the
// current mode and whose turn it is. Game is not safe for concurrent use.
type Game struct {
	opts    Options
	board   *Board
	teams   []Team
	mode    Mode
	current int
}

// NewGame creates a game in config mode.
func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:  opts,
		board: NewBoard(opts.Rows, opts.Cols),
		mode:  ModeConfig,
	}
	for _, name := range opts.TeamNames {
		g.AddTeam(name)
	}
	return g
}

func (g *Game) allow(cmd Command) bool {
	return g.mode.Allows(cmd)
}

// --- Modes ---

func (g *Game) Mode() Mode { return g.mode }

func (g *Game) StartConfigMode() {
	g.mode = ModeConfig
}

// StartGameMode enters playing mode with fresh scores and a fresh board.
func (g *Game) StartGameMode() {
	g.mode = ModePlaying
	g.current = 0
	for i := range g.teams {
		g.teams[i].SetScore(0)
	}
	g.board.Reset()
}

func (g *Game) ResetGame() {
	g.StartGameMode()
}

// --- Board configuration ---

// Limits returns the inclusive board size limits.
func (g *Game) Limits() (minRows, maxRows, minCols, maxCols int) {
	return g.opts.MinRows, g.opts.MaxRows, g.opts.MinCols, g.opts.MaxCols
}

func (g *Game) ConfigureBoardSize(rows, cols int) bool {
	if !g.allow(CmdResizeBoard) {
		return false
	}
	if rows < g.opts.MinRows || rows > g.opts.MaxRows || cols < g.opts.MinCols || cols > g.opts.MaxCols {
		return false
	}
	return g.board.Resize(rows, cols)
}

func (g *Game) SetCategoryName(col int, name string) bool {
	if !g.allow(CmdSetCategory) {
		return false
	}
	return g.board.SetCategory(col, name)
}

func (g *Game) SetQuestionAnswer(row, col int, question, answer string) bool {
	if !g.allow(CmdSetCellContent) {
		return false
	}
	return g.board.SetCellContent(row, col, question, answer)
}

func (g *Game) Board() BoardView { return g.board.View() }

// Category returns the name of column col, or "" when out of range.
func (g *Game) Category(col int) string { return g.board.Category(col) }

func (g *Game) Cell(row, col int) (CellView, bool) {
	return g.board.Cell(row, col)
}

// --- Cell selection protocol ---

// SelectCell reports whether the cell may be opened for the current team.
// It does not reveal the cell.
func (g *Game) SelectCell(row, col int) bool {
	if !g.allow(CmdSelectCell) || len(g.teams) == 0 {
		return false
	}
	c := g.board.cell(row, col)
	return c != nil && !c.Revealed() && !c.inProgress()
}

// MarkAnswerRevealed records that the answer text has been shown.
func (g *Game) MarkAnswerRevealed(row, col int) bool {
	if !g.allow(CmdRevealAnswer) {
		return false
	}
	c := g.board.cell(row, col)
	if c == nil {
		return false
	}
	c.SetAnswerRevealed(true)
	return true
}

// IsQuestionInProgress reports whether at least one team missed the cell
// and it has not been closed yet.
func (g *Game) IsQuestionInProgress(row, col int) bool {
	c := g.board.cell(row, col)
	return c != nil && c.inProgress()
}

func (g *Game) CanCurrentTeamAttempt(row, col int) bool {
	if g.mode != ModePlaying || len(g.teams) == 0 {
		return false
	}
	c := g.board.cell(row, col)
	return c != nil && !c.HasTeamAttempted(g.current)
}

func (g *Game) MarkCurrentTeamAttempted(row, col int) bool {
	if !g.allow(CmdMarkAttempted) || len(g.teams) == 0 {
		return false
	}
	c := g.board.cell(row, col)
	if c == nil {
		return false
	}
	c.AddAttemptedTeam(g.current)
	return true
}

// CompleteQuestion closes the cell for the rest of the session.
func (g *Game) CompleteQuestion(row, col int) bool {
	if !g.allow(CmdCompleteQuestion) {
		return false
	}
	return g.board.RevealCell(row, col)
}

// SwitchToNextAvailableTeam hands the cell to the first team after the
// current one that has not attempted it. Each other team is visited at most
// once. It returns false, leaving the turn unchanged, when no such team exists.
func (g *Game) SwitchToNextAvailableTeam(row, col int) bool {
	if !g.allow(CmdSwitchAvailableTeam) {
		return false
	}
	c := g.board.cell(row, col)
	n := len(g.teams)
	if c == nil || n <= 1 {
		return false
	}
	for step := 1; step < n; step++ {
		next := (g.current + step) % n
		if !c.HasTeamAttempted(next) {
			g.current = next
			return true
		}
	}
	return false
}

// answerable returns the cell if the current team may answer it now.
func (g *Game) answerable(row, col int) *Cell {
	if !g.allow(CmdAnswer) || len(g.teams) == 0 {
		return nil
	}
	c := g.board.cell(row, col)
	if c == nil || c.Revealed() || c.HasTeamAttempted(g.current) {
		return nil
	}
	return c
}

// AnswerCorrect awards the cell to the current team, closes it and passes
// the turn on.
func (g *Game) AnswerCorrect(row, col int) (Outcome, bool) {
	c := g.answerable(row, col)
	if c == nil {
		return Outcome{}, false
	}

	team := g.current
	g.teams[team].AddScore(c.Points())
	c.Reveal()
	g.switchToNextTeam()

	return Outcome{
		Team:      team,
		Points:    c.Points(),
		Score:     g.teams[team].Score(),
		Completed: true,
		NextTeam:  g.current,
	}, true
}

// AnswerIncorrect deducts the cell's points from the current team and
// offers the cell to the next team that has not tried it. When nobody is
// left the cell is closed and the turn rotates normally.
func (g *Game) AnswerIncorrect(row, col int) (Outcome, bool) {
	c := g.answerable(row, col)
	if c == nil {
		return Outcome{}, false
	}

	team := g.current
	g.teams[team].AddScore(-c.Points())
	c.AddAttemptedTeam(team)

	out := Outcome{
		Team:   team,
		Points: c.Points(),
		Score:  g.teams[team].Score(),
	}
	if g.SwitchToNextAvailableTeam(row, col) {
		out.Stolen = true
	} else {
		c.Reveal()
		g.switchToNextTeam()
		out.Completed = true
	}
	out.NextTeam = g.current
	return out, true
}

// --- Teams ---

// AddTeam appends a team to the roster. An empty name becomes "Team N".
func (g *Game) AddTeam(name string) bool {
	if len(g.teams) >= g.opts.MaxTeams {
		return false
	}
	if name == "" {
		name = fmt.Sprintf("Team %d", len(g.teams)+1)
	}
	g.teams = append(g.teams, NewTeam(name))
	return true
}

func (g *Game) MaxTeams() int { return g.opts.MaxTeams }

func (g *Game) SetTeamName(index int, name string) bool {
	if index < 0 || index >= len(g.teams) {
		return false
	}
	return g.teams[index].SetName(name)
}

// Teams returns a copy of the roster in seating order.
func (g *Game) Teams() []Team {
	out := make([]Team, len(g.teams))
	copy(out, g.teams)
	return out
}

func (g *Game) CurrentTeamIndex() int { return g.current }

func (g *Game) CurrentTeam() (Team, bool) {
	if len(g.teams) == 0 {
		return Team{}, false
	}
	return g.teams[g.current], true
}

func (g *Game) CurrentTeamScore() int {
	t, _ := g.CurrentTeam()
	return t.Score()
}

func (g *Game) SwitchToNextTeam() bool {
	if !g.allow(CmdSwitchTeam) || len(g.teams) == 0 {
		return false
	}
	g.switchToNextTeam()
	return true
}

func (g *Game) switchToNextTeam() {
	if len(g.teams) > 0 {
		g.current = (g.current + 1) % len(g.teams)
	}
}

func (g *Game) AddToCurrentTeamScore(points int) bool {
	if !g.allow(CmdChangeScore) || len(g.teams) == 0 {
		return false
	}
	g.teams[g.current].AddScore(points)
	return true
}

func (g *Game) SubtractFromCurrentTeamScore(points int) bool {
	return g.AddToCurrentTeamScore(-points)
}

// --- Authored content ---

// CellText is the authored text of one cell.
type CellText struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Content is the authored text of a whole board, without any session state.
// The board size is len(Cells) × len(Categories).
type Content struct {
	Categories []string     `json:"categories"`
	Cells      [][]CellText `json:"cells"`
}

// Size returns the board dimensions described by c. It reports false when
// the rows are ragged or the content is empty.
func (c Content) Size() (rows, cols int, ok bool) {
	rows, cols = len(c.Cells), len(c.Categories)
	if rows == 0 || cols == 0 {
		return rows, cols, false
	}
	for _, row := range c.Cells {
		if len(row) != cols {
			return rows, cols, false
		}
	}
	return rows, cols, true
}

// Content returns the authored text of the board.
func (g *Game) Content() Content {
	v := g.board.View()
	c := Content{Categories: v.Categories, Cells: make([][]CellText, v.Rows)}
	for r, row := range v.Cells {
		c.Cells[r] = make([]CellText, len(row))
		for col, cell := range row {
			c.Cells[r][col] = CellText{Question: cell.Question, Answer: cell.Answer}
		}
	}
	return c
}

// LoadContent replaces the board with c in one step. Nothing changes unless
// the game is in config mode and c fits the board size limits.
func (g *Game) LoadContent(c Content) bool {
	if !g.allow(CmdResizeBoard) || !g.allow(CmdSetCellContent) {
		return false
	}
	rows, cols, ok := c.Size()
	if !ok || rows < g.opts.MinRows || rows > g.opts.MaxRows || cols < g.opts.MinCols || cols > g.opts.MaxCols {
		return false
	}

	g.board.Resize(rows, cols)
	for col, name := range c.Categories {
		g.board.SetCategory(col, name)
	}
	for r, row := range c.Cells {
		for col, text := range row {
			g.board.SetCellContent(r, col, text.Question, text.Answer)
		}
	}
	return true
}

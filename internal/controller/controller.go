// Package controller is the command/query façade in front of a
// jeopardy.Game. It serialises commands for one session and emits typed
// events to registered handlers after each command.
package controller

import (
	"log/slog"
	"sync"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

type Controller struct {
	mu   sync.Mutex
	game *jeopardy.Game

	// emitMu keeps event delivery in command order.
	emitMu   sync.Mutex
	handlers []Handler

	logger *slog.Logger
}

type Option func(*Controller)

func WithHandler(h Handler) Option {
	return func(c *Controller) { c.handlers = append(c.handlers, h) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

func New(game *jeopardy.Game, opts ...Option) *Controller {
	c := &Controller{
		game:   game,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers h for every event emitted from now on.
func (c *Controller) Subscribe(h Handler) {
	c.emitMu.Lock()
	c.handlers = append(c.handlers, h)
	c.emitMu.Unlock()
}

// exec runs fn under the state lock and then delivers the events it
// returned. The state lock is released before handlers run.
func (c *Controller) exec(cmd string, fn func(g *jeopardy.Game) []Event) {
	c.mu.Lock()
	events := fn(c.game)
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()

	if len(events) == 0 {
		c.logger.Debug("command had no effect", "command", cmd)
		return
	}
	for _, e := range events {
		for _, h := range c.handlers {
			h(e)
		}
	}
}

func (c *Controller) read(fn func(g *jeopardy.Game)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.game)
}

// --- Modes ---

func (c *Controller) StartConfigMode() {
	c.exec("start_config_mode", func(g *jeopardy.Game) []Event {
		g.StartConfigMode()
		return []Event{modeChanged(g)}
	})
}

func (c *Controller) StartGameMode() {
	c.exec("start_game_mode", func(g *jeopardy.Game) []Event {
		g.StartGameMode()
		return []Event{modeChanged(g), scoreChanged(g.CurrentTeamScore()), boardChanged(), teamChanged(g)}
	})
}

func (c *Controller) ResetGame() {
	c.exec("reset_game", func(g *jeopardy.Game) []Event {
		g.ResetGame()
		return []Event{modeChanged(g), scoreChanged(g.CurrentTeamScore()), boardChanged(), teamChanged(g)}
	})
}

// SetMode switches to m. It reports false for an unknown mode.
func (c *Controller) SetMode(m jeopardy.Mode) bool {
	switch m {
	case jeopardy.ModeConfig:
		c.StartConfigMode()
	case jeopardy.ModePlaying:
		c.StartGameMode()
	default:
		return false
	}
	return true
}

// --- Board configuration ---

func (c *Controller) ConfigureBoardSize(rows, cols int) bool {
	return c.boardCommand("configure_board_size", func(g *jeopardy.Game) bool {
		return g.ConfigureBoardSize(rows, cols)
	})
}

func (c *Controller) SetCategoryName(col int, name string) bool {
	return c.boardCommand("set_category_name", func(g *jeopardy.Game) bool {
		return g.SetCategoryName(col, name)
	})
}

func (c *Controller) SetQuestionAnswer(row, col int, question, answer string) bool {
	return c.boardCommand("set_question_answer", func(g *jeopardy.Game) bool {
		return g.SetQuestionAnswer(row, col, question, answer)
	})
}

func (c *Controller) LoadContent(content jeopardy.Content) bool {
	return c.boardCommand("load_content", func(g *jeopardy.Game) bool {
		return g.LoadContent(content)
	})
}

func (c *Controller) MarkCurrentTeamAttempted(row, col int) bool {
	return c.boardCommand("mark_current_team_attempted", func(g *jeopardy.Game) bool {
		return g.MarkCurrentTeamAttempted(row, col)
	})
}

func (c *Controller) CompleteQuestion(row, col int) bool {
	return c.boardCommand("complete_question", func(g *jeopardy.Game) bool {
		return g.CompleteQuestion(row, col)
	})
}

// MarkAnswerRevealed emits board_changed only the first time the answer
// is shown.
func (c *Controller) MarkAnswerRevealed(row, col int) bool {
	var ok bool
	c.exec("mark_answer_revealed", func(g *jeopardy.Game) []Event {
		before, _ := g.Cell(row, col)
		ok = g.MarkAnswerRevealed(row, col)
		if !ok || before.AnswerRevealed {
			return nil
		}
		return []Event{boardChanged()}
	})
	return ok
}

func (c *Controller) boardCommand(name string, fn func(g *jeopardy.Game) bool) bool {
	var ok bool
	c.exec(name, func(g *jeopardy.Game) []Event {
		if ok = fn(g); !ok {
			return nil
		}
		return []Event{boardChanged()}
	})
	return ok
}

// --- Play ---

func (c *Controller) SelectCell(row, col int) bool {
	var ok bool
	c.exec("select_cell", func(g *jeopardy.Game) []Event {
		if ok = g.SelectCell(row, col); !ok {
			return nil
		}
		return []Event{cellSelected(row, col)}
	})
	return ok
}

func (c *Controller) AddToScore(points int) bool {
	return c.scoreCommand("add_to_score", func(g *jeopardy.Game) bool {
		return g.AddToCurrentTeamScore(points)
	})
}

func (c *Controller) SubtractFromScore(points int) bool {
	return c.scoreCommand("subtract_from_score", func(g *jeopardy.Game) bool {
		return g.SubtractFromCurrentTeamScore(points)
	})
}

func (c *Controller) scoreCommand(name string, fn func(g *jeopardy.Game) bool) bool {
	var ok bool
	c.exec(name, func(g *jeopardy.Game) []Event {
		if ok = fn(g); !ok {
			return nil
		}
		return []Event{scoreChanged(g.CurrentTeamScore())}
	})
	return ok
}

func (c *Controller) SwitchToNextTeam() bool {
	return c.teamCommand("switch_to_next_team", func(g *jeopardy.Game) bool {
		return g.SwitchToNextTeam()
	})
}

func (c *Controller) SwitchToNextAvailableTeam(row, col int) bool {
	return c.teamCommand("switch_to_next_available_team", func(g *jeopardy.Game) bool {
		return g.SwitchToNextAvailableTeam(row, col)
	})
}

func (c *Controller) teamCommand(name string, fn func(g *jeopardy.Game) bool) bool {
	var ok bool
	c.exec(name, func(g *jeopardy.Game) []Event {
		if ok = fn(g); !ok {
			return nil
		}
		return []Event{teamChanged(g)}
	})
	return ok
}

func (c *Controller) AnswerCorrect(row, col int) (jeopardy.Outcome, bool) {
	return c.answer("answer_correct", func(g *jeopardy.Game) (jeopardy.Outcome, bool) {
		return g.AnswerCorrect(row, col)
	})
}

func (c *Controller) AnswerIncorrect(row, col int) (jeopardy.Outcome, bool) {
	return c.answer("answer_incorrect", func(g *jeopardy.Game) (jeopardy.Outcome, bool) {
		return g.AnswerIncorrect(row, col)
	})
}

func (c *Controller) answer(name string, fn func(g *jeopardy.Game) (jeopardy.Outcome, bool)) (jeopardy.Outcome, bool) {
	var (
		out jeopardy.Outcome
		ok  bool
	)
	c.exec(name, func(g *jeopardy.Game) []Event {
		if out, ok = fn(g); !ok {
			return nil
		}
		return []Event{scoreChanged(out.Score), boardChanged(), teamChanged(g)}
	})
	return out, ok
}

// --- Teams ---

func (c *Controller) AddTeam(name string) bool {
	return c.teamCommand("add_team", func(g *jeopardy.Game) bool {
		return g.AddTeam(name)
	})
}

func (c *Controller) SetTeamName(index int, name string) bool {
	return c.teamCommand("set_team_name", func(g *jeopardy.Game) bool {
		return g.SetTeamName(index, name)
	})
}

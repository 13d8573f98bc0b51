package server

import (
	"net/http"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/jeopardy"
)

type ScoreRequest struct {
	Points int `json:"points"`
}

// AnswerResponse reports how an answer was resolved and the state after it.
type AnswerResponse struct {
	Outcome jeopardy.Outcome    `json:"outcome"`
	State   controller.Snapshot `json:"state"`
}

// handleCellCommand adapts a (row, col) controller command to a handler.
func handleCellCommand(rejected string, cmd func(c *controller.Controller, row, col int) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "row", "col")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cell position")
			return
		}

		sess := sessionFrom(r)
		ok := cmd(sess.Controller, p[0], p[1])
		respondCommand(w, sess, ok, rejected)
	}
}

func handleSelectCell() http.HandlerFunc {
	return handleCellCommand("cell cannot be selected", (*controller.Controller).SelectCell)
}

func handleRevealAnswer() http.HandlerFunc {
	return handleCellCommand("answer cannot be revealed", (*controller.Controller).MarkAnswerRevealed)
}

func handleMarkAttempted() http.HandlerFunc {
	return handleCellCommand("cannot mark attempt", (*controller.Controller).MarkCurrentTeamAttempted)
}

func handlePass() http.HandlerFunc {
	return handleCellCommand("no team left to steal", (*controller.Controller).SwitchToNextAvailableTeam)
}

func handleCompleteQuestion() http.HandlerFunc {
	return handleCellCommand("question cannot be completed", (*controller.Controller).CompleteQuestion)
}

func handleAnswer(correct bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "row", "col")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cell position")
			return
		}

		c := sessionFrom(r).Controller
		answer := c.AnswerIncorrect
		if correct {
			answer = c.AnswerCorrect
		}

		out, ok := answer(p[0], p[1])
		if !ok {
			writeError(w, http.StatusConflict, "current team cannot answer this cell")
			return
		}
		writeJSON(w, http.StatusOK, AnswerResponse{Outcome: out, State: c.Snapshot()})
	}
}

func handleChangeScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		var ok bool
		if req.Points < 0 {
			ok = sess.Controller.SubtractFromScore(-req.Points)
		} else {
			ok = sess.Controller.AddToScore(req.Points)
		}
		respondCommand(w, sess, ok, "score cannot change now")
	}
}

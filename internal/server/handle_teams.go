package server

import (
	"net/http"
	"strings"
)

type TeamRequest struct {
	Name string `json:"name"`
}

func handleAddTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TeamRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.AddTeam(strings.TrimSpace(req.Name))
		respondCommand(w, sess, ok, "roster is full")
	}
}

func handleRenameTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "index")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid team index")
			return
		}
		var req TeamRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.SetTeamName(p[0], name)
		respondCommand(w, sess, ok, "no such team")
	}
}

func handleNextTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		ok := sess.Controller.SwitchToNextTeam()
		respondCommand(w, sess, ok, "cannot switch team")
	}
}

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/jeopardy"
)

type CreateSessionResponse struct {
	ID      string              `json:"id"`
	HostKey string              `json:"hostKey"`
	State   controller.Snapshot `json:"state"`
}

type ModeRequest struct {
	Mode jeopardy.Mode `json:"mode"`
}

func handleCreateSession(logger *slog.Logger, sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, hostKey, err := sessions.Create()
		if errors.Is(err, ErrTooManySessions) {
			writeError(w, http.StatusServiceUnavailable, "session limit reached")
			return
		}
		if err != nil {
			logger.Error("creating session", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateSessionResponse{
			ID:      sess.ID,
			HostKey: hostKey,
			State:   sess.Controller.Snapshot(),
		})
	}
}

func handleListSessions(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessions.List())
	}
}

func handleGetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFrom(r).Controller.Snapshot())
	}
}

func handleDeleteSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Delete(sessionFrom(r).ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSetMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModeRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Mode.Valid() {
			writeError(w, http.StatusBadRequest, "mode must be config or playing")
			return
		}

		sess := sessionFrom(r)
		sess.Controller.SetMode(req.Mode)
		writeJSON(w, http.StatusOK, sess.Controller.Snapshot())
	}
}

func handleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Controller.ResetGame()
		writeJSON(w, http.StatusOK, sess.Controller.Snapshot())
	}
}

// respondCommand answers a controller command with the new snapshot, or
// 409 when the game rejected it.
func respondCommand(w http.ResponseWriter, sess *Session, ok bool, rejected string) {
	if !ok {
		writeError(w, http.StatusConflict, rejected)
		return
	}
	writeJSON(w, http.StatusOK, sess.Controller.Snapshot())
}

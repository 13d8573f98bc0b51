package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

type TemplateRequest struct {
	Name    string           `json:"name"`
	Content jeopardy.Content `json:"content"`
}

func (req *TemplateRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "name is required"
	}
	if _, _, ok := req.Content.Size(); !ok {
		return "content must have categories and one row of cells per row with one cell per category"
	}
	return ""
}

type SaveTemplateRequest struct {
	Name string `json:"name"`
}

type ApplyTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

func handleListTemplates(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := store.ListTemplates(r.Context())
		if err != nil {
			logger.Error("listing templates", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, templates)
	}
}

func handleCreateTemplate(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TemplateRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		createTemplate(w, r, logger, store, req.Name, req.Content)
	}
}

func handleGetTemplate(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, err := store.GetTemplate(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			logger.Error("getting template", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, tpl)
	}
}

func handleDeleteTemplate(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.DeleteTemplate(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			logger.Error("deleting template", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleSaveTemplate stores the session's current board text as a template.
func handleSaveTemplate(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveTemplateRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		createTemplate(w, r, logger, store, name, sessionFrom(r).Controller.Content())
	}
}

// handleApplyTemplate loads a template onto the session's board. The session
// must be in config mode.
func handleApplyTemplate(logger *slog.Logger, store TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplyTemplateRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tpl, err := store.GetTemplate(r.Context(), req.TemplateID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			logger.Error("getting template", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.LoadContent(tpl.Content)
		respondCommand(w, sess, ok, "template cannot be applied in this mode or exceeds the board limits")
	}
}

func createTemplate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, store TemplateStore, name string, content jeopardy.Content) {
	tpl, err := store.CreateTemplate(r.Context(), name, content)
	if errors.Is(err, ErrDuplicateName) {
		writeError(w, http.StatusConflict, "a template with this name already exists")
		return
	}
	if err != nil {
		logger.Error("creating template", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

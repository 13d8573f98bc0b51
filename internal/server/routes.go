package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	sessions, broker, templates := deps.Sessions, deps.Broker, deps.Templates

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Jeopardy API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.DB, sessions))

	r.Post("/api/sessions", handleCreateSession(logger, sessions))
	r.Get("/api/sessions", handleListSessions(sessions))

	// Session routes: {sessionID} resolved by sessionMiddleware.
	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))

		// Read-only views for displays and players.
		r.Get("/", handleGetSession())
		r.Get("/content", handleGetContent())
		r.Get("/board/cells/{row}/{col}", handleGetCell())
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleWSEvents(logger, broker))

		// Host commands.
		r.Group(func(r chi.Router) {
			r.Use(hostAuthMiddleware)

			r.Delete("/", handleDeleteSession(sessions))
			r.Post("/mode", handleSetMode())
			r.Post("/reset", handleReset())

			r.Put("/board/size", handleResizeBoard())
			r.Put("/board/categories/{col}", handleSetCategory())
			r.Put("/board/cells/{row}/{col}", handleSetCellContent())

			r.Post("/teams", handleAddTeam())
			r.Put("/teams/{index}", handleRenameTeam())
			r.Post("/teams/next", handleNextTeam())
			r.Post("/score", handleChangeScore())

			r.Post("/cells/{row}/{col}/select", handleSelectCell())
			r.Post("/cells/{row}/{col}/answer", handleRevealAnswer())
			r.Post("/cells/{row}/{col}/correct", handleAnswer(true))
			r.Post("/cells/{row}/{col}/incorrect", handleAnswer(false))
			r.Post("/cells/{row}/{col}/attempted", handleMarkAttempted())
			r.Post("/cells/{row}/{col}/pass", handlePass())
			r.Post("/cells/{row}/{col}/complete", handleCompleteQuestion())

			r.Post("/template", handleApplyTemplate(logger, templates))
			r.Post("/templates", handleSaveTemplate(logger, templates))
		})
	})

	r.Route("/api/templates", func(r chi.Router) {
		r.Get("/", handleListTemplates(logger, templates))
		r.Post("/", handleCreateTemplate(logger, templates))
		r.Get("/{id}", handleGetTemplate(logger, templates))
		r.Delete("/{id}", handleDeleteTemplate(logger, templates))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving host display", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}

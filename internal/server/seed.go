package server

import (
	"context"
	"log/slog"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

const demoTemplateName = "Demo"

// SeedDemo inserts a demo template built from the default board if the
// library is empty. Idempotent: does nothing if any template exists.
func SeedDemo(ctx context.Context, logger *slog.Logger, store TemplateStore) error {
	existing, err := store.ListTemplates(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	game := jeopardy.NewGame(jeopardy.Options{TeamNames: []string{}})
	if _, err := store.CreateTemplate(ctx, demoTemplateName, game.Content()); err != nil {
		return err
	}

	logger.Info("demo template created")
	return nil
}

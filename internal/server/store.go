package server

import (
	"context"
	"errors"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("duplicate name")
)

// TemplateSummary is a template without its content.
type TemplateSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	CreatedAt string `json:"createdAt"`
}

// TemplateDetail is a stored board template.
type TemplateDetail struct {
	TemplateSummary
	Content jeopardy.Content `json:"content"`
}

// TemplateStore persists reusable board content. It never stores scores or
// any other session state.
type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]TemplateSummary, error)
	CreateTemplate(ctx context.Context, name string, content jeopardy.Content) (TemplateDetail, error)
	GetTemplate(ctx context.Context, id string) (TemplateDetail, error)
	DeleteTemplate(ctx context.Context, id string) error
}

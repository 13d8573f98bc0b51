package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

// SQLiteStore implements TemplateStore with the template content kept as a
// JSONB document. The schema is owned by the migrations package.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, row_count, col_count, created_at
		FROM board_templates
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TemplateSummary{}
	for rows.Next() {
		var t TemplateSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Rows, &t.Cols, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateTemplate(ctx context.Context, name string, content jeopardy.Content) (TemplateDetail, error) {
	rowCount, colCount, ok := content.Size()
	if !ok {
		return TemplateDetail{}, fmt.Errorf("template %q has an invalid board shape", name)
	}
	data, err := json.Marshal(content)
	if err != nil {
		return TemplateDetail{}, err
	}

	t := TemplateDetail{
		TemplateSummary: TemplateSummary{
			ID:        uuid.NewString(),
			Name:      name,
			Rows:      rowCount,
			Cols:      colCount,
			CreatedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		},
		Content: content,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO board_templates (id, name, row_count, col_count, data, created_at)
		VALUES (?, ?, ?, ?, jsonb(?), ?)
	`, t.ID, t.Name, t.Rows, t.Cols, string(data), t.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return TemplateDetail{}, ErrDuplicateName
		}
		return TemplateDetail{}, err
	}
	return t, nil
}

func (s *SQLiteStore) GetTemplate(ctx context.Context, id string) (TemplateDetail, error) {
	var (
		t    TemplateDetail
		data string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, row_count, col_count, created_at, json(data)
		FROM board_templates
		WHERE id = ?
	`, id).Scan(&t.ID, &t.Name, &t.Rows, &t.Cols, &t.CreatedAt, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return TemplateDetail{}, ErrNotFound
	}
	if err != nil {
		return TemplateDetail{}, err
	}
	if err := json.Unmarshal([]byte(data), &t.Content); err != nil {
		return TemplateDetail{}, fmt.Errorf("decoding template %s: %w", id, err)
	}
	return t, nil
}

func (s *SQLiteStore) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM board_templates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

package server

import (
	"net/http"
	"testing"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/jeopardy"
)

func TestConfigureBoard(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := env.createSession(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"resize", http.MethodPut, "/board/size", BoardSizeRequest{Rows: 3, Cols: 3}, http.StatusOK},
		{"resize below limit", http.MethodPut, "/board/size", BoardSizeRequest{Rows: 2, Cols: 3}, http.StatusConflict},
		{"resize above limit", http.MethodPut, "/board/size", BoardSizeRequest{Rows: 3, Cols: 9}, http.StatusConflict},
		{"category", http.MethodPut, "/board/categories/1", CategoryRequest{Name: "Rivers"}, http.StatusOK},
		{"category out of range", http.MethodPut, "/board/categories/7", CategoryRequest{Name: "Rivers"}, http.StatusConflict},
		{"category bad index", http.MethodPut, "/board/categories/x", CategoryRequest{Name: "Rivers"}, http.StatusBadRequest},
		{"cell", http.MethodPut, "/board/cells/2/1", CellContentRequest{Question: "Longest river?", Answer: "Nile"}, http.StatusOK},
		{"cell out of range", http.MethodPut, "/board/cells/5/0", CellContentRequest{Question: "q", Answer: "a"}, http.StatusConflict},
		{"bad body", http.MethodPut, "/board/size", "not an object", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, base+tt.path, hostKey, tt.body)
			wantStatus(t, w, tt.want)
		})
	}

	w := env.do(t, http.MethodGet, base+"/board/cells/2/1", "", nil)
	wantStatus(t, w, http.StatusOK)
	var cell controller.CellState
	decode(t, w, &cell)
	if cell.Cell.Question != "Longest river?" || cell.Cell.Points != 300 || cell.Category != "Rivers" {
		t.Errorf("cell = %+v, want the edited 300 point Rivers cell", cell)
	}

	w = env.do(t, http.MethodGet, base+"/content", "", nil)
	wantStatus(t, w, http.StatusOK)
	var content jeopardy.Content
	decode(t, w, &content)
	if rows, cols, ok := content.Size(); !ok || rows != 3 || cols != 3 {
		t.Errorf("content size = %dx%d (%v), want 3x3", rows, cols, ok)
	}
}

func TestConfigRejectedWhilePlaying(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := env.createSession(t)

	w := env.do(t, http.MethodPost, base+"/mode", hostKey, ModeRequest{Mode: jeopardy.ModePlaying})
	wantStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodPut, base+"/board/size", hostKey, BoardSizeRequest{Rows: 4, Cols: 4})
	wantStatus(t, w, http.StatusConflict)

	w = env.do(t, http.MethodPut, base+"/board/cells/0/0", hostKey, CellContentRequest{Question: "q", Answer: "a"})
	wantStatus(t, w, http.StatusConflict)
}

func TestGetCellNotFound(t *testing.T) {
	env := setupEnv(t)
	base, _ := env.createSession(t)

	w := env.do(t, http.MethodGet, base+"/board/cells/9/9", "", nil)
	wantStatus(t, w, http.StatusNotFound)
}

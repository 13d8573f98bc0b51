package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/database"
	"github.com/playperu/jeopardy/internal/jeopardy"
	"github.com/playperu/jeopardy/internal/migrations"
)

type testEnv struct {
	handler   http.Handler
	sessions  *Registry
	broker    *Broker
	templates *SQLiteStore
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	broker := NewBroker()
	sessions := NewRegistry(logger, broker, jeopardy.DefaultOptions(), 4)
	store := NewSQLiteStore(db)

	return &testEnv{
		handler: newRouter(logger, Deps{
			Sessions:  sessions,
			Broker:    broker,
			Templates: store,
			DB:        store,
		}),
		sessions:  sessions,
		broker:    broker,
		templates: store,
	}
}

func (e *testEnv) do(t *testing.T, method, path, hostKey string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if hostKey != "" {
		req.Header.Set("Authorization", "Bearer "+hostKey)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// createSession creates a session over HTTP and returns its base path and host key.
func (e *testEnv) createSession(t *testing.T) (string, string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/sessions", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, want %d; body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	var resp CreateSessionResponse
	decode(t, w, &resp)
	if resp.ID == "" || resp.HostKey == "" {
		t.Fatalf("create session returned empty id or host key: %+v", resp)
	}
	return "/api/sessions/" + resp.ID, resp.HostKey
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, w.Body.String())
	}
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) controller.Snapshot {
	t.Helper()
	var s controller.Snapshot
	decode(t, w, &s)
	return s
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}

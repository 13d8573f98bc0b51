package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestHandleHealth(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("disk gone") })

	tests := []struct {
		name         string
		db           Pinger
		fill         bool
		wantStatus   int
		wantSQLite   string
		wantSessions string
	}{
		{"all ok", ok, false, http.StatusOK, "ok", "ok"},
		{"sqlite down", down, false, http.StatusServiceUnavailable, "error", "ok"},
		{"sessions full", ok, true, http.StatusServiceUnavailable, "ok", "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewRegistry(discardLogger(), NewBroker(), jeopardy.DefaultOptions(), 1)
			if tt.fill {
				if _, _, err := sessions.Create(); err != nil {
					t.Fatalf("create session: %v", err)
				}
			}
			h := handleHealth(discardLogger(), tt.db, sessions)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]struct{ Status string }
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if got := body["sqlite"].Status; got != tt.wantSQLite {
				t.Errorf("sqlite = %q, want %q", got, tt.wantSQLite)
			}
			if got := body["sessions"].Status; got != tt.wantSessions {
				t.Errorf("sessions = %q, want %q", got, tt.wantSessions)
			}
		})
	}
}

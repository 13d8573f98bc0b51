package server

import (
	"net/http"
	"testing"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

func startPlaying(t *testing.T, env *testEnv) (string, string) {
	t.Helper()
	base, hostKey := env.createSession(t)
	w := env.do(t, http.MethodPost, base+"/mode", hostKey, ModeRequest{Mode: jeopardy.ModePlaying})
	wantStatus(t, w, http.StatusOK)
	return base, hostKey
}

func TestStealOverHTTP(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := startPlaying(t, env)

	w := env.do(t, http.MethodPost, base+"/cells/2/0/select", hostKey, nil)
	wantStatus(t, w, http.StatusOK)

	// Team 1 misses the 300 point cell; Team 2 gets to steal it.
	w = env.do(t, http.MethodPost, base+"/cells/2/0/incorrect", hostKey, nil)
	wantStatus(t, w, http.StatusOK)
	var resp AnswerResponse
	decode(t, w, &resp)
	if !resp.Outcome.Stolen || resp.Outcome.Completed {
		t.Errorf("outcome = %+v, want stolen and not completed", resp.Outcome)
	}
	if resp.Outcome.Score != -300 || resp.State.Teams[0].Score != -300 {
		t.Errorf("team 1 score = %d, want -300", resp.State.Teams[0].Score)
	}
	if resp.State.CurrentTeam != 1 {
		t.Errorf("current team = %d, want 1", resp.State.CurrentTeam)
	}

	// The cell is still open and cannot be selected again.
	w = env.do(t, http.MethodPost, base+"/cells/2/0/select", hostKey, nil)
	wantStatus(t, w, http.StatusConflict)

	w = env.do(t, http.MethodPost, base+"/cells/2/0/correct", hostKey, nil)
	wantStatus(t, w, http.StatusOK)
	resp = AnswerResponse{}
	decode(t, w, &resp)
	if !resp.Outcome.Completed || resp.Outcome.Team != 1 {
		t.Errorf("outcome = %+v, want completed by team 1", resp.Outcome)
	}
	if resp.State.Teams[1].Score != 300 {
		t.Errorf("team 2 score = %d, want 300", resp.State.Teams[1].Score)
	}
	if resp.State.CurrentTeam != 2 {
		t.Errorf("current team = %d, want 2", resp.State.CurrentTeam)
	}
	if !resp.State.Board.Cells[2][0].Revealed {
		t.Error("cell not revealed after correct answer")
	}

	// Closed cells cannot be answered.
	w = env.do(t, http.MethodPost, base+"/cells/2/0/incorrect", hostKey, nil)
	wantStatus(t, w, http.StatusConflict)
}

func TestEveryTeamMisses(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := startPlaying(t, env)

	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodPost, base+"/cells/0/0/incorrect", hostKey, nil)
		wantStatus(t, w, http.StatusOK)
	}

	s := decodeSnapshot(t, env.do(t, http.MethodGet, base, "", nil))
	for i, team := range s.Teams {
		if team.Score != -100 {
			t.Errorf("team %d score = %d, want -100", i, team.Score)
		}
	}
	if !s.Board.Cells[0][0].Revealed {
		t.Error("cell not closed after every team missed")
	}
	if s.CurrentTeam != 0 {
		t.Errorf("current team = %d, want 0", s.CurrentTeam)
	}
}

func TestManualCellCommands(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := startPlaying(t, env)

	steps := []struct {
		path string
		want int
	}{
		{"/cells/1/1/answer", http.StatusOK},
		{"/cells/1/1/attempted", http.StatusOK},
		{"/cells/1/1/pass", http.StatusOK},
		{"/cells/1/1/complete", http.StatusOK},
		{"/cells/1/1/select", http.StatusConflict},
		{"/cells/x/1/select", http.StatusBadRequest},
		{"/teams/next", http.StatusOK},
	}
	for _, step := range steps {
		w := env.do(t, http.MethodPost, base+step.path, hostKey, nil)
		if w.Code != step.want {
			t.Fatalf("%s: status = %d, want %d", step.path, w.Code, step.want)
		}
	}

	s := decodeSnapshot(t, env.do(t, http.MethodGet, base, "", nil))
	if s.CurrentTeam != 2 {
		t.Errorf("current team = %d, want 2", s.CurrentTeam)
	}
	if cell := s.Board.Cells[1][1]; !cell.Revealed || !cell.AnswerRevealed {
		t.Errorf("cell = %+v, want revealed with answer shown", cell)
	}
}

func TestChangeScore(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := env.createSession(t)

	w := env.do(t, http.MethodPost, base+"/score", hostKey, ScoreRequest{Points: 100})
	wantStatus(t, w, http.StatusConflict)

	w = env.do(t, http.MethodPost, base+"/mode", hostKey, ModeRequest{Mode: jeopardy.ModePlaying})
	wantStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodPost, base+"/score", hostKey, ScoreRequest{Points: 500})
	wantStatus(t, w, http.StatusOK)
	w = env.do(t, http.MethodPost, base+"/score", hostKey, ScoreRequest{Points: -200})
	wantStatus(t, w, http.StatusOK)

	if s := decodeSnapshot(t, w); s.Teams[0].Score != 300 {
		t.Errorf("score = %d, want 300", s.Teams[0].Score)
	}
}

func TestTeams(t *testing.T) {
	env := setupEnv(t)
	base, hostKey := env.createSession(t)

	w := env.do(t, http.MethodPost, base+"/teams", hostKey, TeamRequest{Name: "Owls"})
	wantStatus(t, w, http.StatusOK)
	w = env.do(t, http.MethodPost, base+"/teams", hostKey, TeamRequest{})
	wantStatus(t, w, http.StatusOK)

	s := decodeSnapshot(t, w)
	if len(s.Teams) != 5 || s.Teams[3].Name != "Owls" || s.Teams[4].Name != "Team 5" {
		t.Errorf("teams = %+v, want Owls and Team 5 appended", s.Teams)
	}

	w = env.do(t, http.MethodPost, base+"/teams", hostKey, TeamRequest{Name: "Extra"})
	wantStatus(t, w, http.StatusConflict)

	w = env.do(t, http.MethodPut, base+"/teams/0", hostKey, TeamRequest{Name: "Foxes"})
	wantStatus(t, w, http.StatusOK)
	if s := decodeSnapshot(t, w); s.Teams[0].Name != "Foxes" {
		t.Errorf("team 0 = %q, want Foxes", s.Teams[0].Name)
	}

	w = env.do(t, http.MethodPut, base+"/teams/0", hostKey, TeamRequest{Name: "  "})
	wantStatus(t, w, http.StatusBadRequest)
	w = env.do(t, http.MethodPut, base+"/teams/9", hostKey, TeamRequest{Name: "Ghosts"})
	wantStatus(t, w, http.StatusConflict)
}

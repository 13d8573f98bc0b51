package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/jeopardy"
)

// Request shapes for the reflector: path parameters, host key header and body.

type sessionPath struct {
	SessionID string `path:"sessionID"`
}

type hostSessionPath struct {
	SessionID     string `path:"sessionID"`
	Authorization string `header:"Authorization" description:"Bearer <hostKey>"`
}

type cellPath struct {
	SessionID string `path:"sessionID"`
	Row       int    `path:"row"`
	Col       int    `path:"col"`
}

type hostCellPath struct {
	hostSessionPath
	Row int `path:"row"`
	Col int `path:"col"`
}

type templatePath struct {
	ID string `path:"id"`
}

type modeOp struct {
	hostSessionPath
	ModeRequest
}

type boardSizeOp struct {
	hostSessionPath
	BoardSizeRequest
}

type categoryOp struct {
	hostSessionPath
	Col int `path:"col"`
	CategoryRequest
}

type cellContentOp struct {
	hostCellPath
	CellContentRequest
}

type addTeamOp struct {
	hostSessionPath
	TeamRequest
}

type renameTeamOp struct {
	hostSessionPath
	Index int `path:"index"`
	TeamRequest
}

type scoreOp struct {
	hostSessionPath
	ScoreRequest
}

type applyTemplateOp struct {
	hostSessionPath
	ApplyTemplateRequest
}

type saveTemplateOp struct {
	hostSessionPath
	SaveTemplateRequest
}

type response struct {
	status int
	body   any
}

func addOperation(r *openapi3.Reflector, method, path, summary, description string, req any, resps ...response) {
	oc, _ := r.NewOperationContext(method, path)
	oc.SetSummary(summary)
	oc.SetDescription(description)
	if req != nil {
		oc.AddReqStructure(req)
	}
	for _, resp := range resps {
		oc.AddRespStructure(resp.body, openapi.WithHTTPStatus(resp.status))
	}
	_ = r.AddOperation(oc)
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Jeopardy API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Host-driven Jeopardy sessions with team scoring and point stealing.")

	var (
		snapshot     = response{http.StatusOK, controller.Snapshot{}}
		badRequest   = response{http.StatusBadRequest, ErrorResponse{}}
		unauthorized = response{http.StatusUnauthorized, ErrorResponse{}}
		notFound     = response{http.StatusNotFound, ErrorResponse{}}
		conflict     = response{http.StatusConflict, ErrorResponse{}}
		noContent    = response{http.StatusNoContent, nil}
	)

	addOperation(r, http.MethodGet, "/healthz", "Health check",
		"Returns the health of the template database and the session registry.", nil,
		response{http.StatusOK, HealthResponse{}},
		response{http.StatusServiceUnavailable, HealthResponse{}})

	// Sessions.
	addOperation(r, http.MethodPost, "/api/sessions", "Create session",
		"Starts a game in config mode. The host key is returned only once.", nil,
		response{http.StatusCreated, CreateSessionResponse{}},
		response{http.StatusServiceUnavailable, ErrorResponse{}})
	addOperation(r, http.MethodGet, "/api/sessions", "List sessions",
		"Returns the live sessions in creation order.", nil,
		response{http.StatusOK, []SessionSummary{}})
	addOperation(r, http.MethodGet, "/api/sessions/{sessionID}", "Get session",
		"Returns the full snapshot: mode, board, teams and current team.", sessionPath{},
		snapshot, notFound)
	addOperation(r, http.MethodDelete, "/api/sessions/{sessionID}", "Close session",
		"Closes the session and disconnects its event streams.", hostSessionPath{},
		noContent, unauthorized, notFound)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/mode", "Set mode",
		"Switches between config and playing. Entering playing resets scores and the board.", modeOp{},
		snapshot, badRequest, unauthorized, notFound)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/reset", "Reset game",
		"Starts a fresh round with zero scores and every cell closed.", hostSessionPath{},
		snapshot, unauthorized, notFound)
	addOperation(r, http.MethodGet, "/api/sessions/{sessionID}/content", "Get board content",
		"Returns the authored categories and cell texts.", sessionPath{},
		response{http.StatusOK, jeopardy.Content{}}, notFound)

	// Board configuration.
	addOperation(r, http.MethodPut, "/api/sessions/{sessionID}/board/size", "Resize board",
		"Config mode only. Surviving cells keep their text.", boardSizeOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPut, "/api/sessions/{sessionID}/board/categories/{col}", "Rename category",
		"Config mode only.", categoryOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPut, "/api/sessions/{sessionID}/board/cells/{row}/{col}", "Set cell text",
		"Config mode only.", cellContentOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodGet, "/api/sessions/{sessionID}/board/cells/{row}/{col}", "Get cell",
		"Returns the cell with whether the current team may attempt it and whether it is being stolen.", cellPath{},
		response{http.StatusOK, controller.CellState{}}, badRequest, notFound)

	// Teams.
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/teams", "Add team",
		"Appends a team. An empty name becomes \"Team N\".", addTeamOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPut, "/api/sessions/{sessionID}/teams/{index}", "Rename team",
		"Renames the team at index.", renameTeamOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/teams/next", "Next team",
		"Playing mode only. Passes the turn to the next team.", hostSessionPath{},
		snapshot, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/score", "Adjust score",
		"Playing mode only. Adds points to the current team; negative points subtract.", scoreOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)

	// Play.
	cellCommands := []struct {
		action, summary, description string
	}{
		{"select", "Select cell", "Opens a closed cell for the current team."},
		{"answer", "Reveal answer", "Marks the cell's answer text as shown."},
		{"attempted", "Mark attempted", "Records that the current team has tried the cell."},
		{"pass", "Pass to next team", "Hands the cell to the next team that has not tried it."},
		{"complete", "Complete question", "Closes the cell for the rest of the round."},
	}
	for _, cmd := range cellCommands {
		addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/cells/{row}/{col}/"+cmd.action,
			cmd.summary, "Playing mode only. "+cmd.description, hostCellPath{},
			snapshot, badRequest, unauthorized, notFound, conflict)
	}
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/cells/{row}/{col}/correct", "Correct answer",
		"Awards the cell to the current team, closes it and passes the turn.", hostCellPath{},
		response{http.StatusOK, AnswerResponse{}}, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/cells/{row}/{col}/incorrect", "Incorrect answer",
		"Deducts the cell's points and offers it to the next team that has not tried it.", hostCellPath{},
		response{http.StatusOK, AnswerResponse{}}, badRequest, unauthorized, notFound, conflict)

	// Events.
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events: one frame per state change, named after the event type.")
	getEvents.AddReqStructure(sessionPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/ws")
	getWS.SetSummary("WebSocket event stream")
	getWS.SetDescription("Upgrades to a WebSocket that carries the same events as the SSE stream.")
	getWS.AddReqStructure(sessionPath{})
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// Templates.
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/template", "Apply template",
		"Config mode only. Replaces the board with the template's content.", applyTemplateOp{},
		snapshot, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodPost, "/api/sessions/{sessionID}/templates", "Save board as template",
		"Stores the current categories and cell texts. Scores and reveal state are not stored.", saveTemplateOp{},
		response{http.StatusCreated, TemplateDetail{}}, badRequest, unauthorized, notFound, conflict)
	addOperation(r, http.MethodGet, "/api/templates", "List templates",
		"Returns stored templates, oldest first.", nil,
		response{http.StatusOK, []TemplateSummary{}})
	addOperation(r, http.MethodPost, "/api/templates", "Create template",
		"Stores board content under a unique name.", TemplateRequest{},
		response{http.StatusCreated, TemplateDetail{}}, badRequest, conflict)
	addOperation(r, http.MethodGet, "/api/templates/{id}", "Get template",
		"Returns a template with its content.", templatePath{},
		response{http.StatusOK, TemplateDetail{}}, notFound)
	addOperation(r, http.MethodDelete, "/api/templates/{id}", "Delete template",
		"Deletes a template.", templatePath{},
		noContent, notFound)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

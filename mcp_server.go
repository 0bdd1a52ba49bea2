package main

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ReportInput struct {
	Reload       bool `json:"reload,omitempty" jsonschema:"Re-read the grid file before running"`
	TopPositions *int `json:"top_positions,omitempty" jsonschema:"Override how many items are listed for this run"`
}

type ReportOutput struct {
	Display string       `json:"display" jsonschema:"Text written to the cockpit screen; empty when validation failed"`
	Echo    string       `json:"echo" jsonschema:"Programmable block detail output of the run"`
	Error   string       `json:"error,omitempty" jsonschema:"Validation error, if the run was aborted"`
	State   CargoSummary `json:"state" jsonschema:"Summary of the cargo state"`
}

type MCPServer struct {
	mu      sync.Mutex
	session *Session
}

func NewMCPServer(session *Session) *MCPServer {
	return &MCPServer{session: session}
}

// HandleReport runs one session tick, so a session with Reload set
// re-reads its grid here as it would on the scheduler.
func (s *MCPServer) HandleReport(_ context.Context, _ *mcp.CallToolRequest, input *ReportInput) (*mcp.CallToolResult, *ReportOutput, error) {
	if input == nil {
		input = &ReportInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reload && !s.session.Reload {
		if err := s.session.ReloadGrid(); err != nil {
			return nil, nil, err
		}
	}

	prog := s.session.Program
	if input.TopPositions != nil {
		if *input.TopPositions < 0 {
			return nil, nil, errors.New("top_positions must be >= 0")
		}
		saved := prog.Config.TopPositions
		prog.Config.TopPositions = *input.TopPositions
		defer func() { prog.Config.TopPositions = saved }()
	}

	r, err := s.session.Tick()
	out := &ReportOutput{
		Echo:  prog.EchoText(),
		State: SummarizeReport(r),
	}
	if err != nil {
		if !errors.Is(err, ErrTargetNotFound) {
			return nil, nil, err
		}
		out.Error = err.Error()
		return nil, out, nil
	}
	out.Display = r.Text
	return nil, out, nil
}

const reportToolDescription = "Scan the ship's cargo containers, connectors and tools and redraw the cockpit cargo screen. " +
	"Returns the screen text (used/max volume in m³, fill bar, free volume, largest item stacks), " +
	"the load band (low/Green, medium/Yellow, high/Red) and per-item quantities merged by subtype."

// MCPHTTPOptions configures the Streamable HTTP endpoint.
type MCPHTTPOptions struct {
	Addr string
	Path string
	// Origins lists the browser origins allowed to call the endpoint.
	// Requests without an Origin header are always let through.
	Origins      []string
	Token        string
	JSONResponse bool
	Stateless    bool
}

// Handler mounts the cargo_report tool at opts.Path behind the origin and
// token checks.
func (s *MCPServer) Handler(opts MCPHTTPOptions) http.Handler {
	tools := mcp.NewServer(&mcp.Implementation{Name: "cargoscreen", Version: "v1.0.0"}, nil)
	mcp.AddTool(tools, &mcp.Tool{Name: "cargo_report", Description: reportToolDescription}, s.HandleReport)

	stream := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return tools },
		&mcp.StreamableHTTPOptions{
			Stateless:    opts.Stateless,
			JSONResponse: opts.JSONResponse,
			Logger:       s.session.Program.Log,
		})

	path := opts.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	mux := http.NewServeMux()
	mux.Handle(path, guardRequests(stream, opts.Origins, opts.Token))
	return mux
}

func RunMCPHTTP(server *MCPServer, opts MCPHTTPOptions) error {
	server.session.Program.Log.Info("cargo report MCP endpoint", "addr", opts.Addr, "path", opts.Path)
	return (&http.Server{Addr: opts.Addr, Handler: server.Handler(opts)}).ListenAndServe()
}

// guardRequests rejects foreign origins and, when token is set, requests
// without the bearer token.
func guardRequests(next http.Handler, origins []string, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && !slices.Contains(origins, origin) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/internal/presentation/graph"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/go-chi/chi/v5"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Inspector is the part of the emulator exposed over HTTP.
type Inspector interface {
	Roots() []domain.RootTag
	Snapshot(root domain.RootTag) (*domain.TreeSnapshot, error)
	GetParentNode(node *domain.Node) any
	GetChildNodes(node *domain.Node) []any
	Calls(op string) []domain.Call
	Reset()
}

// Server implements the generated ServerInterface.
// The emulator is not safe for concurrent use, so every request holds mu.
type Server struct {
	Inspector Inspector
	Logger    *slog.Logger
	mu        sync.Mutex
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// NewHandler creates a new HTTP handler for the inspector.
func NewHandler(inspector Inspector, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{Inspector: inspector, Logger: logger}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return HandlerFromMux(s, r)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>fabricmock API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, Health{
		Status:     "ok",
		Version:    strings.TrimSpace(fabricmock.Version),
		ApiVersion: apiVersion,
	})
}

// ListRoots handles GET /roots.
func (s *Server) ListRoots(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	roots := s.Inspector.Roots()
	s.mu.Unlock()

	tags := make([]int, 0, len(roots))
	for _, root := range roots {
		tags = append(tags, int(root))
	}
	s.writeJSON(w, tags)
}

// GetRoot handles GET /roots/{root}.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request, root Root) {
	snap, ok := s.snapshot(w, root)
	if !ok {
		return
	}
	s.writeJSON(w, mapSnapshotFromDomain(snap))
}

// GetRootMermaid handles GET /roots/{root}/mermaid.
func (s *Server) GetRootMermaid(w http.ResponseWriter, r *http.Request, root Root, params GetRootMermaidParams) {
	snap, ok := s.snapshot(w, root)
	if !ok {
		return
	}

	var overlay *graph.GraphOverlay
	if params.Highlight != nil {
		overlay = &graph.GraphOverlay{Highlight: []int{*params.Highlight}}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(snap, overlay))
}

// GetParent handles GET /roots/{root}/nodes/{tag}/parent.
func (s *Server) GetParent(w http.ResponseWriter, r *http.Request, root Root, tag Tag) {
	s.mu.Lock()
	handle := s.Inspector.GetParentNode(probeNode(root, tag))
	s.mu.Unlock()

	s.writeJSON(w, ParentResponse{Handle: handle})
}

// GetChildren handles GET /roots/{root}/nodes/{tag}/children.
func (s *Server) GetChildren(w http.ResponseWriter, r *http.Request, root Root, tag Tag) {
	s.mu.Lock()
	handles := s.Inspector.GetChildNodes(probeNode(root, tag))
	s.mu.Unlock()

	s.writeJSON(w, ChildrenResponse{Handles: handles})
}

// ListCalls handles GET /calls, optionally filtered by ?op=.
func (s *Server) ListCalls(w http.ResponseWriter, r *http.Request, params ListCallsParams) {
	op := ""
	if params.Op != nil {
		op = *params.Op
	}

	s.mu.Lock()
	calls := s.Inspector.Calls(op)
	s.mu.Unlock()

	views := make([]CallView, 0, len(calls))
	for _, c := range calls {
		v := CallView{Timestamp: c.Timestamp, Op: c.Op}
		if c.Err != nil {
			v.Error = ptr(c.Err.Error())
		}
		views = append(views, v)
	}
	s.writeJSON(w, views)
}

// ResetManager handles POST /reset.
func (s *Server) ResetManager(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.Inspector.Reset()
	s.mu.Unlock()

	s.Logger.Info("manager reset via http")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) snapshot(w http.ResponseWriter, root Root) (*domain.TreeSnapshot, bool) {
	s.mu.Lock()
	snap, err := s.Inspector.Snapshot(domain.RootTag(root))
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, domain.ErrRootNotCommitted) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return nil, false
		}
		http.Error(w, fmt.Sprintf("Snapshot error: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return snap, true
}

// probeNode builds a host node carrying only the identity fields. The
// emulator resolves nodes by root and tag, so that is all it needs.
func probeNode(root Root, tag Tag) *domain.Node {
	return &domain.Node{Tag: tag, RootTag: domain.RootTag(root), Kind: domain.KindHost, ViewName: "probe"}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "error", err)
	}
}

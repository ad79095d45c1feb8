// Package http exposes path execution to host applications over HTTP.
// It is a thin transport: the wire format here is the adapter's, not the
// core's, and hosts are free to mount the handler under their own router.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/schema"
	"github.com/grammophone/domos/pkg/session"
)

// Engine defines the interface the adapter needs from the execution core.
type Engine interface {
	ExecutePath(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject, args map[string]any) (*domain.StateTransition, error)
	History(ctx context.Context, objectID string) ([]*domain.StateTransition, error)
}

// Server handles path execution requests.
type Server struct {
	engine  Engine
	objects ports.ObjectSource
	logger  *slog.Logger
}

// NewHandler creates an HTTP handler over the engine. The object source
// resolves the entity IDs received on the wire; the acting identity is
// taken from the X-Actor-Id / X-Actor-Name headers set by the host's
// authentication layer.
func NewHandler(engine Engine, objects ports.ObjectSource, logger *slog.Logger) http.Handler {
	s := &Server{
		engine:  engine,
		objects: objects,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Post("/graphs/{graph}/paths/{path}/executions", s.executePath)
	r.Get("/objects/{objectID}/transitions", s.listTransitions)
	return r
}

type executeRequest struct {
	ObjectID  string         `json:"object_id"`
	Arguments map[string]any `json:"arguments"`
}

type errorResponse struct {
	Error      string              `json:"error"`
	Violations map[string][]string `json:"violations,omitempty"`
}

func (s *Server) executePath(w http.ResponseWriter, r *http.Request) {
	graph := chi.URLParam(r, "graph")
	path := chi.URLParam(r, "path")

	var body executeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if body.ObjectID == "" {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "object_id is required"})
		return
	}

	actor := domain.Identity{
		ID:   r.Header.Get("X-Actor-Id"),
		Name: r.Header.Get("X-Actor-Name"),
	}
	sess, err := session.New(actor)
	if err != nil {
		writeError(w, http.StatusUnauthorized, errorResponse{Error: "acting identity is required"})
		return
	}

	obj, err := s.objects.Object(r.Context(), body.ObjectID)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			writeError(w, http.StatusNotFound, errorResponse{Error: "object not found"})
			return
		}
		s.logger.Error("object lookup failed", "object", body.ObjectID, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "object lookup failed"})
		return
	}

	tr, err := s.engine.ExecutePath(r.Context(), sess, graph, path, obj, body.Arguments)
	if err != nil {
		s.writeExecutionError(w, graph, path, err)
		return
	}

	writeJSON(w, http.StatusCreated, tr)
}

// writeExecutionError maps the error taxonomy onto HTTP status codes.
func (s *Server) writeExecutionError(w http.ResponseWriter, graph, path string, err error) {
	var (
		accessErr    *domain.AccessDeniedError
		integrityErr *domain.IntegrityError
		actionErr    *domain.ActionError
	)

	if violations, ok := schema.AsErrorSet(err); ok {
		writeError(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      "argument validation failed",
			Violations: violations,
		})
		return
	}

	switch {
	case errors.As(err, &accessErr):
		writeError(w, http.StatusForbidden, errorResponse{Error: accessErr.Error()})
	case errors.As(err, &integrityErr):
		writeError(w, http.StatusConflict, errorResponse{Error: integrityErr.Error()})
	case errors.As(err, &actionErr):
		s.logger.Error("action failed", "graph", graph, "path", path, "action", actionErr.ActionKey, "error", err)
		writeError(w, http.StatusBadGateway, errorResponse{Error: actionErr.Error()})
	default:
		s.logger.Error("path execution failed", "graph", graph, "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "path execution failed"})
	}
}

func (s *Server) listTransitions(w http.ResponseWriter, r *http.Request) {
	objectID := chi.URLParam(r, "objectID")

	history, err := s.engine.History(r.Context(), objectID)
	if err != nil {
		s.logger.Error("history read failed", "object", objectID, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "history read failed"})
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}

package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
)

const maxBodyBytes = 1 << 20

// ServerConfig is the configuration for the RPC server.
type ServerConfig struct {
	Service task.Service
	Logger  log.Logger
}

func (c *ServerConfig) defaults() error {
	if c.Service == nil {
		return fmt.Errorf("task service is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "rpc.Server"})
	return nil
}

// Server serves a task.Service over HTTP/JSON.
type Server struct {
	svc     task.Service
	logger  log.Logger
	schemas map[string]*jsonschema.Schema
	mux     *http.ServeMux
}

// NewServer returns a ready to use http.Handler.
func NewServer(cfg ServerConfig) (*Server, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	s := &Server{
		svc:     cfg.Service,
		logger:  cfg.Logger,
		schemas: schemas,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /rpc/{method}", s.handleRPC)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := r.Header.Get(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, reqID)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	method := r.PathValue("method")
	logger := s.logger.WithValues(log.Kv{"method": method, "request-id": w.Header().Get(RequestIDHeader)})

	schema, ok := s.schemas[method]
	if !ok {
		s.writeError(w, logger, http.StatusNotFound, CodeUnimplemented, fmt.Sprintf("unknown method %q", method))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, logger, http.StatusBadRequest, CodeInvalidArgument, "could not read body: "+err.Error())
		return
	}
	if err := validateBody(schema, body); err != nil {
		s.writeError(w, logger, http.StatusBadRequest, validationCode(err), err.Error())
		return
	}

	ctx := r.Context()
	switch method {
	case MethodAddTask:
		var req addTaskRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, logger, http.StatusBadRequest, CodeInvalidArgument, err.Error())
			return
		}
		id, err := s.svc.AddTask(ctx, req.Description)
		if err != nil {
			s.writeServiceError(w, logger, err)
			return
		}
		logger.Debugf("Task %d added", id)
		s.writeJSON(w, logger, http.StatusOK, addTaskResponse{ID: TaskID(id)})

	case MethodGetTask:
		var req getTaskRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, logger, http.StatusBadRequest, CodeInvalidArgument, err.Error())
			return
		}
		t, err := s.svc.GetTask(ctx, req.ID)
		if err != nil {
			s.writeServiceError(w, logger, err)
			return
		}
		s.writeJSON(w, logger, http.StatusOK, t)

	case MethodListTasks:
		tasks, err := s.svc.ListTasks(ctx)
		if err != nil {
			s.writeServiceError(w, logger, err)
			return
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		s.writeJSON(w, logger, http.StatusOK, listTasksResponse{Tasks: tasks})
	}
}

func (s *Server) writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		s.writeError(w, logger, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyDescription):
		s.writeError(w, logger, http.StatusBadRequest, CodeEmptyDescription, err.Error())
	default:
		logger.Errorf("Task service failed: %s", err)
		s.writeError(w, logger, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, logger log.Logger, status int, code, msg string) {
	logger.Debugf("Request failed with %s: %s", code, msg)
	s.writeJSON(w, logger, status, errorResponse{Error: errorBody{Code: code, Message: msg}})
}

func (s *Server) writeJSON(w http.ResponseWriter, logger log.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("Could not write response: %s", err)
	}
}

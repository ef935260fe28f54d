package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
)

// Error is a failure reported by the remote task store.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc %s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps remote codes onto the task package sentinels so callers can use errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case CodeNotFound:
		return task.ErrNotFound
	case CodeEmptyDescription:
		return task.ErrEmptyDescription
	}
	return nil
}

// ClientConfig is the configuration for the RPC client.
type ClientConfig struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     log.Logger
}

func (c *ClientConfig) defaults() error {
	c.Endpoint = strings.TrimRight(strings.TrimSpace(c.Endpoint), "/")
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "rpc.Client"})
	return nil
}

// Client is a task.Service talking to a remote task store.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	logger   log.Logger
}

var _ task.Service = (*Client)(nil)

// NewClient returns a new RPC client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Client{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		http:     cfg.HTTPClient,
		logger:   cfg.Logger,
	}, nil
}

func (c *Client) AddTask(ctx context.Context, description string) (uint64, error) {
	var resp addTaskResponse
	if err := c.call(ctx, MethodAddTask, addTaskRequest{Description: description}, &resp); err != nil {
		return 0, err
	}
	return uint64(resp.ID), nil
}

func (c *Client) GetTask(ctx context.Context, id uint64) (task.Task, error) {
	var resp task.Task
	if err := c.call(ctx, MethodGetTask, getTaskRequest{ID: id}, &resp); err != nil {
		return task.Task{}, err
	}
	return resp, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var resp listTasksResponse
	if err := c.call(ctx, MethodListTasks, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (c *Client) call(ctx context.Context, method string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/rpc/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer res.Body.Close()
	c.logger.WithValues(log.Kv{"method": method, "request-id": reqID}).
		Debugf("Remote call answered %d in %s", res.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}
	if res.StatusCode != http.StatusOK {
		var er errorResponse
		if err := json.Unmarshal(data, &er); err != nil || er.Error.Code == "" {
			return &Error{Status: res.StatusCode, Code: CodeInternal, Message: strings.TrimSpace(string(data))}
		}
		return &Error{Status: res.StatusCode, Code: er.Error.Code, Message: er.Error.Message}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	return nil
}

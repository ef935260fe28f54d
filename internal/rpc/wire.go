// Package rpc exposes a task.Service over HTTP/JSON and provides the matching client.
//
// Every method is a POST to /rpc/<method> with a JSON object body:
//
//	addTask   {"description": "..."}  -> {"id": "42"}
//	getTask   {"id": 42}              -> {"id": 42, "description": "..."}
//	listTasks {}                      -> {"tasks": [{"id": 42, "description": "..."}]}
//
// Failures answer {"error": {"code": "...", "message": "..."}}.
package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jask/icbutler/internal/task"
)

// Method names.
const (
	MethodAddTask   = "addTask"
	MethodGetTask   = "getTask"
	MethodListTasks = "listTasks"
)

// Error codes.
const (
	CodeNotFound         = "not_found"
	CodeInvalidArgument  = "invalid_argument"
	CodeEmptyDescription = "empty_description"
	CodeUnimplemented    = "unimplemented"
	CodeInternal         = "internal"
)

// RequestIDHeader carries the per-request id, echoed back by the server.
const RequestIDHeader = "X-Request-Id"

type addTaskRequest struct {
	Description string `json:"description"`
}

type addTaskResponse struct {
	ID TaskID `json:"id"`
}

type getTaskRequest struct {
	ID uint64 `json:"id"`
}

type listTasksResponse struct {
	Tasks []task.Task `json:"tasks"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TaskID is an id on the wire. It is written as a decimal string and read
// from either a string or a JSON number.
type TaskID uint64

func (id TaskID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(id), 10))
}

func (id *TaskID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("task id: %w", err)
		}
		s = n.String()
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("task id %q: %w", s, err)
	}
	*id = TaskID(v)
	return nil
}

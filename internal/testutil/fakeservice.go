// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/jask/icbutler/internal/task"
)

// Method names accepted by FakeService.Calls and FakeService.Hold.
const (
	MethodAddTask   = "AddTask"
	MethodGetTask   = "GetTask"
	MethodListTasks = "ListTasks"
)

// FakeService is an in-memory implementation of task.Service for testing.
type FakeService struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID uint64
	calls  map[string]int
	gates  map[string]chan struct{}

	// Error injection for testing
	AddTaskErr   error
	GetTaskErr   error
	ListTasksErr error
}

var _ task.Service = (*FakeService)(nil)

// NewFakeService creates an empty FakeService. The first issued id is 1.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID: 1,
		calls:  make(map[string]int),
		gates:  make(map[string]chan struct{}),
	}
}

// Seed adds tasks directly, bypassing call counting, and returns their ids.
func (f *FakeService) Seed(descriptions ...string) []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0, len(descriptions))
	for _, d := range descriptions {
		ids = append(ids, f.insertLocked(d))
	}
	return ids
}

// Calls returns how many times method was invoked.
func (f *FakeService) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// Hold makes every following call to method block until the returned release
// func is called or the call's context is done.
func (f *FakeService) Hold(method string) (release func()) {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[method] = gate
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			if f.gates[method] == gate {
				delete(f.gates, method)
			}
			f.mu.Unlock()
			close(gate)
		})
	}
}

// AddTask implements task.Service.
func (f *FakeService) AddTask(ctx context.Context, description string) (uint64, error) {
	if err := f.enter(ctx, MethodAddTask); err != nil {
		return 0, err
	}
	if f.AddTaskErr != nil {
		return 0, f.AddTaskErr
	}
	desc, err := task.ValidateDescription(description)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertLocked(desc), nil
}

// GetTask implements task.Service.
func (f *FakeService) GetTask(ctx context.Context, id uint64) (task.Task, error) {
	if err := f.enter(ctx, MethodGetTask); err != nil {
		return task.Task{}, err
	}
	if f.GetTaskErr != nil {
		return task.Task{}, f.GetTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("task %d: %w", id, task.ErrNotFound)
}

// ListTasks implements task.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]task.Task, error) {
	if err := f.enter(ctx, MethodListTasks); err != nil {
		return nil, err
	}
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]task.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// enter counts the call and waits on the method's gate, if any.
func (f *FakeService) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.calls[method]++
	gate := f.gates[method]
	f.mu.Unlock()

	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *FakeService) insertLocked(description string) uint64 {
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task.Task{ID: id, Description: description})
	return id
}

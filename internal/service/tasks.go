package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/icbutler/internal/database"
	"github.com/jask/icbutler/internal/database/repository"
	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/task"
)

// TaskService is the task store: task.Service backed by the tasks repository.
type TaskService struct {
	Tasks  *repository.TaskRepo
	Logger log.Logger
}

var _ task.Service = (*TaskService)(nil)

// NewTaskService returns a TaskService with a tagged logger.
func NewTaskService(repo *repository.TaskRepo, logger log.Logger) *TaskService {
	if logger == nil {
		logger = log.Noop
	}
	return &TaskService{Tasks: repo, Logger: logger.WithValues(log.Kv{"svc": "service.Tasks"})}
}

func (s *TaskService) AddTask(ctx context.Context, description string) (uint64, error) {
	desc, err := task.ValidateDescription(description)
	if err != nil {
		return 0, err
	}
	id, err := s.Tasks.Insert(ctx, desc, database.Now())
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	s.logger().Debugf("Task %d added", id)
	return id, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (task.Task, error) {
	row, err := s.Tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return task.Task{}, fmt.Errorf("task %d: %w", id, task.ErrNotFound)
		}
		return task.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return task.Task{ID: row.ID, Description: row.Description}, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.Tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, task.Task{ID: r.ID, Description: r.Description})
	}
	return out, nil
}

func (s *TaskService) logger() log.Logger {
	if s.Logger == nil {
		return log.Noop
	}
	return s.Logger
}

package service

import (
	"context"
	"strings"

	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/models"
	"github.com/taskforge/taskforge/store"
)

// TaskService owns task CRUD. Every operation is scoped by the caller's
// authenticated user id; ownership is enforced in the store queries,
// never in handler logic.
type TaskService struct {
	tasks store.TaskStore
}

func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns all of the user's tasks ordered by ascending id.
func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.tasks.TasksByOwner(ctx, userID)
}

// Create persists a new incomplete task.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, description *string) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, apperrors.Validation("title is required")
	}
	return s.tasks.CreateTask(ctx, userID, title, description)
}

// Update applies the patch's non-nil fields to the user's task. A nil
// field leaves the current value unchanged.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Task{}, apperrors.Validation("title cannot be empty")
	}
	return s.tasks.UpdateTask(ctx, userID, taskID, patch)
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.tasks.DeleteTask(ctx, userID, taskID)
}

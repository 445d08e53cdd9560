// Package store holds the persistence layer. Both implementations
// return errors from the application taxonomy so callers never inspect
// driver errors themselves.
package store

import (
	"context"

	"github.com/taskforge/taskforge/models"
)

// UserStore persists accounts. Users are never updated or deleted.
type UserStore interface {
	// CreateUser persists a new user and returns it with its assigned
	// id. A duplicate username yields a conflict error.
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)

	// UserByUsername returns the user including its password hash, or a
	// not-found error.
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// TaskStore persists tasks. Every read and mutation is filtered by both
// task id and owner id; a task owned by someone else is
// indistinguishable from a missing one.
type TaskStore interface {
	// TasksByOwner returns all of the owner's tasks ordered by
	// ascending id.
	TasksByOwner(ctx context.Context, userID int64) ([]models.Task, error)

	// CreateTask persists a new incomplete task and returns it.
	CreateTask(ctx context.Context, userID int64, title string, description *string) (models.Task, error)

	// UpdateTask applies the non-nil patch fields in a single
	// conditional statement and returns the updated row, or a
	// not-found error when no row matches (taskID, userID).
	UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error)

	// DeleteTask removes the row matching (taskID, userID), or returns
	// a not-found error.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/models"
)

// SQLiteStore implements UserStore and TaskStore over database/sql with
// the modernc SQLite driver. Used for local development and tests.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func isSQLiteUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *SQLiteStore) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
	if isSQLiteUniqueViolation(err) {
		return models.User{}, apperrors.Conflict("username already exists")
	}
	if err != nil {
		return models.User{}, apperrors.Unexpected("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, apperrors.Unexpected("create user", err)
	}
	return models.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}

func (s *SQLiteStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperrors.NotFound("user")
	}
	if err != nil {
		return models.User{}, apperrors.Unexpected("look up user", err)
	}
	return user, nil
}

func (s *SQLiteStore) TasksByOwner(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, is_complete, user_id FROM tasks WHERE user_id = ? ORDER BY id ASC",
		userID,
	)
	if err != nil {
		return nil, apperrors.Unexpected("list tasks", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.IsComplete, &task.UserID); err != nil {
			return nil, apperrors.Unexpected("scan task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Unexpected("list tasks", err)
	}
	return tasks, nil
}

func (s *SQLiteStore) CreateTask(ctx context.Context, userID int64, title string, description *string) (models.Task, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (title, description, user_id) VALUES (?, ?, ?)",
		title, description, userID,
	)
	if err != nil {
		return models.Task{}, apperrors.Unexpected("create task", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, apperrors.Unexpected("create task", err)
	}
	return s.taskByID(ctx, userID, id)
}

func (s *SQLiteStore) UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if patch.Empty() {
		return s.taskByID(ctx, userID, taskID)
	}

	set := []string{}
	args := []any{}
	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.IsComplete != nil {
		set = append(set, "is_complete = ?")
		args = append(args, *patch.IsComplete)
	}
	args = append(args, taskID, userID)

	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(set, ", ")+" WHERE id = ? AND user_id = ?",
		args...,
	)
	if err != nil {
		return models.Task{}, apperrors.Unexpected("update task", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, apperrors.Unexpected("update task", err)
	}
	if affected == 0 {
		return models.Task{}, apperrors.NotFound("task")
	}
	return s.taskByID(ctx, userID, taskID)
}

func (s *SQLiteStore) DeleteTask(ctx context.Context, userID, taskID int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?",
		taskID, userID,
	)
	if err != nil {
		return apperrors.Unexpected("delete task", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Unexpected("delete task", err)
	}
	if affected == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (s *SQLiteStore) taskByID(ctx context.Context, userID, taskID int64) (models.Task, error) {
	var task models.Task
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, is_complete, user_id FROM tasks WHERE id = ? AND user_id = ?",
		taskID, userID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.IsComplete, &task.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, apperrors.NotFound("task")
	}
	if err != nil {
		return models.Task{}, apperrors.Unexpected("get task", err)
	}
	return task, nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/models"
)

// pgUniqueViolation is the PostgreSQL error code for a unique
// constraint violation.
const pgUniqueViolation = "23505"

// PostgresStore implements UserStore and TaskStore over a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx,
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, username",
		username, passwordHash,
	).Scan(&user.ID, &user.Username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.User{}, apperrors.Conflict("username already exists")
		}
		return models.User{}, apperrors.Unexpected("create user", err)
	}
	user.PasswordHash = passwordHash
	return user, nil
}

func (s *PostgresStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx,
		"SELECT id, username, password FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, apperrors.NotFound("user")
	}
	if err != nil {
		return models.User{}, apperrors.Unexpected("look up user", err)
	}
	return user, nil
}

func (s *PostgresStore) TasksByOwner(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, title, description, is_complete, user_id FROM tasks WHERE user_id = $1 ORDER BY id ASC",
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

func (s *PostgresStore) CreateTask(ctx context.Context, userID int64, title string, description *string) (models.Task, error) {
	var task models.Task
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, description, is_complete, user_id`,
		title, description, userID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.IsComplete, &task.UserID)
	if err != nil {
		return models.Task{}, apperrors.Unexpected("create task", err)
	}
	return task, nil
}

// UpdateTask builds a SET clause from the patch's non-nil fields so
// absent fields are never touched, then mutates and reads back in one
// conditional statement. Zero matched rows means the task does not
// exist or belongs to someone else.
func (s *PostgresStore) UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if patch.Empty() {
		return s.taskByID(ctx, userID, taskID)
	}

	set := []string{}
	args := []any{}
	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.IsComplete != nil {
		args = append(args, *patch.IsComplete)
		set = append(set, fmt.Sprintf("is_complete = $%d", len(args)))
	}
	args = append(args, taskID, userID)

	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d
		 RETURNING id, title, description, is_complete, user_id`,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	var task models.Task
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&task.ID, &task.Title, &task.Description, &task.IsComplete, &task.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, apperrors.NotFound("task")
	}
	if err != nil {
		return models.Task{}, apperrors.Unexpected("update task", err)
	}
	return task, nil
}

func (s *PostgresStore) DeleteTask(ctx context.Context, userID, taskID int64) error {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2",
		taskID, userID,
	)
	if err != nil {
		return apperrors.Unexpected("delete task", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (s *PostgresStore) taskByID(ctx context.Context, userID, taskID int64) (models.Task, error) {
	var task models.Task
	err := s.pool.QueryRow(ctx,
		"SELECT id, title, description, is_complete, user_id FROM tasks WHERE id = $1 AND user_id = $2",
		taskID, userID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.IsComplete, &task.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, apperrors.NotFound("task")
	}
	if err != nil {
		return models.Task{}, apperrors.Unexpected("get task", err)
	}
	return task, nil
}

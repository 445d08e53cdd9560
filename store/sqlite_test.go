package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/taskforge/database"
	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLite(db)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateUser(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Greater(t, user.ID, int64(0))
	assert.Equal(t, "alice", user.Username)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	_, err = st.CreateUser(ctx, "alice", "hash2")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestUserByUsername(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	created, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	user, err := st.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "hash1", user.PasswordHash)

	_, err = st.UserByUsername(ctx, "nobody")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestCreateTask(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	task, err := st.CreateTask(ctx, user.ID, "Buy milk", strPtr("2 liters"))
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))
	assert.Equal(t, "Buy milk", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "2 liters", *task.Description)
	assert.False(t, task.IsComplete)
	assert.Equal(t, user.ID, task.UserID)
}

func TestCreateTaskNilDescription(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	task, err := st.CreateTask(ctx, user.ID, "Buy milk", nil)
	require.NoError(t, err)
	assert.Nil(t, task.Description)
}

func TestTasksByOwnerOrderedByID(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	first, err := st.CreateTask(ctx, user.ID, "first", nil)
	require.NoError(t, err)
	second, err := st.CreateTask(ctx, user.ID, "second", nil)
	require.NoError(t, err)

	tasks, err := st.TasksByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
}

func TestTasksByOwnerScopedToOwner(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	alice, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	bob, err := st.CreateUser(ctx, "bob", "hash2")
	require.NoError(t, err)

	_, err = st.CreateTask(ctx, bob.ID, "bob's task", nil)
	require.NoError(t, err)

	tasks, err := st.TasksByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	task, err := st.CreateTask(ctx, user.ID, "Buy milk", strPtr("2 liters"))
	require.NoError(t, err)

	// Only the completion flag changes; title and description survive.
	updated, err := st.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{IsComplete: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsComplete)
	assert.Equal(t, "Buy milk", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "2 liters", *updated.Description)
}

func TestUpdateTaskEmptyPatchReturnsCurrentRow(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	task, err := st.CreateTask(ctx, user.ID, "Buy milk", nil)
	require.NoError(t, err)

	unchanged, err := st.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{})
	require.NoError(t, err)
	assert.Equal(t, task, unchanged)
}

func TestUpdateTaskWrongOwner(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	alice, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	bob, err := st.CreateUser(ctx, "bob", "hash2")
	require.NoError(t, err)
	task, err := st.CreateTask(ctx, bob.ID, "bob's task", nil)
	require.NoError(t, err)

	_, err = st.UpdateTask(ctx, alice.ID, task.ID, models.TaskPatch{IsComplete: boolPtr(true)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// Bob's task is untouched.
	tasks, err := st.TasksByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].IsComplete)
}

func TestDeleteTask(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	task, err := st.CreateTask(ctx, user.ID, "Buy milk", nil)
	require.NoError(t, err)

	require.NoError(t, st.DeleteTask(ctx, user.ID, task.ID))

	tasks, err := st.TasksByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = st.DeleteTask(ctx, user.ID, task.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteTaskWrongOwner(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	alice, err := st.CreateUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	bob, err := st.CreateUser(ctx, "bob", "hash2")
	require.NoError(t, err)
	task, err := st.CreateTask(ctx, bob.ID, "bob's task", nil)
	require.NoError(t, err)

	err = st.DeleteTask(ctx, alice.ID, task.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	tasks, err := st.TasksByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

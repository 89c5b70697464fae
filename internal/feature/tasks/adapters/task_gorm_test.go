package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Task{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedTasks inserts n tasks titled "task 1" .. "task n" in order.
func seedTasks(t *testing.T, repo *taskGorm, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		task := &entity.Task{Title: fmt.Sprintf("task %d", i)}
		require.NoError(t, repo.Create(context.Background(), task), "failed to seed task %d", i)
	}
}

func TestTaskGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskGorm(db)

	task := &entity.Task{Title: "write the report"}
	err := repo.Create(context.Background(), task)

	assert.NoError(t, err, "failed to create task")
	assert.NotZero(t, task.ID, "ID is not set")
	assert.False(t, task.Status, "new task should be open")
	assert.False(t, task.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestTaskGorm_List(t *testing.T) {
	t.Run("ascending insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)
		seedTasks(t, repo, 3)

		tasks, err := repo.List(context.Background(), usecase.OrderInsertionAsc, 0, 10)

		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "task 1", tasks[0].Title)
		assert.Equal(t, "task 3", tasks[2].Title)
	})

	t.Run("descending ID order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)
		seedTasks(t, repo, 3)

		tasks, err := repo.List(context.Background(), usecase.OrderIDDesc, 0, 10)

		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "task 3", tasks[0].Title)
		assert.Equal(t, "task 1", tasks[2].Title)
	})

	t.Run("offset and limit slice pages of 5, 5 and 2 from 12 tasks", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)
		seedTasks(t, repo, 12)

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)

		wantSizes := []int{5, 5, 2}
		for i, want := range wantSizes {
			tasks, err := repo.List(context.Background(), usecase.OrderIDDesc, i*5, 5)
			require.NoError(t, err, "page %d", i+1)
			assert.Len(t, tasks, want, "page %d size", i+1)
		}

		// Descending: the first page starts at the newest task
		first, err := repo.List(context.Background(), usecase.OrderIDDesc, 0, 5)
		require.NoError(t, err)
		assert.Equal(t, "task 12", first[0].Title)

		// Ascending: the first page starts at the oldest task
		first, err = repo.List(context.Background(), usecase.OrderInsertionAsc, 0, 5)
		require.NoError(t, err)
		assert.Equal(t, "task 1", first[0].Title)
	})

	t.Run("offset past the end returns an empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)
		seedTasks(t, repo, 2)

		tasks, err := repo.List(context.Background(), usecase.OrderIDDesc, 10, 5)

		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskGorm_FindByID(t *testing.T) {
	t.Run("find task by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		expected := &entity.Task{Title: "find me"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		assert.Equal(t, expected.Title, found.Title)
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

func TestTaskGorm_Update(t *testing.T) {
	t.Run("status toggle leaves the title untouched", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		task := &entity.Task{Title: "toggle me"}
		require.NoError(t, repo.Create(context.Background(), task))

		status := true
		updated, err := repo.Update(context.Background(), task.ID, usecase.UpdateFields{Status: &status})

		require.NoError(t, err)
		assert.True(t, updated.Status, "status should be done")
		assert.Equal(t, "toggle me", updated.Title, "title should be untouched")

		// The change is durable
		found, err := repo.FindByID(context.Background(), task.ID)
		require.NoError(t, err)
		assert.True(t, found.Status)
		assert.Equal(t, "toggle me", found.Title)
	})

	t.Run("title and status update together", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		task := &entity.Task{Title: "old title"}
		require.NoError(t, repo.Create(context.Background(), task))

		title := "new title"
		status := true
		updated, err := repo.Update(context.Background(), task.ID, usecase.UpdateFields{Title: &title, Status: &status})

		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.True(t, updated.Status)
	})

	t.Run("no fields is a no-op returning the task", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		task := &entity.Task{Title: "unchanged"}
		require.NoError(t, repo.Create(context.Background(), task))

		updated, err := repo.Update(context.Background(), task.ID, usecase.UpdateFields{})

		require.NoError(t, err)
		assert.Equal(t, "unchanged", updated.Title)
		assert.False(t, updated.Status)
	})

	t.Run("missing task returns ErrTaskNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		status := true
		updated, err := repo.Update(context.Background(), 999, usecase.UpdateFields{Status: &status})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

func TestTaskGorm_Delete(t *testing.T) {
	t.Run("deleted task disappears from listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)
		seedTasks(t, repo, 3)

		tasks, err := repo.List(context.Background(), usecase.OrderInsertionAsc, 0, 10)
		require.NoError(t, err)
		require.Len(t, tasks, 3)

		require.NoError(t, repo.Delete(context.Background(), tasks[1].ID))

		remaining, err := repo.List(context.Background(), usecase.OrderInsertionAsc, 0, 10)
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		for _, task := range remaining {
			assert.NotEqual(t, tasks[1].ID, task.ID, "deleted task should not be listed")
		}

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("missing task returns ErrTaskNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskGorm(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

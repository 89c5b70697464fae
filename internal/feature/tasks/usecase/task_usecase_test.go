package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	CreateFunc   func(ctx context.Context, task *entity.Task) error
	ListFunc     func(ctx context.Context, order Order, offset, limit int) ([]entity.Task, error)
	CountFunc    func(ctx context.Context) (int64, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Task, error)
	UpdateFunc   func(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) List(ctx context.Context, order Order, offset, limit int) ([]entity.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, order, offset, limit)
	}
	return nil, nil
}

func (m *mockTaskRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Update(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return ErrTaskNotFound
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("persists an open task with a trimmed title", func(t *testing.T) {
		var created *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				created = task
				return nil
			},
		}

		uc := NewTaskUsecase(repo, 5, OrderIDDesc)
		task, err := uc.Create(context.Background(), "  write the report  ")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("task was not persisted")
		}
		if task.Title != "write the report" {
			t.Errorf("title not trimmed: %q", task.Title)
		}
		if task.Status {
			t.Error("new task should be open")
		}
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{}, 5, OrderIDDesc)
		if _, err := uc.Create(context.Background(), "   "); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got: %v", err)
		}
	})

	t.Run("title over 255 characters is rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{}, 5, OrderIDDesc)
		if _, err := uc.Create(context.Background(), strings.Repeat("x", 256)); !errors.Is(err, ErrTitleTooLong) {
			t.Errorf("expected ErrTitleTooLong, got: %v", err)
		}
	})
}

func TestTaskUsecase_ListPage(t *testing.T) {
	// 12 tasks with page size 5: pages of sizes [5,5,2]
	pageRepo := func(total int64) (*mockTaskRepository, *struct {
		order  Order
		offset int
		limit  int
	}) {
		seen := &struct {
			order  Order
			offset int
			limit  int
		}{}
		repo := &mockTaskRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return total, nil },
			ListFunc: func(ctx context.Context, order Order, offset, limit int) ([]entity.Task, error) {
				seen.order, seen.offset, seen.limit = order, offset, limit
				n := int(total) - offset
				if n > limit {
					n = limit
				}
				if n < 0 {
					n = 0
				}
				return make([]entity.Task, n), nil
			},
		}
		return repo, seen
	}

	t.Run("twelve tasks split into pages of 5, 5 and 2", func(t *testing.T) {
		repo, _ := pageRepo(12)
		uc := NewTaskUsecase(repo, 5, OrderIDDesc)

		wantSizes := []int{5, 5, 2}
		for i, want := range wantSizes {
			page, err := uc.ListPage(context.Background(), i+1)
			if err != nil {
				t.Fatalf("page %d: unexpected error: %v", i+1, err)
			}
			if len(page.Tasks) != want {
				t.Errorf("page %d: expected %d tasks, got %d", i+1, want, len(page.Tasks))
			}
			if page.TotalCount != 12 {
				t.Errorf("page %d: expected total 12, got %d", i+1, page.TotalCount)
			}
			if page.TotalPages != 3 {
				t.Errorf("page %d: expected 3 pages, got %d", i+1, page.TotalPages)
			}
		}
	})

	t.Run("page beyond the range clamps to the last page", func(t *testing.T) {
		repo, seen := pageRepo(12)
		uc := NewTaskUsecase(repo, 5, OrderIDDesc)

		page, err := uc.ListPage(context.Background(), 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Number != 3 {
			t.Errorf("expected clamp to page 3, got %d", page.Number)
		}
		if seen.offset != 10 {
			t.Errorf("expected offset 10, got %d", seen.offset)
		}
	})

	t.Run("page below 1 clamps to the first page", func(t *testing.T) {
		repo, seen := pageRepo(12)
		uc := NewTaskUsecase(repo, 5, OrderIDDesc)

		page, err := uc.ListPage(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Number != 1 {
			t.Errorf("expected clamp to page 1, got %d", page.Number)
		}
		if seen.offset != 0 {
			t.Errorf("expected offset 0, got %d", seen.offset)
		}
	})

	t.Run("empty store yields a single empty page", func(t *testing.T) {
		repo, _ := pageRepo(0)
		uc := NewTaskUsecase(repo, 5, OrderIDDesc)

		page, err := uc.ListPage(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Number != 1 || page.TotalPages != 1 || len(page.Tasks) != 0 {
			t.Errorf("unexpected page: number=%d pages=%d tasks=%d", page.Number, page.TotalPages, len(page.Tasks))
		}
		if page.HasNext() || page.HasPrev() {
			t.Error("single page should have no neighbors")
		}
	})

	t.Run("configured order is passed to the repository", func(t *testing.T) {
		repo, seen := pageRepo(3)
		uc := NewTaskUsecase(repo, 5, OrderInsertionAsc)

		if _, err := uc.ListPage(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.order != OrderInsertionAsc {
			t.Errorf("expected ascending order, got %q", seen.order)
		}
	})

	t.Run("explicit order overrides the configured one", func(t *testing.T) {
		repo, seen := pageRepo(3)
		uc := NewTaskUsecase(repo, 5, OrderInsertionAsc)

		if _, err := uc.ListPageOrdered(context.Background(), 1, OrderIDDesc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.order != OrderIDDesc {
			t.Errorf("expected descending order, got %q", seen.order)
		}
	})

	t.Run("page navigation metadata", func(t *testing.T) {
		repo, _ := pageRepo(12)
		uc := NewTaskUsecase(repo, 5, OrderIDDesc)

		page, err := uc.ListPage(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !page.HasPrev() || page.PrevNumber() != 1 {
			t.Error("expected a previous page 1")
		}
		if !page.HasNext() || page.NextNumber() != 3 {
			t.Error("expected a next page 3")
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	t.Run("nil fields pass through untouched", func(t *testing.T) {
		var got UpdateFields
		repo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error) {
				got = fields
				return &entity.Task{ID: id}, nil
			},
		}

		uc := NewTaskUsecase(repo, 5, OrderIDDesc)
		status := true
		if _, err := uc.Update(context.Background(), 1, UpdateFields{Status: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != nil {
			t.Error("title should stay nil when omitted")
		}
		if got.Status == nil || !*got.Status {
			t.Error("status should be forwarded")
		}
	})

	t.Run("updated title is validated and trimmed", func(t *testing.T) {
		var got UpdateFields
		repo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error) {
				got = fields
				return &entity.Task{ID: id}, nil
			},
		}

		uc := NewTaskUsecase(repo, 5, OrderIDDesc)
		title := "  new title  "
		if _, err := uc.Update(context.Background(), 1, UpdateFields{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title == nil || *got.Title != "new title" {
			t.Errorf("title not trimmed: %v", got.Title)
		}
	})

	t.Run("blank updated title is rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{}, 5, OrderIDDesc)
		title := "   "
		if _, err := uc.Update(context.Background(), 1, UpdateFields{Title: &title}); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got: %v", err)
		}
	})

	t.Run("missing task surfaces ErrTaskNotFound", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{}, 5, OrderIDDesc)
		status := true
		if _, err := uc.Update(context.Background(), 99, UpdateFields{Status: &status}); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Run("delegates to the repository", func(t *testing.T) {
		var deleted uint
		repo := &mockTaskRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}

		uc := NewTaskUsecase(repo, 5, OrderIDDesc)
		if err := uc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 7 {
			t.Errorf("expected delete of task 7, got %d", deleted)
		}
	})

	t.Run("missing task surfaces ErrTaskNotFound", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{}, 5, OrderIDDesc)
		if err := uc.Delete(context.Background(), 99); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}

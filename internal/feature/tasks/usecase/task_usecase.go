package usecase

import (
	"context"
	"strings"

	"task_backend/internal/feature/tasks/domain/entity"
)

// maxTitleLength mirrors the tasks.title column size.
const maxTitleLength = 255

// Order selects the listing order for tasks.
// Both modes are part of the contract; the active one is chosen by configuration.
type Order string

const (
	// OrderInsertionAsc lists tasks oldest first (ascending by ID).
	OrderInsertionAsc Order = "asc"

	// OrderIDDesc lists tasks newest first (descending by ID).
	OrderIDDesc Order = "desc"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// List returns at most limit tasks starting at offset in the given order.
	List(ctx context.Context, order Order, offset, limit int) ([]entity.Task, error)

	// Count returns the total number of tasks.
	Count(ctx context.Context) (int64, error)

	// FindByID retrieves a task by ID.
	// It returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// Update applies the non-nil fields to the task with the given ID and
	// returns the updated task. It returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error)

	// Delete removes the task with the given ID.
	// It returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uint) error
}

// UpdateFields carries a partial task update. Nil fields are left untouched.
type UpdateFields struct {
	Title  *string
	Status *bool
}

// Page is one slice of the task list together with pagination metadata.
type Page struct {
	Tasks      []entity.Task // Tasks on this page, in the configured order
	Number     int           // 1-based page number after clamping
	Size       int           // Configured page size
	TotalCount int64         // Total number of tasks across all pages
	TotalPages int           // Number of pages (at least 1)
}

// HasPrev reports whether a previous page exists.
func (p *Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }

// PrevNumber returns the previous page number (valid only when HasPrev).
func (p *Page) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the next page number (valid only when HasNext).
func (p *Page) NextNumber() int { return p.Number + 1 }

// TaskUsecase implements the task CRUD and listing flows.
type TaskUsecase struct {
	repo     TaskRepository
	pageSize int
	order    Order
}

// NewTaskUsecase creates a new TaskUsecase.
// pageSize must be positive; order selects the listing mode.
func NewTaskUsecase(repo TaskRepository, pageSize int, order Order) *TaskUsecase {
	if pageSize <= 0 {
		pageSize = 5
	}
	if order != OrderInsertionAsc && order != OrderIDDesc {
		order = OrderIDDesc
	}
	return &TaskUsecase{repo: repo, pageSize: pageSize, order: order}
}

// Create validates the title and persists a new open task.
func (u *TaskUsecase) Create(ctx context.Context, title string) (*entity.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	task := &entity.Task{Title: title}
	if err := u.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListPage returns the requested 1-based page in the configured order.
// An out-of-range page number clamps to the nearest valid page, so the flow
// never fails on a stale pagination link.
func (u *TaskUsecase) ListPage(ctx context.Context, page int) (*Page, error) {
	return u.ListPageOrdered(ctx, page, u.order)
}

// ListPageOrdered is ListPage with an explicit ordering mode.
func (u *TaskUsecase) ListPageOrdered(ctx context.Context, page int, order Order) (*Page, error) {
	total, err := u.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(u.pageSize) - 1) / int64(u.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	tasks, err := u.repo.List(ctx, order, (page-1)*u.pageSize, u.pageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Tasks:      tasks,
		Number:     page,
		Size:       u.pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// Get retrieves a single task by ID.
func (u *TaskUsecase) Get(ctx context.Context, id uint) (*entity.Task, error) {
	return u.repo.FindByID(ctx, id)
}

// Update applies a partial update to the task with the given ID.
// An omitted title leaves the stored title untouched.
func (u *TaskUsecase) Update(ctx context.Context, id uint, fields UpdateFields) (*entity.Task, error) {
	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		if len(title) > maxTitleLength {
			return nil, ErrTitleTooLong
		}
		fields.Title = &title
	}
	return u.repo.Update(ctx, id, fields)
}

// Delete removes the task with the given ID.
func (u *TaskUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

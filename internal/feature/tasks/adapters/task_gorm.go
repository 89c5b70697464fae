// Package adapters provides repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskGorm is a GORM implementation of the TaskRepository interface.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure taskGorm implements TaskRepository.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm creates a new instance of taskGorm with the given gorm.DB connection.
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create adds a task to the database.
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// List returns at most limit tasks starting at offset in the given order.
func (r *taskGorm) List(ctx context.Context, order usecase.Order, offset, limit int) ([]entity.Task, error) {
	orderExpr := "id ASC"
	if order == usecase.OrderIDDesc {
		orderExpr = "id DESC"
	}

	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Order(orderExpr).
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Count returns the total number of tasks.
func (r *taskGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Task{}).Count(&count).Error
	return count, err
}

// FindByID retrieves a task by ID.
// It returns usecase.ErrTaskNotFound when no task matches.
func (r *taskGorm) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update applies the non-nil fields to the task with the given ID.
// The task is loaded first so that a no-op update is still distinguishable
// from a missing row.
func (r *taskGorm) Update(ctx context.Context, id uint, fields usecase.UpdateFields) (*entity.Task, error) {
	task, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if len(updates) == 0 {
		return task, nil
	}

	if err := r.db.WithContext(ctx).Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task with the given ID.
// It returns usecase.ErrTaskNotFound when no task matches.
func (r *taskGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}

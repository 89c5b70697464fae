// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task cannot be found by ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task is created or updated with a blank title.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrTitleTooLong is returned when a title exceeds the 255-character column limit.
	ErrTitleTooLong = errors.New("title should not exceed 255 characters")
)

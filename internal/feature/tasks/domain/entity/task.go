// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task represents a single to-do item.
// Tasks are shared across all users; there is no owner reference.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Title is the free-text description of the task, at most 255 characters.
	Title string `gorm:"size:255;not null"`

	// Status is false while the task is open and true once it is done.
	Status bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}

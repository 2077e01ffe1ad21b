package task

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository provides database operations for tasks.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate runs database migrations for the tasks table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Task{})
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindPage retrieves up to limit tasks starting at offset, most recently
// created first.
func (r *Repository) FindPage(ctx context.Context, limit, offset int) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Save inserts a new task or fully overwrites an existing one.
func (r *Repository) Save(ctx context.Context, t *Task) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// DeleteByID removes a task by ID (soft delete).
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

package task

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/task-management/domain/task"
	"github.com/google/uuid"
)

// Store is the storage contract the lifecycle service depends on. Each
// call is atomic on its own; the service performs no multi-record
// transactions.
type Store interface {
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindPage(ctx context.Context, limit, offset int) ([]domain.Task, error)
	Save(ctx context.Context, t *domain.Task) error
	DeleteByID(ctx context.Context, id string) error
}

// Service implements the task lifecycle: list, get, create, update and
// delete. All state lives in the store; the service holds none between
// calls.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a lifecycle service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List returns the page-th page of size tasks, most recently created
// first. A page beyond the data yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, page, size int) ([]domain.Task, error) {
	return s.store.FindPage(ctx, size, page*size)
}

// Get returns the task with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.store.FindByID(ctx, id)
}

// Create persists a new task. Every task starts in status Todo with its
// creation time stamped and no modification time.
func (s *Service) Create(ctx context.Context, nt domain.NewTask) (*domain.Task, error) {
	t := &domain.Task{
		ID:          uuid.New().String(),
		Title:       nt.Title,
		Description: nt.Description,
		Status:      domain.StatusTodo,
		OwnerID:     nt.OwnerID,
		AssigneeID:  nt.AssigneeID,
		CreatedAt:   s.now(),
	}
	if err := s.store.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update merges the patch into the stored task and persists the result.
// If the merged task would violate the assignee invariant, the store is
// left untouched and ErrNotUpdatable is returned.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Task, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := domain.Merge(*existing, patch, s.now())
	if !domain.ConsistentAfterMerge(merged) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotUpdatable, id)
	}

	if err := s.store.Save(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the task with the given ID and returns the ID. Only
// tasks in Todo or Cancelled may be deleted; anything else fails with
// ErrNotDeletable before the store is touched.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !domain.Deletable(existing.Status) {
		return "", fmt.Errorf("%w: %s", domain.ErrNotDeletable, id)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

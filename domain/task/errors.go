package task

import "errors"

var (
	// ErrNotFound is returned when no task exists for the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrNotUpdatable is returned when applying a patch would leave the
	// task in an inconsistent state.
	ErrNotUpdatable = errors.New("task not valid for update")

	// ErrNotDeletable is returned when a task's status does not permit
	// deletion.
	ErrNotDeletable = errors.New("task not valid for deletion")
)

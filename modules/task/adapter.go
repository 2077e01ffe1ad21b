package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/example/task-management/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort defines the interface driving adapters (like the HTTP API) use
// to interact with the task lifecycle.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context, page, size int) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) (*DeleteTaskResponse, error)
}

// taskAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter implementing the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// mapServiceError restores the domain sentinel errors. Errors cross the
// request-reply boundary as plain strings, so errors.Is on the caller side
// only works after matching the message back to its sentinel.
func mapServiceError(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, domain.ErrNotFound.Error()):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case strings.Contains(msg, domain.ErrNotUpdatable.Error()):
		return fmt.Errorf("%s: %w", op, domain.ErrNotUpdatable)
	case strings.Contains(msg, domain.ErrNotDeletable.Error()):
		return fmt.Errorf("%s: %w", op, domain.ErrNotDeletable)
	}
	return fmt.Errorf("%s service call failed: %w", op, err)
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-task",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, mapServiceError("create-task", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID string) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, mapServiceError("get-task", err)
	}
	return &resp, nil
}

// ListTasks retrieves a page of tasks via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, page, size int) (*ListTasksResponse, error) {
	req := ListTasksRequest{Page: page, Size: size}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-tasks",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, mapServiceError("list-tasks", err)
	}
	return &resp, nil
}

// UpdateTask partially updates a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-task",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, mapServiceError("update-task", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID string) (*DeleteTaskResponse, error) {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, mapServiceError("delete-task", err)
	}
	return &resp, nil
}

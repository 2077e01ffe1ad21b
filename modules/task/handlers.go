package task

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	domain "github.com/example/task-management/domain/task"
	"github.com/example/task-management/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}
	if req.OwnerID == "" {
		return TaskResponse{}, fmt.Errorf("owner_id is required")
	}

	created, err := m.service.Create(ctx, domain.NewTask{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    created.ID,
			Title:     created.Title,
			OwnerID:   created.OwnerID,
			CreatedAt: created.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", created.ID, err)
		}
	}

	return toTaskResponse(created), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.Get(ctx, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.Page < 0 {
		return ListTasksResponse{}, fmt.Errorf("page must be non-negative")
	}
	if req.Size < 1 {
		return ListTasksResponse{}, fmt.Errorf("size must be positive")
	}

	tasks, err := m.service.List(ctx, req.Page, req.Size)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for i := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(&tasks[i]))
	}
	return response, nil
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	patch, err := toPatch(req)
	if err != nil {
		return TaskResponse{}, err
	}

	updated, err := m.service.Update(ctx, req.TaskID, patch)
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:     updated.ID,
			Status:     string(updated.Status),
			ModifiedAt: *updated.ModifiedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %s: %v", updated.ID, err)
		}
	}

	return toTaskResponse(updated), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	id, err := m.service.Delete(ctx, req.TaskID)
	if err != nil {
		return DeleteTaskResponse{ID: req.TaskID, Deleted: false}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    id,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", id, err)
		}
	}

	return DeleteTaskResponse{ID: id, Deleted: true}, nil
}

// toPatch converts an update request into a domain patch, rejecting values
// a patch may not carry: title and status are not nullable.
func toPatch(req UpdateTaskRequest) (domain.Patch, error) {
	var patch domain.Patch

	if req.Title.Set {
		if req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "" {
			return domain.Patch{}, fmt.Errorf("title must not be blank")
		}
		patch.Title = domain.Assign(*req.Title.Value)
	}
	patch.Description = domain.PatchField[string](req.Description)
	patch.AssigneeID = domain.PatchField[string](req.AssigneeID)
	if req.Status.Set {
		if req.Status.Value == nil {
			return domain.Patch{}, fmt.Errorf("status must not be null")
		}
		status, err := domain.ParseStatus(*req.Status.Value)
		if err != nil {
			return domain.Patch{}, err
		}
		patch.Status = domain.Assign(status)
	}

	return patch, nil
}

// toTaskResponse converts a domain task to its external projection.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		ModifiedAt:  t.ModifiedAt,
	}
}

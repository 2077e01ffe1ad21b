package api

import (
	"time"

	"github.com/example/task-management/modules/task"
)

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	OwnerID     string  `json:"owner_id"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest is the HTTP request for partially updating a task.
// Absent fields keep their stored value; an explicit null clears a
// nullable field.
type UpdateTaskRequest struct {
	Title       task.Optional[string] `json:"title,omitzero"`
	Description task.Optional[string] `json:"description,omitzero"`
	AssigneeID  task.Optional[string] `json:"assignee_id,omitzero"`
	Status      task.Optional[string] `json:"status,omitzero"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	OwnerID     string     `json:"owner_id"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// DeleteTaskResponse is the HTTP response after deleting a task.
type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

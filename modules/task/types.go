package task

import (
	"bytes"
	"encoding/json"
	"time"
)

// Optional is a JSON field that distinguishes an absent field from an
// explicit null. Absent leaves Set false; null leaves Value nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// IsZero reports whether the field was absent, so omitzero drops it when
// re-marshalling a request.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// MarshalJSON encodes the wrapped value, or null when cleared.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// UnmarshalJSON marks the field as set and decodes the value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	OwnerID     string  `json:"owner_id"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListTasksRequest is the request for listing a page of tasks.
type ListTasksRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for partially updating a task. A field
// left out of the JSON keeps its current value; an explicit null clears a
// nullable field.
type UpdateTaskRequest struct {
	TaskID      string           `json:"task_id"`
	Title       Optional[string] `json:"title,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
	AssigneeID  Optional[string] `json:"assignee_id,omitzero"`
	Status      Optional[string] `json:"status,omitzero"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response after deleting a task. ID echoes the
// identifier of the removed task.
type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// TaskResponse is the externally visible projection of a task.
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

package task

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo        Status = "Todo"
	StatusInProgress  Status = "InProgress"
	StatusUnderReview Status = "UnderReview"
	StatusApproved    Status = "Approved"
	StatusDone        Status = "Done"
	StatusCancelled   Status = "Cancelled"
)

// Statuses lists every valid task status.
var Statuses = []Status{
	StatusTodo,
	StatusInProgress,
	StatusUnderReview,
	StatusApproved,
	StatusDone,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown task status: %q", s)
	}
	return status, nil
}

// Task is the core domain entity. A task is created in status Todo, owned
// by the creator forever, and optionally assigned to someone responsible
// for progressing it. ModifiedAt stays nil until the first update.
type Task struct {
	ID          string         `gorm:"primarykey;size:36" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"size:500" json:"description,omitempty"`
	Status      Status         `gorm:"size:32;not null" json:"status"`
	OwnerID     string         `gorm:"size:36;not null" json:"owner_id"`
	AssigneeID  *string        `gorm:"size:36" json:"assignee_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ModifiedAt  *time.Time     `json:"modified_at,omitempty"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// NewTask carries the fields needed to create a task.
type NewTask struct {
	Title       string
	Description *string
	OwnerID     string
	AssigneeID  *string
}

package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestDeletable(t *testing.T) {
	expected := map[Status]bool{
		StatusTodo:        true,
		StatusInProgress:  false,
		StatusUnderReview: false,
		StatusApproved:    false,
		StatusDone:        false,
		StatusCancelled:   true,
	}

	for _, status := range Statuses {
		assert.Equal(t, expected[status], Deletable(status), "status %s", status)
	}
}

func TestRequiresAssignee(t *testing.T) {
	expected := map[Status]bool{
		StatusTodo:        false,
		StatusInProgress:  true,
		StatusUnderReview: true,
		StatusApproved:    true,
		StatusDone:        true,
		StatusCancelled:   false,
	}

	for _, status := range Statuses {
		assert.Equal(t, expected[status], RequiresAssignee(status), "status %s", status)
	}
}

func TestConsistentAfterMerge(t *testing.T) {
	assignee := strPtr("7b0d12c4-8f3e-4f7a-9d25-97f1a55f0a11")

	for _, status := range Statuses {
		t.Run(string(status), func(t *testing.T) {
			withAssignee := Task{Status: status, AssigneeID: assignee}
			assert.True(t, ConsistentAfterMerge(withAssignee))

			unassigned := Task{Status: status}
			assert.Equal(t, !RequiresAssignee(status), ConsistentAfterMerge(unassigned))
		})
	}
}

func TestMerge_KeepsUnsetFields(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)

	existing := Task{
		ID:          "task-1",
		Title:       "original title",
		Description: strPtr("original description"),
		Status:      StatusTodo,
		OwnerID:     "owner-1",
		AssigneeID:  strPtr("assignee-1"),
		CreatedAt:   created,
	}

	merged := Merge(existing, Patch{}, now)

	assert.Equal(t, existing.Title, merged.Title)
	assert.Equal(t, existing.Description, merged.Description)
	assert.Equal(t, existing.Status, merged.Status)
	assert.Equal(t, existing.AssigneeID, merged.AssigneeID)
	require.NotNil(t, merged.ModifiedAt)
	assert.Equal(t, now, *merged.ModifiedAt)
}

func TestMerge_AppliesSetFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := Task{
		ID:         "task-1",
		Title:      "original title",
		Status:     StatusTodo,
		OwnerID:    "owner-1",
		AssigneeID: strPtr("assignee-1"),
	}

	patch := Patch{
		Title:       Assign("new title"),
		Description: Assign("new description"),
		Status:      Assign(StatusInProgress),
	}

	merged := Merge(existing, patch, now)

	assert.Equal(t, "new title", merged.Title)
	require.NotNil(t, merged.Description)
	assert.Equal(t, "new description", *merged.Description)
	assert.Equal(t, StatusInProgress, merged.Status)
	assert.Equal(t, existing.AssigneeID, merged.AssigneeID)
}

func TestMerge_ClearsNullableFields(t *testing.T) {
	now := time.Now()

	existing := Task{
		Title:       "title",
		Description: strPtr("description"),
		Status:      StatusInProgress,
		AssigneeID:  strPtr("assignee-1"),
	}

	patch := Patch{
		Description: Clear[string](),
		AssigneeID:  Clear[string](),
	}

	merged := Merge(existing, patch, now)

	assert.Nil(t, merged.Description)
	assert.Nil(t, merged.AssigneeID)
	// clearing the assignee while InProgress makes the merge inconsistent
	assert.False(t, ConsistentAfterMerge(merged))
}

func TestMerge_NeverTouchesImmutableFields(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	existing := Task{
		ID:        "task-1",
		Title:     "title",
		Status:    StatusTodo,
		OwnerID:   "owner-1",
		CreatedAt: created,
	}

	merged := Merge(existing, Patch{Title: Assign("changed")}, created.Add(time.Minute))

	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, existing.OwnerID, merged.OwnerID)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
}

func TestParseStatus(t *testing.T) {
	for _, status := range Statuses {
		parsed, err := ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseStatus("Archived")
	assert.Error(t, err)

	// matching is case-sensitive
	_, err = ParseStatus("todo")
	assert.Error(t, err)
}

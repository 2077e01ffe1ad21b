package task

import "time"

// PatchField is a tri-state patch value for a single field: unset (keep
// the existing value), set to a value, or set to nil (clear the field).
type PatchField[T any] struct {
	Set   bool
	Value *T
}

// Assign returns a field set to v.
func Assign[T any](v T) PatchField[T] {
	return PatchField[T]{Set: true, Value: &v}
}

// Clear returns a field explicitly set to nil.
func Clear[T any]() PatchField[T] {
	return PatchField[T]{Set: true}
}

// Patch describes a partial update over the mutable task fields. ID,
// OwnerID and CreatedAt are immutable and have no patch representation.
type Patch struct {
	Title       PatchField[string]
	Description PatchField[string]
	AssigneeID  PatchField[string]
	Status      PatchField[Status]
}

// Deletable reports whether a task in the given status may be deleted.
// Only tasks that never entered active work (Todo) or were abandoned
// (Cancelled) qualify.
func Deletable(status Status) bool {
	return status == StatusTodo || status == StatusCancelled
}

// RequiresAssignee reports whether the given status demands a non-nil
// assignee. Tasks may sit unassigned only while Todo or Cancelled.
func RequiresAssignee(status Status) bool {
	switch status {
	case StatusInProgress, StatusUnderReview, StatusApproved, StatusDone:
		return true
	}
	return false
}

// ConsistentAfterMerge reports whether a merged task satisfies the
// assignee invariant. The check runs at merge time, never retroactively.
func ConsistentAfterMerge(merged Task) bool {
	return merged.AssigneeID != nil || !RequiresAssignee(merged.Status)
}

// Merge combines an existing task with a patch. Fields the patch does not
// set keep their existing value; ModifiedAt is always stamped with now.
// Title and Status are not nullable, so a cleared field keeps the existing
// value for those.
func Merge(existing Task, patch Patch, now time.Time) Task {
	merged := existing
	if patch.Title.Set && patch.Title.Value != nil {
		merged.Title = *patch.Title.Value
	}
	if patch.Description.Set {
		merged.Description = patch.Description.Value
	}
	if patch.AssigneeID.Set {
		merged.AssigneeID = patch.AssigneeID.Value
	}
	if patch.Status.Set && patch.Status.Value != nil {
		merged.Status = *patch.Status.Value
	}
	merged.ModifiedAt = &now
	return merged
}

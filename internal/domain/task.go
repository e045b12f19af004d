package domain

import "time"

// Task is a work assignment binding a book to a responsible user.
type Task struct {
	ID             int64
	BookID         int64
	AssigneeUserID *int64
	AssignedAt     time.Time
	DueAt          *time.Time
	TargetStateID  *int64
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskDetails is a task hydrated with book, assignee and state names.
type TaskDetails struct {
	Task
	BookTitle       *string
	BookAuthor      *string
	CategoryName    *string
	AssigneeName    *string
	AssigneeEmail   *string
	TargetStateName *string
}

// TaskFilter holds the optional search filters for tasks.
type TaskFilter struct {
	BookID         *int64
	AssigneeUserID *int64
	TargetStateID  *int64
}

// TaskUpdateParams lists the task columns an update writes.
type TaskUpdateParams struct {
	AssigneeUserID Optional[int64]
	TargetStateID  Optional[int64]
	DueAt          Optional[time.Time]
	Notes          Optional[string]
}

// IsEmpty reports whether no column is set.
func (p TaskUpdateParams) IsEmpty() bool {
	return !p.AssigneeUserID.Set && !p.TargetStateID.Set && !p.DueAt.Set && !p.Notes.Set
}

// CurrentTaskOrder selects how the current task of a book is resolved.
type CurrentTaskOrder string

const (
	// CurrentByAssignment picks the latest assigned_at, ties on the higher id.
	CurrentByAssignment CurrentTaskOrder = "assigned"
	// CurrentByID picks the highest identifier regardless of assigned_at.
	CurrentByID CurrentTaskOrder = "id"
)

// ParseCurrentTaskOrder maps a query value to an order. Empty means
// CurrentByAssignment.
func ParseCurrentTaskOrder(s string) (CurrentTaskOrder, bool) {
	switch CurrentTaskOrder(s) {
	case "", CurrentByAssignment:
		return CurrentByAssignment, true
	case CurrentByID:
		return CurrentByID, true
	}
	return "", false
}

// Resolve returns the current task of tasks under order.
func (o CurrentTaskOrder) Resolve(tasks []Task) (Task, bool) {
	if o == CurrentByID {
		return CurrentTaskByID(tasks)
	}
	return CurrentTask(tasks)
}

// CurrentTaskByID returns the task with the highest identifier. It assumes
// identifiers grow with creation time and are never reused.
func CurrentTaskByID(tasks []Task) (Task, bool) {
	if len(tasks) == 0 {
		return Task{}, false
	}
	current := tasks[0]
	for _, t := range tasks[1:] {
		if t.ID > current.ID {
			current = t
		}
	}
	return current, true
}

// CurrentTask returns the most recently assigned task. Ties on assigned_at
// fall back to the higher identifier.
func CurrentTask(tasks []Task) (Task, bool) {
	if len(tasks) == 0 {
		return Task{}, false
	}
	current := tasks[0]
	for _, t := range tasks[1:] {
		if t.AssignedAt.After(current.AssignedAt) ||
			(t.AssignedAt.Equal(current.AssignedAt) && t.ID > current.ID) {
			current = t
		}
	}
	return current, true
}

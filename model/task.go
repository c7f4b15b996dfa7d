package model

import (
	"time"
)

// Priority buckets a task for the per-user analytics counters.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityModerate Priority = "Moderate"
	PriorityHigh     Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityModerate, PriorityHigh:
		return true
	}
	return false
}

// Status is the board column a task sits in. Every status is reachable
// from every other; who may move a task is decided by the guard, not the
// state machine.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type ChecklistItem struct {
	Title     string `firestore:"title" json:"title"`
	Completed bool   `firestore:"completed" json:"completed"`
}

type Task struct {
	TaskID     string          `firestore:"taskid" json:"taskId"`
	Title      string          `firestore:"title" json:"title"`
	Priority   Priority        `firestore:"priority" json:"priority"`
	Status     Status          `firestore:"status" json:"status"`
	DueDate    *time.Time      `firestore:"duedate" json:"dueDate,omitempty"`
	Owner      string          `firestore:"owner" json:"owner"`
	Assignee   string          `firestore:"assignee" json:"assignee,omitempty"` // empty = unassigned
	Checklists []ChecklistItem `firestore:"checklists" json:"checklists"`
	CreatedAt  time.Time       `firestore:"createdat" json:"createdAt"`
}

// HasAssignee reports whether the task is delegated to someone.
func (t *Task) HasAssignee() bool {
	return t.Assignee != ""
}

package dto

import (
	"fmt"
	"time"

	"taskboard/model"
)

type ChecklistItemRequest struct {
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Priority   string                 `json:"priority" binding:"required"`
	Status     string                 `json:"status" binding:"required"`
	DueDate    string                 `json:"dueDate"`
	AssigneeID string                 `json:"assigneeId"`
	Checklists []ChecklistItemRequest `json:"checklists"`
}

type EditTaskRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Priority   string                 `json:"priority" binding:"required"`
	DueDate    string                 `json:"dueDate"`
	AssigneeID string                 `json:"assigneeId"` // empty keeps the current assignee
	Checklists []ChecklistItemRequest `json:"checklists"`
}

type ChangeStatusRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ToggleChecklistRequest struct {
	TaskID         string `json:"taskId" binding:"required"`
	ChecklistIndex int    `json:"checklistIndex"`
}

// ParseDueDate converts the wire due date into the model representation.
// An empty string means no due date.
func ParseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate format: %w", err)
	}
	return &t, nil
}

// Checklist converts request items into model items.
func Checklist(items []ChecklistItemRequest) []model.ChecklistItem {
	out := make([]model.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.ChecklistItem{Title: it.Title, Completed: it.Completed})
	}
	return out
}

// UserRef is the identity projection embedded in task responses. Only
// name and email leave the service, never credentials.
type UserRef struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type TaskResponse struct {
	TaskID     string                `json:"taskId"`
	Title      string                `json:"title"`
	Priority   model.Priority        `json:"priority"`
	Status     model.Status          `json:"status"`
	DueDate    *time.Time            `json:"dueDate,omitempty"`
	Owner      *UserRef              `json:"owner,omitempty"`
	Assignee   *UserRef              `json:"assignee,omitempty"`
	Checklists []model.ChecklistItem `json:"checklists"`
	CreatedAt  time.Time             `json:"createdAt"`
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskboard/dto"
	"taskboard/model"
	"taskboard/store"
)

// TaskService orchestrates the task lifecycle: it validates input,
// authorizes the caller, mutates the task record and keeps the owner's
// and assignee's membership lists and analytics counters in step, all
// inside a single store transaction per operation.
type TaskService struct {
	store store.Store
	now   func() time.Time
}

func NewTaskService(s store.Store) *TaskService {
	return &TaskService{store: s, now: time.Now}
}

type CreateTaskInput struct {
	Title      string
	Priority   model.Priority
	Status     model.Status
	DueDate    *time.Time
	AssigneeID string
	Checklists []model.ChecklistItem
}

func (s *TaskService) Create(ctx context.Context, callerID string, in CreateTaskInput) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, invalidInput("title is required")
	}
	if in.Priority == "" {
		return nil, invalidInput("priority is required")
	}
	if !in.Priority.Valid() {
		return nil, invalidInput("invalid priority")
	}
	if in.Status == "" {
		return nil, invalidInput("status is required")
	}
	if !in.Status.Valid() {
		return nil, invalidInput("invalid status")
	}
	if len(in.Checklists) < 1 {
		return nil, invalidInput("at least 1 checklist item is required")
	}

	var resp *dto.TaskResponse
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		owner, err := tx.GetUser(callerID)
		if err != nil {
			return notFoundOr(err, "user not found")
		}

		var assignee *model.User
		if in.AssigneeID != "" {
			assignee, err = tx.GetUser(in.AssigneeID)
			if err != nil {
				return notFoundOr(err, "assigned user not found")
			}
		}

		task := &model.Task{
			TaskID:     uuid.New().String(),
			Title:      in.Title,
			Priority:   in.Priority,
			Status:     in.Status,
			DueDate:    in.DueDate,
			Owner:      callerID,
			Assignee:   in.AssigneeID,
			Checklists: in.Checklists,
			CreatedAt:  s.now(),
		}
		if err := tx.CreateTask(task); err != nil {
			return err
		}

		// A self-assigned task is counted once, through the owner path.
		if assignee != nil && assignee.UserID != callerID {
			if err := tx.AddTaskMembership(assignee.UserID, task.TaskID); err != nil {
				return err
			}
			delta := CounterDeltas("", task.Priority, "", task.Status, task.DueDate, 1)
			if err := tx.IncrementCounters(assignee.UserID, delta); err != nil {
				return err
			}
		}

		if err := tx.AddTaskMembership(callerID, task.TaskID); err != nil {
			return err
		}
		delta := CounterDeltas("", task.Priority, "", task.Status, task.DueDate, 1)
		if err := tx.IncrementCounters(callerID, delta); err != nil {
			return err
		}

		resp = taskResponse(task, owner, assignee)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, callerID, taskID string, newStatus model.Status) (*model.Task, error) {
	var updated *model.Task
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		if _, err := tx.GetUser(callerID); err != nil {
			return notFoundOr(err, "user not found")
		}
		task, err := tx.GetTask(taskID)
		if err != nil {
			return notFoundOr(err, "task not found")
		}
		if err := Authorize(OpChangeStatus, callerID, task); err != nil {
			return err
		}
		if !newStatus.Valid() {
			return invalidInput("invalid status")
		}

		oldStatus := task.Status
		task.Status = newStatus
		if err := tx.SaveTask(task); err != nil {
			return err
		}

		delta := CounterDeltas("", "", oldStatus, newStatus, nil, 1)
		if err := tx.IncrementCounters(task.Owner, delta); err != nil {
			return err
		}
		if task.HasAssignee() && task.Assignee != task.Owner {
			if err := tx.IncrementCounters(task.Assignee, delta); err != nil {
				return err
			}
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type EditTaskInput struct {
	TaskID     string
	Title      string
	Priority   model.Priority
	DueDate    *time.Time
	AssigneeID string // empty keeps the current assignee
	Checklists []model.ChecklistItem
}

func (s *TaskService) Edit(ctx context.Context, callerID string, in EditTaskInput) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, invalidInput("title is required")
	}
	if !in.Priority.Valid() {
		return nil, invalidInput("invalid priority")
	}

	var resp *dto.TaskResponse
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		owner, err := tx.GetUser(callerID)
		if err != nil {
			return notFoundOr(err, "user not found")
		}
		task, err := tx.GetTask(in.TaskID)
		if err != nil {
			return notFoundOr(err, "task not found")
		}
		if err := Authorize(OpEdit, callerID, task); err != nil {
			return err
		}

		newAssigneeID := in.AssigneeID
		if newAssigneeID == "" {
			newAssigneeID = task.Assignee
		}
		var newAssignee *model.User
		if newAssigneeID != "" {
			newAssignee, err = tx.GetUser(newAssigneeID)
			if err != nil {
				return notFoundOr(err, "assigned user not found")
			}
		}

		oldAssignee := task.Assignee
		oldPriority := task.Priority
		oldDueDate := task.DueDate

		task.Title = in.Title
		task.Priority = in.Priority
		task.DueDate = in.DueDate
		task.Assignee = newAssigneeID
		task.Checklists = in.Checklists
		if err := tx.SaveTask(task); err != nil {
			return err
		}

		if newAssignee != nil {
			if err := tx.AddTaskMembership(newAssignee.UserID, task.TaskID); err != nil {
				return err
			}
		}

		// The owner keeps membership and counters through the owner
		// delta even when they stop being the assignee.
		if oldAssignee != "" && oldAssignee != newAssigneeID && oldAssignee != task.Owner {
			if err := tx.RemoveTaskMembership(oldAssignee, task.TaskID); err != nil {
				return err
			}
			delta := CounterDeltas("", oldPriority, "", "", oldDueDate, -1)
			if err := tx.IncrementCounters(oldAssignee, delta); err != nil {
				return err
			}
		}

		ownerDelta := CounterDeltas(oldPriority, task.Priority, "", "", task.DueDate, 1)
		if err := tx.IncrementCounters(task.Owner, ownerDelta); err != nil {
			return err
		}
		if newAssignee != nil && newAssignee.UserID != task.Owner {
			// An assignee keeping the task moves between priority
			// buckets; one newly gaining it only enters the new bucket.
			var assigneeDelta model.CounterDelta
			if oldAssignee == newAssigneeID {
				assigneeDelta = CounterDeltas(oldPriority, task.Priority, "", "", task.DueDate, 1)
			} else {
				assigneeDelta = CounterDeltas("", task.Priority, "", "", task.DueDate, 1)
			}
			if err := tx.IncrementCounters(newAssignee.UserID, assigneeDelta); err != nil {
				return err
			}
		}

		resp = taskResponse(task, owner, newAssignee)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *TaskService) Delete(ctx context.Context, callerID, taskID string) error {
	return s.store.RunTransaction(ctx, func(tx store.Tx) error {
		if _, err := tx.GetUser(callerID); err != nil {
			return notFoundOr(err, "user not found")
		}
		task, err := tx.GetTask(taskID)
		if err != nil {
			return notFoundOr(err, "task not found")
		}
		if err := Authorize(OpDelete, callerID, task); err != nil {
			return err
		}

		if err := tx.DeleteTask(taskID); err != nil {
			return err
		}
		if err := tx.RemoveTaskMembership(task.Owner, taskID); err != nil {
			return err
		}
		if task.HasAssignee() {
			if err := tx.RemoveTaskMembership(task.Assignee, taskID); err != nil {
				return err
			}
		}

		delta := CounterDeltas("", task.Priority, "", task.Status, task.DueDate, -1)
		if err := tx.IncrementCounters(task.Owner, delta); err != nil {
			return err
		}
		if task.HasAssignee() && task.Assignee != task.Owner {
			if err := tx.IncrementCounters(task.Assignee, delta); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *TaskService) ToggleChecklistItem(ctx context.Context, callerID, taskID string, index int) (*model.Task, error) {
	var updated *model.Task
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		task, err := tx.GetTask(taskID)
		if err != nil {
			return notFoundOr(err, "task not found")
		}
		if err := Authorize(OpToggleChecklist, callerID, task); err != nil {
			return err
		}
		if index < 0 || index >= len(task.Checklists) {
			return notFound("checklist item not found")
		}

		task.Checklists[index].Completed = !task.Checklists[index].Completed
		if err := tx.SaveTask(task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FilterByWindow returns the caller's owned or assigned tasks created
// inside the window containing the service clock's current time, with
// owner and assignee identities projected to name and email.
func (s *TaskService) FilterByWindow(ctx context.Context, callerID string, w Window) ([]dto.TaskResponse, error) {
	start, end, err := WindowBounds(s.now(), w)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.FindTasksForMember(ctx, callerID, start, end)
	if err != nil {
		return nil, err
	}

	users := map[string]*model.User{}
	lookup := func(id string) *model.User {
		if id == "" {
			return nil
		}
		if u, ok := users[id]; ok {
			return u
		}
		u, err := s.store.GetUser(ctx, id)
		if err != nil {
			u = nil
		}
		users[id] = u
		return u
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		out = append(out, *taskResponse(t, lookup(t.Owner), lookup(t.Assignee)))
	}
	return out, nil
}

// GetShared is the unauthenticated read behind share links.
func (s *TaskService) GetShared(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "task not found")
	}
	return task, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(msg)
	}
	return err
}

func taskResponse(t *model.Task, owner, assignee *model.User) *dto.TaskResponse {
	return &dto.TaskResponse{
		TaskID:     t.TaskID,
		Title:      t.Title,
		Priority:   t.Priority,
		Status:     t.Status,
		DueDate:    t.DueDate,
		Owner:      userRef(owner),
		Assignee:   userRef(assignee),
		Checklists: t.Checklists,
		CreatedAt:  t.CreatedAt,
	}
}

func userRef(u *model.User) *dto.UserRef {
	if u == nil {
		return nil
	}
	return &dto.UserRef{UserID: u.UserID, Name: u.Name, Email: u.Email}
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskboard/model"
)

// MemoryStore is an in-process Store with the same semantics as the
// Firestore store. Transactions are serialized by a single mutex and
// staged on a copy of the state, so a failed transaction leaves nothing
// behind.
type MemoryStore struct {
	mu    sync.Mutex
	tasks map[string]*model.Task
	users map[string]*model.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]*model.Task),
		users: make(map[string]*model.User),
	}
}

// PutUser seeds a user record outside any transaction.
func (s *MemoryStore) PutUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = cloneUser(u)
}

func (s *MemoryStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{
		tasks: make(map[string]*model.Task, len(s.tasks)),
		users: make(map[string]*model.User, len(s.users)),
	}
	for id, t := range s.tasks {
		tx.tasks[id] = cloneTask(t)
	}
	for id, u := range s.users {
		tx.users[id] = cloneUser(u)
	}

	if err := fn(tx); err != nil {
		return err
	}
	s.tasks = tx.tasks
	s.users = tx.users
	return nil
}

func (s *MemoryStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTask(t), nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryStore) FindTasksForMember(ctx context.Context, userID string, from, to time.Time) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []model.Task{}
	for _, t := range s.tasks {
		if t.Owner != userID && t.Assignee != userID {
			continue
		}
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		tasks = append(tasks, *cloneTask(t))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })
	return tasks, nil
}

type memoryTx struct {
	tasks map[string]*model.Task
	users map[string]*model.User
}

func (tx *memoryTx) GetTask(id string) (*model.Task, error) {
	t, ok := tx.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTask(t), nil
}

func (tx *memoryTx) GetUser(id string) (*model.User, error) {
	u, ok := tx.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (tx *memoryTx) CreateTask(t *model.Task) error {
	if _, ok := tx.tasks[t.TaskID]; ok {
		return ErrExists
	}
	tx.tasks[t.TaskID] = cloneTask(t)
	return nil
}

func (tx *memoryTx) SaveTask(t *model.Task) error {
	tx.tasks[t.TaskID] = cloneTask(t)
	return nil
}

func (tx *memoryTx) DeleteTask(id string) error {
	delete(tx.tasks, id)
	return nil
}

func (tx *memoryTx) AddTaskMembership(userID, taskID string) error {
	u, ok := tx.users[userID]
	if !ok {
		return ErrNotFound
	}
	if !u.HasTask(taskID) {
		u.Tasks = append(u.Tasks, taskID)
	}
	return nil
}

func (tx *memoryTx) RemoveTaskMembership(userID, taskID string) error {
	u, ok := tx.users[userID]
	if !ok {
		return ErrNotFound
	}
	kept := u.Tasks[:0]
	for _, id := range u.Tasks {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	u.Tasks = kept
	return nil
}

func (tx *memoryTx) IncrementCounters(userID string, delta model.CounterDelta) error {
	u, ok := tx.users[userID]
	if !ok {
		return ErrNotFound
	}
	for counter, n := range delta {
		switch counter {
		case model.CounterLowPriority:
			u.Analytics.LowPriorityTasks += n
		case model.CounterModeratePriority:
			u.Analytics.ModeratePriorityTasks += n
		case model.CounterHighPriority:
			u.Analytics.HighPriorityTasks += n
		case model.CounterBacklog:
			u.Analytics.BacklogTasks += n
		case model.CounterTodo:
			u.Analytics.TodoTasks += n
		case model.CounterInProgress:
			u.Analytics.InProgressTasks += n
		case model.CounterDone:
			u.Analytics.DoneTasks += n
		case model.CounterDueDate:
			u.Analytics.DueDateTasks += n
		}
	}
	return nil
}

func cloneTask(t *model.Task) *model.Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	c.Checklists = append([]model.ChecklistItem(nil), t.Checklists...)
	return &c
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Tasks = append([]string(nil), u.Tasks...)
	return &c
}

// Package store is the record-store boundary of the service. The core
// only needs key-addressed Task/User access, set-semantics membership
// updates, atomic counter increments, and one member+window query; both
// the Firestore store and the in-memory store implement the same
// contract.
package store

import (
	"context"
	"errors"
	"time"

	"taskboard/model"
)

var (
	// ErrNotFound is returned when a task or user id does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrExists is returned when creating a record whose id is taken.
	ErrExists = errors.New("record already exists")
)

// Tx is the per-operation transaction handle. All reads must happen
// before the first write (Firestore transaction rule).
type Tx interface {
	GetTask(id string) (*model.Task, error)
	GetUser(id string) (*model.User, error)

	CreateTask(t *model.Task) error
	SaveTask(t *model.Task) error
	DeleteTask(id string) error

	// AddTaskMembership and RemoveTaskMembership maintain the user's
	// task id set; adding an id already present is a no-op.
	AddTaskMembership(userID, taskID string) error
	RemoveTaskMembership(userID, taskID string) error

	// IncrementCounters applies the delta to the user's analytics as a
	// single atomic increment update, never a read-modify-write.
	IncrementCounters(userID string, delta model.CounterDelta) error
}

type Store interface {
	// RunTransaction executes fn in one transaction; either every write
	// issued through the Tx commits or none do.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error

	GetTask(ctx context.Context, id string) (*model.Task, error)
	GetUser(ctx context.Context, id string) (*model.User, error)

	// FindTasksForMember returns tasks the user owns or is assigned to
	// whose creation time falls in [from, to] inclusive.
	FindTasksForMember(ctx context.Context, userID string, from, to time.Time) ([]model.Task, error)
}

package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskboard/model"
)

const (
	tasksCollection = "Tasks"
	usersCollection = "Users"
)

// FirestoreStore keeps Task and User documents keyed by their id, one
// document per record, counters nested under the user's analytics map.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) taskRef(id string) *firestore.DocumentRef {
	return s.client.Collection(tasksCollection).Doc(id)
}

func (s *FirestoreStore) userRef(id string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(id)
}

func (s *FirestoreStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreTx{store: s, tx: tx})
	})
}

func (s *FirestoreStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	snap, err := s.taskRef(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreErr(err)
	}
	var t model.Task
	if err := snap.DataTo(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	snap, err := s.userRef(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreErr(err)
	}
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *FirestoreStore) FindTasksForMember(ctx context.Context, userID string, from, to time.Time) ([]model.Task, error) {
	q := s.client.Collection(tasksCollection).WhereEntity(firestore.AndFilter{
		Filters: []firestore.EntityFilter{
			firestore.OrFilter{
				Filters: []firestore.EntityFilter{
					firestore.PropertyFilter{Path: "owner", Operator: "==", Value: userID},
					firestore.PropertyFilter{Path: "assignee", Operator: "==", Value: userID},
				},
			},
			firestore.PropertyFilter{Path: "createdat", Operator: ">=", Value: from},
			firestore.PropertyFilter{Path: "createdat", Operator: "<=", Value: to},
		},
	})

	var tasks []model.Task
	it := q.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var t model.Task
		if err := snap.DataTo(&t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

type firestoreTx struct {
	store *FirestoreStore
	tx    *firestore.Transaction
}

func (t *firestoreTx) GetTask(id string) (*model.Task, error) {
	snap, err := t.tx.Get(t.store.taskRef(id))
	if err != nil {
		return nil, mapFirestoreErr(err)
	}
	var task model.Task
	if err := snap.DataTo(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *firestoreTx) GetUser(id string) (*model.User, error) {
	snap, err := t.tx.Get(t.store.userRef(id))
	if err != nil {
		return nil, mapFirestoreErr(err)
	}
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (t *firestoreTx) CreateTask(task *model.Task) error {
	if err := t.tx.Create(t.store.taskRef(task.TaskID), task); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrExists
		}
		return err
	}
	return nil
}

func (t *firestoreTx) SaveTask(task *model.Task) error {
	return t.tx.Set(t.store.taskRef(task.TaskID), task)
}

func (t *firestoreTx) DeleteTask(id string) error {
	return t.tx.Delete(t.store.taskRef(id))
}

func (t *firestoreTx) AddTaskMembership(userID, taskID string) error {
	return mapFirestoreErr(t.tx.Update(t.store.userRef(userID), []firestore.Update{
		{Path: "tasks", Value: firestore.ArrayUnion(taskID)},
	}))
}

func (t *firestoreTx) RemoveTaskMembership(userID, taskID string) error {
	return mapFirestoreErr(t.tx.Update(t.store.userRef(userID), []firestore.Update{
		{Path: "tasks", Value: firestore.ArrayRemove(taskID)},
	}))
}

func (t *firestoreTx) IncrementCounters(userID string, delta model.CounterDelta) error {
	if len(delta) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(delta))
	for counter, n := range delta {
		updates = append(updates, firestore.Update{
			Path:  "analytics." + counter,
			Value: firestore.Increment(n),
		})
	}
	return mapFirestoreErr(t.tx.Update(t.store.userRef(userID), updates))
}

func mapFirestoreErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

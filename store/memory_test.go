package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/model"
)

func TestMemoryStoreTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("failed transaction leaves no writes behind", func(t *testing.T) {
		st := NewMemoryStore()
		st.PutUser(&model.User{UserID: "u1"})

		boom := errors.New("boom")
		err := st.RunTransaction(ctx, func(tx Tx) error {
			require.NoError(t, tx.CreateTask(&model.Task{TaskID: "t1", Owner: "u1"}))
			require.NoError(t, tx.AddTaskMembership("u1", "t1"))
			require.NoError(t, tx.IncrementCounters("u1", model.CounterDelta{model.CounterTodo: 1}))
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.GetTask(ctx, "t1")
		assert.ErrorIs(t, err, ErrNotFound)
		u, err := st.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, u.Tasks)
		assert.Zero(t, u.Analytics.TodoTasks)
	})

	t.Run("membership has set semantics", func(t *testing.T) {
		st := NewMemoryStore()
		st.PutUser(&model.User{UserID: "u1"})

		err := st.RunTransaction(ctx, func(tx Tx) error {
			require.NoError(t, tx.AddTaskMembership("u1", "t1"))
			require.NoError(t, tx.AddTaskMembership("u1", "t1"))
			return nil
		})
		require.NoError(t, err)

		u, err := st.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"t1"}, u.Tasks)

		err = st.RunTransaction(ctx, func(tx Tx) error {
			return tx.RemoveTaskMembership("u1", "t1")
		})
		require.NoError(t, err)
		u, err = st.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, u.Tasks)
	})

	t.Run("counter increments accumulate", func(t *testing.T) {
		st := NewMemoryStore()
		st.PutUser(&model.User{UserID: "u1"})

		for i := 0; i < 3; i++ {
			err := st.RunTransaction(ctx, func(tx Tx) error {
				return tx.IncrementCounters("u1", model.CounterDelta{model.CounterHighPriority: 1, model.CounterDone: -1})
			})
			require.NoError(t, err)
		}

		u, err := st.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), u.Analytics.HighPriorityTasks)
		assert.Equal(t, int64(-3), u.Analytics.DoneTasks)
	})

	t.Run("create rejects duplicate ids", func(t *testing.T) {
		st := NewMemoryStore()
		err := st.RunTransaction(ctx, func(tx Tx) error {
			require.NoError(t, tx.CreateTask(&model.Task{TaskID: "t1"}))
			return tx.CreateTask(&model.Task{TaskID: "t1"})
		})
		assert.ErrorIs(t, err, ErrExists)
	})
}

func TestMemoryStoreFindTasksForMember(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

	st := NewMemoryStore()
	st.PutUser(&model.User{UserID: "u1"})
	err := st.RunTransaction(ctx, func(tx Tx) error {
		require.NoError(t, tx.CreateTask(&model.Task{TaskID: "owned", Owner: "u1", CreatedAt: base}))
		require.NoError(t, tx.CreateTask(&model.Task{TaskID: "assigned", Owner: "u2", Assignee: "u1", CreatedAt: base.Add(time.Hour)}))
		require.NoError(t, tx.CreateTask(&model.Task{TaskID: "unrelated", Owner: "u2", CreatedAt: base}))
		require.NoError(t, tx.CreateTask(&model.Task{TaskID: "tooOld", Owner: "u1", CreatedAt: base.AddDate(0, 0, -10)}))
		return nil
	})
	require.NoError(t, err)

	t.Run("returns owned and assigned tasks inside the range", func(t *testing.T) {
		tasks, err := st.FindTasksForMember(ctx, "u1", base, base.Add(2*time.Hour))
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "owned", tasks[0].TaskID)
		assert.Equal(t, "assigned", tasks[1].TaskID)
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		tasks, err := st.FindTasksForMember(ctx, "u1", base, base)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "owned", tasks[0].TaskID)
	})
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/model"
)

func TestCounterDeltas(t *testing.T) {
	due := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	t.Run("creation counts new priority, status and due date", func(t *testing.T) {
		d := CounterDeltas("", model.PriorityHigh, "", model.StatusTodo, &due, 1)
		assert.Equal(t, model.CounterDelta{
			model.CounterHighPriority: 1,
			model.CounterTodo:         1,
			model.CounterDueDate:      1,
		}, d)
	})

	t.Run("priority edit moves one count between buckets", func(t *testing.T) {
		d := CounterDeltas(model.PriorityLow, model.PriorityHigh, "", "", nil, 1)
		assert.Equal(t, model.CounterDelta{
			model.CounterLowPriority:  -1,
			model.CounterHighPriority: 1,
		}, d)
	})

	t.Run("status transition moves one count between buckets", func(t *testing.T) {
		d := CounterDeltas("", "", model.StatusBacklog, model.StatusDone, nil, 1)
		assert.Equal(t, model.CounterDelta{
			model.CounterBacklog: -1,
			model.CounterDone:    1,
		}, d)
	})

	t.Run("unchanged fields produce no delta", func(t *testing.T) {
		d := CounterDeltas(model.PriorityLow, model.PriorityLow, model.StatusTodo, model.StatusTodo, nil, 1)
		assert.Empty(t, d)
	})

	t.Run("removal decrements priority and status buckets", func(t *testing.T) {
		d := CounterDeltas("", model.PriorityModerate, "", model.StatusDone, nil, -1)
		assert.Equal(t, model.CounterDelta{
			model.CounterModeratePriority: -1,
			model.CounterDone:             -1,
		}, d)
	})

	t.Run("due date bucket never decremented", func(t *testing.T) {
		d := CounterDeltas("", model.PriorityLow, "", model.StatusTodo, &due, -1)
		assert.NotContains(t, d, model.CounterDueDate)
	})

	t.Run("absent due date leaves bucket untouched", func(t *testing.T) {
		d := CounterDeltas("", model.PriorityLow, "", "", nil, 1)
		assert.NotContains(t, d, model.CounterDueDate)
	})
}

package services

import (
	"time"

	"taskboard/model"
)

// CounterDeltas computes the analytics adjustment for one user when a
// task's classifying fields change. Empty old/new values mean "absent":
// a creation passes only new values, a removal passes the vacated
// values in the new slot with negative weight, an edit passes both.
//
// The due-date bucket is monotonic: it counts due-date tasks ever
// associated with the user, so only positive-weight deltas touch it.
func CounterDeltas(oldPriority, newPriority model.Priority, oldStatus, newStatus model.Status, dueDate *time.Time, weight int64) model.CounterDelta {
	d := model.CounterDelta{}

	if oldPriority != newPriority {
		if c := priorityCounter(oldPriority); c != "" {
			d[c] -= weight
		}
		if c := priorityCounter(newPriority); c != "" {
			d[c] += weight
		}
	}

	if oldStatus != newStatus {
		if c := statusCounter(oldStatus); c != "" {
			d[c] -= weight
		}
		if c := statusCounter(newStatus); c != "" {
			d[c] += weight
		}
	}

	if dueDate != nil && weight > 0 {
		d[model.CounterDueDate] += weight
	}

	return d
}

func priorityCounter(p model.Priority) string {
	switch p {
	case model.PriorityLow:
		return model.CounterLowPriority
	case model.PriorityModerate:
		return model.CounterModeratePriority
	case model.PriorityHigh:
		return model.CounterHighPriority
	}
	return ""
}

func statusCounter(s model.Status) string {
	switch s {
	case model.StatusBacklog:
		return model.CounterBacklog
	case model.StatusTodo:
		return model.CounterTodo
	case model.StatusInProgress:
		return model.CounterInProgress
	case model.StatusDone:
		return model.CounterDone
	}
	return ""
}

package services

import "taskboard/model"

// Operation names a mutation class for the authorization guard.
type Operation string

const (
	OpChangeStatus    Operation = "update"
	OpEdit            Operation = "edit"
	OpDelete          Operation = "delete"
	OpToggleChecklist Operation = "update the checklist of"
)

type relation int

const (
	ownerOnly relation = iota
	ownerOrAssignee
)

// policy is the capability table: which relationship to the task each
// mutation class requires. Changing a rule is a one-line edit here.
var policy = map[Operation]relation{
	OpChangeStatus:    ownerOrAssignee,
	OpEdit:            ownerOnly,
	OpDelete:          ownerOnly,
	OpToggleChecklist: ownerOrAssignee,
}

// Authorize decides whether the caller may perform op on the task.
// Pure decision over loaded state, no side effects.
func Authorize(op Operation, callerID string, t *model.Task) error {
	isOwner := t.Owner == callerID
	isAssignee := t.HasAssignee() && t.Assignee == callerID

	switch policy[op] {
	case ownerOnly:
		if !isOwner {
			return forbidden("you are not authorized to " + string(op) + " this task")
		}
	case ownerOrAssignee:
		if !isOwner && !isAssignee {
			return forbidden("you are not authorized to " + string(op) + " this task")
		}
	}
	return nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/model"
)

func TestAuthorize(t *testing.T) {
	task := &model.Task{TaskID: "t1", Owner: "owner", Assignee: "assignee"}

	cases := []struct {
		name    string
		op      Operation
		caller  string
		allowed bool
	}{
		{"owner may change status", OpChangeStatus, "owner", true},
		{"assignee may change status", OpChangeStatus, "assignee", true},
		{"third party may not change status", OpChangeStatus, "stranger", false},
		{"owner may edit", OpEdit, "owner", true},
		{"assignee may not edit", OpEdit, "assignee", false},
		{"owner may delete", OpDelete, "owner", true},
		{"assignee may not delete", OpDelete, "assignee", false},
		{"third party may not delete", OpDelete, "stranger", false},
		{"owner may toggle checklist", OpToggleChecklist, "owner", true},
		{"assignee may toggle checklist", OpToggleChecklist, "assignee", true},
		{"third party may not toggle checklist", OpToggleChecklist, "stranger", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.op, tc.caller, task)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, KindForbidden, KindOf(err))
			}
		})
	}

	t.Run("unassigned task has no assignee rights", func(t *testing.T) {
		unassigned := &model.Task{TaskID: "t2", Owner: "owner"}
		err := Authorize(OpChangeStatus, "", unassigned)
		assert.Equal(t, KindForbidden, KindOf(err))
	})
}

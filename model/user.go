package model

import "time"

// Counter names used as keys in a CounterDelta. The Firestore store maps
// them onto fields of the user's analytics block.
const (
	CounterLowPriority      = "lowPriorityTasks"
	CounterModeratePriority = "moderatePriorityTasks"
	CounterHighPriority     = "highPriorityTasks"
	CounterBacklog          = "backlogTasks"
	CounterTodo             = "todoTasks"
	CounterInProgress       = "inProgressTasks"
	CounterDone             = "doneTasks"
	CounterDueDate          = "dueDateTasks"
)

// CounterDelta is a batch of signed counter adjustments applied to one
// user's analytics in a single atomic increment update.
type CounterDelta map[string]int64

// Analytics is the denormalized workload summary kept in step with the
// user's task membership. DueDateTasks counts due-date tasks ever
// associated with the user and never goes down.
type Analytics struct {
	LowPriorityTasks      int64 `firestore:"lowPriorityTasks" json:"lowPriorityTasks"`
	ModeratePriorityTasks int64 `firestore:"moderatePriorityTasks" json:"moderatePriorityTasks"`
	HighPriorityTasks     int64 `firestore:"highPriorityTasks" json:"highPriorityTasks"`
	BacklogTasks          int64 `firestore:"backlogTasks" json:"backlogTasks"`
	TodoTasks             int64 `firestore:"todoTasks" json:"todoTasks"`
	InProgressTasks       int64 `firestore:"inProgressTasks" json:"inProgressTasks"`
	DoneTasks             int64 `firestore:"doneTasks" json:"doneTasks"`
	DueDateTasks          int64 `firestore:"dueDateTasks" json:"dueDateTasks"`
}

type User struct {
	UserID    string    `firestore:"userid" json:"userId"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Tasks     []string  `firestore:"tasks" json:"tasks"` // ids of tasks owned or assigned
	Analytics Analytics `firestore:"analytics" json:"analytics"`
	CreatedAt time.Time `firestore:"createdat" json:"createdAt"`
}

// HasTask reports membership of a task id in the user's task list.
func (u *User) HasTask(taskID string) bool {
	for _, id := range u.Tasks {
		if id == taskID {
			return true
		}
	}
	return false
}

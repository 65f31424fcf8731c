package models

import "time"

// Status and priority are stored as plain text. The set of values the UI
// offers (Todo/In Progress/Done, Low/Medium/High) is not enforced here;
// the columns accept any string.
const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:text;default:'Todo'" json:"status"`
	Priority    string    `gorm:"type:text;default:'Medium'" json:"priority"`
	AssigneeID  *uint64   `json:"assignee_id"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Assignee *TeamMember `gorm:"foreignKey:AssigneeID" json:"-"`
}

// TaskWithAssignee is the read model for the board listing: a task row
// annotated with its assignee's name and avatar via LEFT JOIN. Both
// annotations are null for unassigned tasks.
type TaskWithAssignee struct {
	Task
	AssigneeName   *string `json:"assignee_name"`
	AssigneeAvatar *string `json:"assignee_avatar"`
}

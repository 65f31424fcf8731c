package repository

import (
	"github.com/prakulkashyap2-hub/teamsync/internal/models"
)

// TeamMemberRepository defines the interface for team member data access.
// Members are seeded at startup and read-only through the API.
type TeamMemberRepository interface {
	// List returns every member in storage order
	List() ([]models.TeamMember, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// ListWithAssignees returns every task joined to its assignee,
	// newest first
	ListWithAssignees() ([]models.TaskWithAssignee, error)

	// UpdateFields applies the given column changes to one task and
	// reports how many rows were touched
	UpdateFields(id uint64, changes map[string]any) (int64, error)

	// Delete removes a task and reports how many rows were touched
	Delete(id uint64) (int64, error)
}

// StatsRepository defines the interface for the dashboard aggregates
type StatsRepository interface {
	// CountByStatus counts tasks grouped by status
	CountByStatus() ([]models.StatusCount, error)

	// CountByPriority counts tasks grouped by priority
	CountByPriority() ([]models.PriorityCount, error)

	// CountByMember counts tasks per member, zero-filled for members
	// with no tasks
	CountByMember() ([]models.MemberTaskCount, error)
}

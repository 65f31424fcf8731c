package services

import (
	"fmt"

	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"github.com/prakulkashyap2-hub/teamsync/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task. Nothing here is
// validated: an empty title stores as an empty title, and status/priority
// accept any string. Only absence of status/priority is defaulted.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  *uint64
	DueDate     *string
}

// TaskPatch is the closed set of updatable task fields. Absent fields are
// untouched; the Clear flags distinguish "set to null" from "not sent".
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	AssigneeID    *uint64
	ClearAssignee bool
	DueDate       *string
	ClearDueDate  bool
}

// Changes assembles the column assignments this patch stands for
func (p TaskPatch) Changes() map[string]any {
	changes := map[string]any{}

	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.Priority != nil {
		changes["priority"] = *p.Priority
	}
	if p.ClearAssignee {
		changes["assignee_id"] = nil
	} else if p.AssigneeID != nil {
		changes["assignee_id"] = *p.AssigneeID
	}
	if p.ClearDueDate {
		changes["due_date"] = nil
	} else if p.DueDate != nil {
		changes["due_date"] = *p.DueDate
	}

	return changes
}

// ListTasks returns every task with its assignee annotation, newest first
func (s *TaskService) ListTasks() ([]models.TaskWithAssignee, error) {
	tasks, err := s.taskRepo.ListWithAssignees()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a task and returns its new id. Status and priority
// default to Todo/Medium when absent or empty; the assignee, if any, is
// not checked for existence.
func (s *TaskService) CreateTask(input CreateTaskInput) (uint64, error) {
	if input.Status == "" {
		input.Status = models.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ID, nil
}

// UpdateTask applies a partial update. An empty patch executes no SQL and
// succeeds; patching an id that does not exist touches zero rows and also
// succeeds. Both outcomes are part of the API contract.
func (s *TaskService) UpdateTask(id uint64, patch TaskPatch) error {
	changes := patch.Changes()
	if len(changes) == 0 {
		return nil
	}

	if _, err := s.taskRepo.UpdateFields(id, changes); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask removes a task. Deleting an id that does not exist succeeds.
func (s *TaskService) DeleteTask(id uint64) error {
	if _, err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

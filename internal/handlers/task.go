package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prakulkashyap2-hub/teamsync/internal/errors"
	"github.com/prakulkashyap2-hub/teamsync/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns every task joined to its assignee, newest first. No
// pagination and no filtering: the client filters over the full set.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		errors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task and responds with its id
func (h *TaskHandler) CreateTask(c *gin.Context) {
	// Title is deliberately not required: a body without one stores an
	// empty title, matching the permissive contract.
	type CreateTaskRequest struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Status      string  `json:"status"`
		Priority    string  `json:"priority"`
		AssigneeID  *uint64 `json:"assignee_id"`
		DueDate     *string `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		errors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTask applies a partial update. Only recognized fields are applied;
// unknown body keys are ignored. An empty body, or an id with no matching
// row, still reports success.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errors.BadRequest(c, "Invalid task id")
		return
	}

	// Parse raw JSON to detect which fields were sent
	raw := map[string]any{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&raw); err != nil {
			errors.BadRequest(c, "Invalid request body")
			return
		}
	}

	var patch services.TaskPatch
	if v, ok := raw["title"]; ok {
		if s, ok := v.(string); ok {
			patch.Title = &s
		}
	}
	if v, ok := raw["description"]; ok {
		if s, ok := v.(string); ok {
			patch.Description = &s
		}
	}
	if v, ok := raw["status"]; ok {
		if s, ok := v.(string); ok {
			patch.Status = &s
		}
	}
	if v, ok := raw["priority"]; ok {
		if s, ok := v.(string); ok {
			patch.Priority = &s
		}
	}
	if v, ok := raw["assignee_id"]; ok {
		// assignee_id was provided (might be null to unassign)
		if v == nil {
			patch.ClearAssignee = true
		} else if f, ok := v.(float64); ok {
			assigneeID := uint64(f)
			patch.AssigneeID = &assigneeID
		}
	}
	if v, ok := raw["due_date"]; ok {
		if v == nil {
			patch.ClearDueDate = true
		} else if s, ok := v.(string); ok {
			patch.DueDate = &s
		}
	}

	if err := h.taskService.UpdateTask(id, patch); err != nil {
		errors.InternalError(c, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTask removes a task. Deleting an id that never existed still
// reports success.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		errors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

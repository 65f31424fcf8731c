package repository

import (
	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListWithAssignees returns the whole table joined to team_members, newest
// first. Ties in created_at have no defined relative order.
func (r *GormTaskRepository) ListWithAssignees() ([]models.TaskWithAssignee, error) {
	rows := make([]models.TaskWithAssignee, 0)
	err := r.db.Model(&models.Task{}).
		Select("tasks.*, team_members.name AS assignee_name, team_members.avatar_url AS assignee_avatar").
		Joins("LEFT JOIN team_members ON team_members.id = tasks.assignee_id").
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateFields applies the given column changes to one task. A missing id
// is not an error: zero rows are affected and the caller decides what that
// means.
func (r *GormTaskRepository) UpdateFields(id uint64, changes map[string]any) (int64, error) {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes a task if present
func (r *GormTaskRepository) Delete(id uint64) (int64, error) {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

package repository

import (
	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// CountByStatus counts tasks grouped by whatever status values are present
func (r *GormStatsRepository) CountByStatus() ([]models.StatusCount, error) {
	rows := make([]models.StatusCount, 0)
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByPriority counts tasks grouped by whatever priority values are present
func (r *GormStatsRepository) CountByPriority() ([]models.PriorityCount, error) {
	rows := make([]models.PriorityCount, 0)
	err := r.db.Model(&models.Task{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByMember counts tasks per member. The join originates from
// team_members so every member appears, counting 0 when nothing is
// assigned to them. Unassigned tasks are in nobody's count.
func (r *GormStatsRepository) CountByMember() ([]models.MemberTaskCount, error) {
	rows := make([]models.MemberTaskCount, 0)
	err := r.db.Model(&models.TeamMember{}).
		Select("team_members.name, COUNT(tasks.id) AS task_count").
		Joins("LEFT JOIN tasks ON tasks.assignee_id = team_members.id").
		Group("team_members.id, team_members.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

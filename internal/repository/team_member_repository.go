package repository

import (
	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"gorm.io/gorm"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// List returns every member. No ORDER BY: the order is whatever the engine
// returns, which in practice is insertion order.
func (r *GormTeamMemberRepository) List() ([]models.TeamMember, error) {
	members := make([]models.TeamMember, 0)
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

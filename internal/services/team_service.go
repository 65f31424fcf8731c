package services

import (
	"fmt"

	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"github.com/prakulkashyap2-hub/teamsync/internal/repository"
)

// TeamService handles team member reads. Members come from seed data and
// have no write path through the API.
type TeamService struct {
	memberRepo repository.TeamMemberRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(memberRepo repository.TeamMemberRepository) *TeamService {
	return &TeamService{memberRepo: memberRepo}
}

// ListMembers returns every team member
func (s *TeamService) ListMembers() ([]models.TeamMember, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

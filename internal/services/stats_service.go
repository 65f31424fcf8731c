package services

import (
	"fmt"

	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"github.com/prakulkashyap2-hub/teamsync/internal/repository"
)

// StatsSummary bundles the three dashboard aggregates
type StatsSummary struct {
	StatusStats   []models.StatusCount     `json:"statusStats"`
	PriorityStats []models.PriorityCount   `json:"priorityStats"`
	TeamStats     []models.MemberTaskCount `json:"teamStats"`
}

// StatsService computes the dashboard aggregates
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// Summary runs the three aggregate queries and bundles the results
func (s *StatsService) Summary() (*StatsSummary, error) {
	statusStats, err := s.statsRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	priorityStats, err := s.statsRepo.CountByPriority()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by priority: %w", err)
	}

	teamStats, err := s.statsRepo.CountByMember()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by member: %w", err)
	}

	return &StatsSummary{
		StatusStats:   statusStats,
		PriorityStats: priorityStats,
		TeamStats:     teamStats,
	}, nil
}

package database

import (
	"fmt"

	"github.com/prakulkashyap2-hub/teamsync/internal/models"
)

// Seed populates the two tables on first run. Each table is seeded
// independently when its row count is zero, so a database wiped of tasks
// but not members gets tasks back without duplicating members.
//
// The count-then-insert sequence is not safe against two processes racing
// on an empty database; it runs before the listener starts and assumes a
// single process.
func Seed() error {
	var memberCount int64
	if err := DB.Model(&models.TeamMember{}).Count(&memberCount).Error; err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}

	if memberCount == 0 {
		members := []models.TeamMember{
			{Name: "Alex Rivera", Role: "Lead Designer", AvatarURL: ptr("https://picsum.photos/seed/alex/100/100"), Email: ptr("alex@example.com")},
			{Name: "Sarah Chen", Role: "Senior Developer", AvatarURL: ptr("https://picsum.photos/seed/sarah/100/100"), Email: ptr("sarah@example.com")},
			{Name: "Jordan Smith", Role: "Product Manager", AvatarURL: ptr("https://picsum.photos/seed/jordan/100/100"), Email: ptr("jordan@example.com")},
			{Name: "Taylor Wong", Role: "QA Engineer", AvatarURL: ptr("https://picsum.photos/seed/taylor/100/100"), Email: ptr("taylor@example.com")},
		}
		if err := DB.Create(&members).Error; err != nil {
			return fmt.Errorf("failed to seed team members: %w", err)
		}
	}

	var taskCount int64
	if err := DB.Model(&models.Task{}).Count(&taskCount).Error; err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}

	if taskCount == 0 {
		// Assignees reference the seed members by insertion order.
		tasks := []models.Task{
			{Title: "Design System Audit", Description: "Review current component library for accessibility", Status: models.StatusInProgress, Priority: models.PriorityHigh, AssigneeID: idPtr(1), DueDate: ptr("2026-03-01")},
			{Title: "API Integration", Description: "Connect task dashboard to backend endpoints", Status: models.StatusTodo, Priority: models.PriorityHigh, AssigneeID: idPtr(2), DueDate: ptr("2026-02-25")},
			{Title: "User Interview Analysis", Description: "Synthesize findings from last week's research", Status: models.StatusDone, Priority: models.PriorityMedium, AssigneeID: idPtr(3), DueDate: ptr("2026-02-20")},
			{Title: "Bug: Mobile Layout", Description: "Fix navigation overlap on small screens", Status: models.StatusTodo, Priority: models.PriorityLow, AssigneeID: idPtr(4), DueDate: ptr("2026-03-05")},
		}
		if err := DB.Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to seed tasks: %w", err)
		}
	}

	return nil
}

func ptr(s string) *string {
	return &s
}

func idPtr(id uint64) *uint64 {
	return &id
}

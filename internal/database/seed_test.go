package database

import (
	"testing"

	"github.com/prakulkashyap2-hub/teamsync/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	SetDB(db)
	require.NoError(t, Migrate())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestSeed_PopulatesEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed())

	var memberCount, taskCount int64
	require.NoError(t, db.Model(&models.TeamMember{}).Count(&memberCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.EqualValues(t, 4, memberCount)
	require.EqualValues(t, 4, taskCount)

	var first models.TeamMember
	require.NoError(t, db.First(&first).Error)
	require.Equal(t, "Alex Rivera", first.Name)
	require.Equal(t, "Lead Designer", first.Role)
	require.NotNil(t, first.Email)
	require.Equal(t, "alex@example.com", *first.Email)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed())
	require.NoError(t, Seed())

	var memberCount, taskCount int64
	require.NoError(t, db.Model(&models.TeamMember{}).Count(&memberCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.EqualValues(t, 4, memberCount)
	require.EqualValues(t, 4, taskCount)
}

func TestSeed_TasksReferenceSeedMembersInOrder(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed())

	var tasks []models.Task
	require.NoError(t, db.Order("id").Find(&tasks).Error)
	require.Len(t, tasks, 4)

	// Seed tasks are assigned to members 1..4 positionally.
	for i, task := range tasks {
		require.NotNil(t, task.AssigneeID)
		require.EqualValues(t, i+1, *task.AssigneeID)
	}

	require.Equal(t, "Design System Audit", tasks[0].Title)
	require.Equal(t, models.StatusInProgress, tasks[0].Status)
	require.Equal(t, models.PriorityHigh, tasks[0].Priority)
	require.NotNil(t, tasks[0].DueDate)
	require.Equal(t, "2026-03-01", *tasks[0].DueDate)
}

func TestSeed_TasksRestoredIndependentlyOfMembers(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed())
	require.NoError(t, db.Where("1 = 1").Delete(&models.Task{}).Error)

	require.NoError(t, Seed())

	var memberCount, taskCount int64
	require.NoError(t, db.Model(&models.TeamMember{}).Count(&memberCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.EqualValues(t, 4, memberCount)
	require.EqualValues(t, 4, taskCount)
}

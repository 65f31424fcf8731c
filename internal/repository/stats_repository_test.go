package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByStatus_ScansGroupedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Todo", 2).
			AddRow("Done", 1))

	rows, err := repo.CountByStatus()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Todo", rows[0].Status)
	assert.EqualValues(t, 2, rows[0].Count)
	assert.Equal(t, "Done", rows[1].Status)
	assert.EqualValues(t, 1, rows[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByPriority_EmptyTableScansEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT priority, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"priority", "count"}))

	rows, err := repo.CountByPriority()
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByMember_PropagatesQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT team_members\\.name, COUNT").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.CountByMember()
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/SazWhatician/Srupper/internal/error_values"
	"github.com/SazWhatician/Srupper/internal/repository"
	"github.com/SazWhatician/Srupper/pkg/entity"
)

var (
	taskColumns = []string{"task_id", "description", "is_repeat", "is_complete", "created_at"}
)

func TestCreateTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTasksRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO tasks (description, is_repeat) VALUES ($1, $2) RETURNING task_id, is_complete, created_at;`)
	taskID := uuid.New()
	createdAt := time.Now()
	testCases := []struct {
		Desc         string
		Error        error
		Task         entity.Task
		MockPrepFunc func(task entity.Task)
	}{
		{
			Desc:  "successful",
			Error: nil,
			Task:  entity.Task{Description: "water the plants", IsRepeat: true},
			MockPrepFunc: func(task entity.Task) {
				mock.ExpectQuery(query).
					WithArgs(task.Description, task.IsRepeat).
					WillReturnRows(pgxmock.NewRows([]string{"task_id", "is_complete", "created_at"}).AddRow(taskID, false, createdAt))
			},
		},
		{
			Desc:  "check violation",
			Error: errorvalues.ErrInvalidTask,
			Task:  entity.Task{Description: "   "},
			MockPrepFunc: func(task entity.Task) {
				mock.ExpectQuery(query).
					WithArgs(task.Description, task.IsRepeat).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
		},
		{
			Desc:  "invalid encoding",
			Error: errorvalues.ErrInvalidTask,
			Task:  entity.Task{Description: "\xff\xfe"},
			MockPrepFunc: func(task entity.Task) {
				mock.ExpectQuery(query).
					WithArgs(task.Description, task.IsRepeat).
					WillReturnError(&pgconn.PgError{Code: "22021"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating task db error: db error"),
			Task:  entity.Task{Description: "buy milk"},
			MockPrepFunc: func(task entity.Task) {
				mock.ExpectQuery(query).
					WithArgs(task.Description, task.IsRepeat).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc(tc.Task)
			task := tc.Task
			err := repo.Create(ctx, &task)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, taskID, task.ID)
			assert.Equal(t, createdAt, task.CreatedAt)
			assert.False(t, task.IsComplete)
		})
	}
	t.Run("nil task", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTasksRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT task_id, description, is_repeat, is_complete, created_at 
		FROM tasks ORDER BY is_complete ASC, created_at DESC, task_id ASC;`)
	now := time.Now()
	returned := []*entity.Task{
		{ID: uuid.New(), Description: "newest open", IsRepeat: true, CreatedAt: now},
		{ID: uuid.New(), Description: "older open", CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), Description: "done", IsComplete: true, CreatedAt: now.Add(time.Hour)},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(taskColumns)
		for _, task := range returned {
			rows.AddRow(task.ID, task.Description, task.IsRepeat, task.IsComplete, task.CreatedAt)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		require.Equal(t, len(returned), len(result))
		for i := range result {
			assert.Equal(t, *returned[i], *result[i])
		}
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(taskColumns))
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.EqualError(t, err, "listing tasks error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTasksRepoWithConn(mock)
	lockQuery := regexp.QuoteMeta(`SELECT is_complete FROM tasks WHERE task_id = $1 FOR UPDATE;`)
	updateQuery := regexp.QuoteMeta(`UPDATE tasks SET is_complete = TRUE WHERE task_id = $1 
		RETURNING task_id, description, is_repeat, is_complete, created_at;`)
	task := entity.Task{
		ID:          uuid.New(),
		Description: "stretch",
		IsRepeat:    true,
		IsComplete:  true,
		CreatedAt:   time.Now(),
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(lockQuery).
					WithArgs(task.ID).
					WillReturnRows(pgxmock.NewRows([]string{"is_complete"}).AddRow(false))
				mock.ExpectQuery(updateQuery).
					WithArgs(task.ID).
					WillReturnRows(pgxmock.NewRows(taskColumns).
						AddRow(task.ID, task.Description, task.IsRepeat, task.IsComplete, task.CreatedAt))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrTaskNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(lockQuery).
					WithArgs(task.ID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "already complete",
			Error: errorvalues.ErrTaskAlreadyComplete,
			MockPrepFunc: func() {
				mock.ExpectQuery(lockQuery).
					WithArgs(task.ID).
					WillReturnRows(pgxmock.NewRows([]string{"is_complete"}).AddRow(true))
			},
		},
		{
			Desc:  "lock db error",
			Error: errors.New("locking task error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(lockQuery).
					WithArgs(task.ID).
					WillReturnError(errors.New("db error"))
			},
		},
		{
			Desc:  "update db error",
			Error: errors.New("completing task error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(lockQuery).
					WithArgs(task.ID).
					WillReturnRows(pgxmock.NewRows([]string{"is_complete"}).AddRow(false))
				mock.ExpectQuery(updateQuery).
					WithArgs(task.ID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.Complete(ctx, task.ID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, task, *result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTasksRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM tasks;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("DELETE", 3))
		deleted, err := repo.DeleteAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
	t.Run("nothing to delete", func(t *testing.T) {
		mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		deleted, err := repo.DeleteAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WillReturnError(errors.New("db error"))
		_, err := repo.DeleteAll(ctx)
		assert.EqualError(t, err, "deleting tasks error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

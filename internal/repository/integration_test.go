package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	errorvalues "github.com/SazWhatician/Srupper/internal/error_values"
	"github.com/SazWhatician/Srupper/internal/repository"
	"github.com/SazWhatician/Srupper/pkg/entity"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	t.Cleanup(pool.Close)
	txManager := repository.NewTxManager(pool)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		t.Run("provision", func(t *testing.T) {
			require.NoError(t, usersRepo.Provision(ctx, uid, "The Obedient Repeater"))
			// second call keeps existing row
			require.NoError(t, usersRepo.Provision(ctx, uid, "ignored"))
			user, err := usersRepo.Get(ctx, uid)
			require.NoError(t, err)
			assert.Equal(t, entity.User{ID: uid, TotalPoints: 0, RankName: "The Obedient Repeater"}, *user)
		})
		t.Run("unknown user", func(t *testing.T) {
			_, err := usersRepo.Get(ctx, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		})
		t.Run("negative points rejected", func(t *testing.T) {
			_, err := usersRepo.SavePoints(ctx, &entity.User{ID: uid, TotalPoints: -1, RankName: "x"})
			assert.ErrorIs(t, err, errorvalues.ErrNegativePoints)
		})
	})

	tasks := []*entity.Task{
		{Description: "first", IsRepeat: true},
		{Description: "second"},
		{Description: "third", IsRepeat: true},
	}
	t.Run("tasks", func(t *testing.T) {
		t.Run("create", func(t *testing.T) {
			for _, task := range tasks {
				require.NoError(t, tasksRepo.Create(ctx, task))
				assert.NotEqual(t, uuid.Nil, task.ID)
				assert.False(t, task.IsComplete)
				time.Sleep(5 * time.Millisecond)
			}
		})
		t.Run("blank description", func(t *testing.T) {
			err := tasksRepo.Create(ctx, &entity.Task{Description: "  "})
			assert.ErrorIs(t, err, errorvalues.ErrInvalidTask)
		})
		t.Run("complete", func(t *testing.T) {
			done, err := tasksRepo.Complete(ctx, tasks[2].ID)
			require.NoError(t, err)
			assert.True(t, done.IsComplete)
			assert.Equal(t, tasks[2].Description, done.Description)
		})
		t.Run("complete twice", func(t *testing.T) {
			_, err := tasksRepo.Complete(ctx, tasks[2].ID)
			assert.ErrorIs(t, err, errorvalues.ErrTaskAlreadyComplete)
		})
		t.Run("complete unknown", func(t *testing.T) {
			_, err := tasksRepo.Complete(ctx, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
		})
		t.Run("list order", func(t *testing.T) {
			result, err := tasksRepo.List(ctx)
			require.NoError(t, err)
			require.Equal(t, 3, len(result))
			// open tasks newest first, then completed ones
			assert.Equal(t, tasks[1].ID, result[0].ID)
			assert.Equal(t, tasks[0].ID, result[1].ID)
			assert.Equal(t, tasks[2].ID, result[2].ID)
		})
	})

	t.Run("transaction rollback", func(t *testing.T) {
		err := txManager.WithinTx(ctx, func(repos *repository.TxRepositories) error {
			if err := repos.Tasks.Create(ctx, &entity.Task{Description: "never stored"}); err != nil {
				return err
			}
			_, err := repos.Users.SavePoints(ctx, &entity.User{ID: uid, TotalPoints: -5, RankName: "x"})
			return err
		})
		assert.ErrorIs(t, err, errorvalues.ErrNegativePoints)
		result, err := tasksRepo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, len(result))
	})

	t.Run("delete all", func(t *testing.T) {
		deleted, err := tasksRepo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		result, err := tasksRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("tasks created in one transaction", func(t *testing.T) {
		first := &entity.Task{Description: "same tx first"}
		second := &entity.Task{Description: "same tx second"}
		err := txManager.WithinTx(ctx, func(repos *repository.TxRepositories) error {
			if err := repos.Tasks.Create(ctx, first); err != nil {
				return err
			}
			return repos.Tasks.Create(ctx, second)
		})
		require.NoError(t, err)
		assert.True(t, second.CreatedAt.After(first.CreatedAt))
		result, err := tasksRepo.List(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, len(result))
		assert.Equal(t, second.ID, result[0].ID)
		assert.Equal(t, first.ID, result[1].ID)
		_, err = tasksRepo.DeleteAll(ctx)
		require.NoError(t, err)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("srupper"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{
		connStr: connStr,
	}
	err = repository.ApplyMigrations(cfg, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/SazWhatician/Srupper/internal/error_values"
	"github.com/SazWhatician/Srupper/pkg/entity"
)

type TasksRepository struct {
	conn Querier
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func newTasksRepo(q Querier) *TasksRepository {
	return &TasksRepository{
		conn: q,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (description, is_repeat) VALUES ($1, $2) RETURNING task_id, is_complete, created_at;`,
		task.Description,
		task.IsRepeat,
	)
	if err := row.Scan(&task.ID, &task.IsComplete, &task.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation, invalid byte sequence for encoding
			case "23514", "22021":
				return errorvalues.ErrInvalidTask
			}
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) List(ctx context.Context) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	rows, err := tr.conn.Query(ctx, `SELECT task_id, description, is_repeat, is_complete, created_at 
		FROM tasks ORDER BY is_complete ASC, created_at DESC, task_id ASC;`)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.Description, &t.IsRepeat, &t.IsComplete, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tasks: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Complete(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var isComplete bool
	row := tr.conn.QueryRow(ctx, `SELECT is_complete FROM tasks WHERE task_id = $1 FOR UPDATE;`, id)
	if err := row.Scan(&isComplete); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("locking task error: " + err.Error())
	}
	if isComplete {
		return nil, errorvalues.ErrTaskAlreadyComplete
	}
	var task entity.Task
	row = tr.conn.QueryRow(ctx, `UPDATE tasks SET is_complete = TRUE WHERE task_id = $1 
		RETURNING task_id, description, is_repeat, is_complete, created_at;`, id)
	if err := row.Scan(&task.ID, &task.Description, &task.IsRepeat, &task.IsComplete, &task.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("completing task error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks;`)
	if err != nil {
		return 0, errors.New("deleting tasks error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

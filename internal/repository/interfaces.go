package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SazWhatician/Srupper/pkg/entity"
)

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/SazWhatician/Srupper/internal/repository TasksRepositoryI,UsersRepositoryI,TxManagerI

type TasksRepositoryI interface {
	// Inserts task. Description and IsRepeat are necessary, ID, IsComplete and CreatedAt are filled from database
	Create(ctx context.Context, task *entity.Task) error
	// Lists all tasks: incomplete first, newest first inside each group
	List(ctx context.Context) ([]*entity.Task, error)
	// Marks task with id as complete and returns it
	Complete(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Deletes every task, returns count of deleted rows
	DeleteAll(ctx context.Context) (int64, error)
}

type UsersRepositoryI interface {
	// Creates user row with zero points if it doesn't exist yet
	Provision(ctx context.Context, uid uuid.UUID, rankName string) error
	Get(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Same as Get, but locks the row till the end of transaction
	GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Stores TotalPoints and RankName of user, returns stored row
	SavePoints(ctx context.Context, user *entity.User) (*entity.User, error)
}

// TxRepositories are bound to one transaction.
type TxRepositories struct {
	Tasks TasksRepositoryI
	Users UsersRepositoryI
}

type TxManagerI interface {
	// Runs fn in transaction. Commits if fn returns nil, otherwise rolls back
	WithinTx(ctx context.Context, fn func(repos *TxRepositories) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is implemented both by pool and by pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Optional, passed as sslmode query parameter
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}

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

type UsersRepository struct {
	conn Querier
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func newUsersRepo(q Querier) *UsersRepository {
	return &UsersRepository{
		conn: q,
	}
}

func (ur *UsersRepository) Provision(ctx context.Context, uid uuid.UUID, rankName string) error {
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (id, total_points, rank_name) VALUES ($1, 0, $2) ON CONFLICT (id) DO NOTHING;`,
		uid,
		rankName,
	)
	if err != nil {
		return errors.New("provisioning user error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.find(ctx, `SELECT id, total_points, rank_name FROM users WHERE id = $1;`, uid)
}

func (ur *UsersRepository) GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.find(ctx, `SELECT id, total_points, rank_name FROM users WHERE id = $1 FOR UPDATE;`, uid)
}

func (ur *UsersRepository) find(ctx context.Context, query string, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, query, uid)
	if err := row.Scan(&user.ID, &user.TotalPoints, &user.RankName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) SavePoints(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	var saved entity.User
	row := ur.conn.QueryRow(ctx, `UPDATE users SET total_points = $1, rank_name = $2 WHERE id = $3 
		RETURNING id, total_points, rank_name;`,
		user.TotalPoints,
		user.RankName,
		user.ID,
	)
	if err := row.Scan(&saved.ID, &saved.TotalPoints, &saved.RankName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation
			case "23514":
				return nil, errorvalues.ErrNegativePoints
			}
		}
		return nil, errors.New("updating user points error: " + err.Error())
	}
	return &saved, nil
}

package repository

import (
	"context"
	"errors"
)

type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	return &TxManager{
		conn: conn,
	}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(repos *TxRepositories) error) error {
	tx, err := m.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()
	err = fn(&TxRepositories{
		Tasks: newTasksRepo(tx),
		Users: newUsersRepo(tx),
	})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/SazWhatician/Srupper/pkg/entity"
)

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/SazWhatician/Srupper/internal/service TransitionServiceI

type CreateTaskRequest struct {
	Description string `validate:"required,notblank"`
	IsRepeat    bool
}

type TransitionServiceI interface {
	// Creates owner's row if it doesn't exist
	Provision(ctx context.Context) error
	GetUser(ctx context.Context) (*entity.User, error)
	// Lists tasks: incomplete first, newest first
	ListTasks(ctx context.Context) ([]*entity.Task, error)
	// Creates task and awards points for it in one transaction
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entity.Task, *entity.User, error)
	// Completes task and deducts points in one transaction. Returns updated user
	CompleteTask(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Deletes all tasks and resets user's points and rank
	Reset(ctx context.Context) (*entity.User, error)
}

var _ TransitionServiceI = (*TransitionService)(nil)

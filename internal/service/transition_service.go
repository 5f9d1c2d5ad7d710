package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/SazWhatician/Srupper/internal/error_values"
	"github.com/SazWhatician/Srupper/internal/repository"
	"github.com/SazWhatician/Srupper/pkg/entity"
)

// TransitionService keeps tasks and the owner's points consistent.
// Every mutation of points runs in one transaction with the task change and
// locks the owner's row first, so concurrent requests can't lose updates.
type TransitionService struct {
	owner     uuid.UUID
	tasksRepo repository.TasksRepositoryI
	usersRepo repository.UsersRepositoryI
	txManager repository.TxManagerI
}

type TransitionDeps struct {
	TasksRepo repository.TasksRepositoryI
	UsersRepo repository.UsersRepositoryI
	TxManager repository.TxManagerI
}

func NewTransitionService(owner uuid.UUID, deps TransitionDeps) *TransitionService {
	if deps.TasksRepo == nil || deps.UsersRepo == nil || deps.TxManager == nil {
		log.Fatal("on transition service provided nil dependencies")
	}
	if owner == uuid.Nil {
		log.Fatal("on transition service provided nil owner id")
	}
	return &TransitionService{
		owner:     owner,
		tasksRepo: deps.TasksRepo,
		usersRepo: deps.UsersRepo,
		txManager: deps.TxManager,
	}
}

func (ts *TransitionService) Provision(ctx context.Context) error {
	err := ts.usersRepo.Provision(ctx, ts.owner, DefaultRank)
	if err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

func (ts *TransitionService) GetUser(ctx context.Context) (*entity.User, error) {
	user, err := ts.usersRepo.Get(ctx, ts.owner)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (ts *TransitionService) ListTasks(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := ts.tasksRepo.List(ctx)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TransitionService) CreateTask(ctx context.Context, req CreateTaskRequest) (*entity.Task, *entity.User, error) {
	if err := validateTask(req); err != nil {
		return nil, nil, err
	}
	task := entity.Task{
		Description: req.Description,
		IsRepeat:    req.IsRepeat,
	}
	var user *entity.User
	err := ts.txManager.WithinTx(ctx, func(repos *repository.TxRepositories) error {
		if err := repos.Tasks.Create(ctx, &task); err != nil {
			if errors.Is(err, errorvalues.ErrInvalidTask) {
				return err
			}
			return errors.New("tasks repository error: " + err.Error())
		}
		var err error
		user, err = ts.applyPoints(ctx, repos.Users, CreationDelta(req.IsRepeat))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &task, user, nil
}

func (ts *TransitionService) CompleteTask(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := ts.txManager.WithinTx(ctx, func(repos *repository.TxRepositories) error {
		if _, err := repos.Tasks.Complete(ctx, id); err != nil {
			if errors.Is(err, errorvalues.ErrTaskNotFound) || errors.Is(err, errorvalues.ErrTaskAlreadyComplete) {
				return err
			}
			return errors.New("tasks repository error: " + err.Error())
		}
		var err error
		user, err = ts.applyPoints(ctx, repos.Users, CompletionPenalty)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (ts *TransitionService) Reset(ctx context.Context) (*entity.User, error) {
	var user *entity.User
	err := ts.txManager.WithinTx(ctx, func(repos *repository.TxRepositories) error {
		if _, err := repos.Tasks.DeleteAll(ctx); err != nil {
			return errors.New("tasks repository error: " + err.Error())
		}
		current, err := ts.lockOwner(ctx, repos.Users)
		if err != nil {
			return err
		}
		current.TotalPoints = 0
		current.RankName = RankFor(0)
		user, err = ts.savePoints(ctx, repos.Users, current)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// applyPoints must be called inside transaction: it locks the owner's row,
// applies delta with zero floor and stores recomputed rank.
func (ts *TransitionService) applyPoints(ctx context.Context, users repository.UsersRepositoryI, delta int) (*entity.User, error) {
	current, err := ts.lockOwner(ctx, users)
	if err != nil {
		return nil, err
	}
	current.TotalPoints = ApplyDelta(current.TotalPoints, delta)
	current.RankName = RankFor(current.TotalPoints)
	return ts.savePoints(ctx, users, current)
}

func (ts *TransitionService) lockOwner(ctx context.Context, users repository.UsersRepositoryI) (*entity.User, error) {
	user, err := users.GetForUpdate(ctx, ts.owner)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (ts *TransitionService) savePoints(ctx context.Context, users repository.UsersRepositoryI, user *entity.User) (*entity.User, error) {
	saved, err := users.SavePoints(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrNegativePoints) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return saved, nil
}

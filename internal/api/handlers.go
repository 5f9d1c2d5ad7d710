package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/SazWhatician/Srupper/internal/error_values"
	"github.com/SazWhatician/Srupper/internal/service"
	"github.com/SazWhatician/Srupper/pkg/entity"
	"github.com/SazWhatician/Srupper/pkg/httputil"
)

const (
	readTimeout     = time.Second * 10
	mutationTimeout = time.Second * 10
	listTimeout     = time.Second * 15
	healthTimeout   = time.Second * 2
)

type CreateTaskRequest struct {
	Description string `json:"description"`
	IsRepeat    bool   `json:"is_repeat"`
}

type CreateTaskResponse struct {
	NewTask     *entity.Task `json:"newTask"`
	NewUserData *entity.User `json:"newUserData"`
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	user, err := s.transitionService.GetUser(ctx)
	if err != nil {
		logger.Error("getting user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("user provided")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	tasks, err := s.transitionService.ListTasks(ctx)
	if err != nil {
		logger.Error("getting tasks list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tasks list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided", slog.Int("count", len(tasks)))
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	task, user, err := s.transitionService.CreateTask(ctx, service.CreateTaskRequest{
		Description: req.Description,
		IsRepeat:    req.IsRepeat,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidTask):
			logger.Error("create task error: invalid task", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "task description is required", nil)
		default:
			logger.Error("create task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating task", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, CreateTaskResponse{
		NewTask:     task,
		NewUserData: user,
	})
	logger.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.Int("total_points", user.TotalPoints))
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("complete task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	user, err := s.transitionService.CompleteTask(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("complete task error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task not found", nil)
		case errors.Is(err, errorvalues.ErrTaskAlreadyComplete):
			logger.Error("complete task error: task already completed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "task already completed", nil)
		default:
			logger.Error("complete task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing task", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("task completed",
		slog.String("task_id", id.String()),
		slog.Int("total_points", user.TotalPoints))
}

func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	user, err := s.transitionService.Reset(ctx)
	if err != nil {
		logger.Error("reset error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("progress reset")
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.pinger == nil {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := s.pinger.Ping(ctx); err != nil {
		GetLoggerFromCtx(r.Context()).Error("health check error: database unreachable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SazWhatician/Srupper/internal/api"
	"github.com/SazWhatician/Srupper/internal/repository"
	"github.com/SazWhatician/Srupper/internal/service"
	"github.com/SazWhatician/Srupper/pkg/cleanup"
	"github.com/SazWhatician/Srupper/pkg/config"
)

const defaultOwnerID = "00000000-0000-0000-0000-000000000001"

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		if err := repository.ApplyMigrations(&dbCfg, dir); err != nil {
			log.Fatal(err)
		}
		slog.Info("migrations applied", slog.String("dir", dir))
	}
	ownerID, err := uuid.Parse(cfg.GetStringOr("OWNER_ID", defaultOwnerID))
	if err != nil {
		log.Fatal("invalid OWNER_ID: " + err.Error())
	}

	pool := repository.NewPool(&dbCfg)
	transitionService := service.NewTransitionService(ownerID, service.TransitionDeps{
		TasksRepo: repository.NewTasksRepoWithConn(pool),
		UsersRepo: repository.NewUsersRepoWithConn(pool),
		TxManager: repository.NewTxManager(pool),
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	err = transitionService.Provision(ctx)
	cancel()
	if err != nil {
		slog.Error("provisioning owner error", slog.String("error", err.Error()))
		return
	}

	serv := api.New(&api.ServicesList{
		TransitionService: transitionService,
		Pinger:            pool,
	}, api.Options{
		AllowedOrigins: cfg.GetStringOr("CORS_ALLOWED_ORIGINS", "*"),
		StaticDir:      cfg.GetString("STATIC_DIR"),
	})
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":3000"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

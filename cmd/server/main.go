package main

import (
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/di"
	"task_backend/internal/app/router"
	"task_backend/internal/config"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	infradb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	slog.Info("starting task backend", "env", cfg.Env)

	// db
	db := infradb.OpenDB(cfg.Database)

	// Redis; sessions fall back to the database when unavailable
	var rdb *redisv9.Client
	if cfg.Redis.Address != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable, using database sessions", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	taskRepo := taskadapters.NewTaskGorm(db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.TTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen, cfg.Session.TTL)
	taskUC := taskusecase.NewTaskUsecase(taskRepo, cfg.Tasks.PageSize, taskusecase.Order(cfg.Tasks.Order))

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.Session.CookieName, int(cfg.Session.TTL.Seconds()))
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.NewRouter(authH, taskH, authUC, cfg)

	if cfg.JWT.Secret == "" {
		slog.Warn("JWT secret is not set; the JSON API will reject all tokens")
	}

	if err := r.Run(cfg.HTTPServer.Address); err != nil {
		log.Fatal(err)
	}
}

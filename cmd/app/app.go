package app

import (
	"go.uber.org/zap"

	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/logger"
	"socialhub/internal/repository"
	"socialhub/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(db, repo, cfg)

	return db, repo, services
}

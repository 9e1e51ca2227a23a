package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/conjugator/internal/infrastructure/config"
	"github.com/eslsoft/conjugator/internal/infrastructure/server"
	"github.com/eslsoft/conjugator/internal/repository"
	"github.com/eslsoft/conjugator/internal/usecase"
	"github.com/eslsoft/conjugator/internal/usecase/backup"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Server      *server.Server
	Repository  repository.ConjugationRepository
	Conjugation usecase.ConjugationUsecase
	Backup      *backup.Service
}

func provideSyncWorkers(cfg *config.Config) usecase.SyncWorkers {
	return usecase.SyncWorkers(cfg.Sync.Workers)
}

func provideBackupService(repo repository.ConjugationRepository) (*backup.Service, error) {
	return backup.NewService(repo)
}

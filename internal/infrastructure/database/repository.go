package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/conjugator/internal/adapter/repository"
	"github.com/eslsoft/conjugator/internal/infrastructure/config"
	"github.com/eslsoft/conjugator/internal/repository"
)

// NewConjugationRepository migrates the configured database and returns the
// repository implementation for its driver.
func NewConjugationRepository(cfg *config.Config, logger *logrus.Logger) (repository.ConjugationRepository, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := MigrateDSN(ctx, driver, dsn); err != nil {
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	if driver == "pgx" {
		pool, cleanup, err := NewConnection(dsn, cfg.Database.LogSQL, logger)
		if err != nil {
			return nil, nil, err
		}
		return adapterrepo.NewPgxConjugationRepository(pool), cleanup, nil
	}

	db, cleanup, err := OpenSQL(driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("driver", driver).Debug("database opened")
	return adapterrepo.NewSQLConjugationRepository(db, driver), cleanup, nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/conjugator/internal/adapter/connectrpc"
	"github.com/eslsoft/conjugator/internal/conjugation"
	"github.com/eslsoft/conjugator/internal/infrastructure/config"
	"github.com/eslsoft/conjugator/internal/infrastructure/database"
	"github.com/eslsoft/conjugator/internal/infrastructure/server"
	"github.com/eslsoft/conjugator/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
	provideSyncWorkers,
)

var repositorySet = wire.NewSet(
	database.NewConjugationRepository,
)

var engineSet = wire.NewSet(
	conjugation.New,
	wire.Bind(new(usecase.Conjugator), new(*conjugation.Engine)),
)

var usecaseSet = wire.NewSet(
	usecase.NewConjugationUsecase,
	provideBackupService,
)

var serviceSet = wire.NewSet(
	connectrpc.NewConjugationServiceServer,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		repositorySet,
		engineSet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}

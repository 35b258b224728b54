//go:build wireinject
// +build wireinject

package di

import (
	"TokenPulse/pkg/config"
	"TokenPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideRedisClient,
		ProvideMetrics,
		ProvideQueue,
		ProvideScorePublisher,

		// Outbound clients
		ProvideBackendGateway,
		ProvideMarketData,

		// Domain engines
		ProvideScoringEngine,
		ProvideForecaster,

		// Use case and handler
		ProvideScoreService,
		ProvideScoreHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

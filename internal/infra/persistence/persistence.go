// Package persistence selects the credential store backend from configuration.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the store provider, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the credential store views consumed by the use cases.
type Repositories struct {
	fx.Out

	Customers      repository.CustomerRepository
	SessionSecrets repository.SessionSecretRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory credential store; data is lost on restart")
		store := memory.NewStore()

		return Repositories{Customers: store, SessionSecrets: store}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Customers:      postgres.NewCustomerRepository(db),
			SessionSecrets: postgres.NewSessionSecretRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

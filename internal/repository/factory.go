package repository

import (
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/order"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/postgres"
	memoryRepo "github.com/letybo/ordering/internal/repository/memory"
	postgresRepo "github.com/letybo/ordering/internal/repository/postgres"
	"github.com/letybo/ordering/internal/types"
)

// RepositoryParams holds what the order store constructors may need. DB is
// nil when the memory provider is configured.
type RepositoryParams struct {
	Config *config.Configuration
	DB     *postgres.DB
	Logger *logger.Logger
}

func NewOrderRepository(p RepositoryParams) (order.Repository, error) {
	switch p.Config.Store.Provider {
	case types.StoreProviderPostgres:
		if p.DB == nil {
			return nil, ierr.NewError("postgres store without a database handle").
				Mark(ierr.ErrSystem)
		}
		return postgresRepo.NewOrderRepository(p.DB, p.Logger), nil
	case types.StoreProviderMemory:
		p.Logger.Warnw("using in-memory order store, orders are lost on restart")
		return memoryRepo.NewOrderStore(), nil
	default:
		return nil, ierr.NewError("unknown store provider").
			WithHintf("Store provider %q is not supported", p.Config.Store.Provider).
			Mark(ierr.ErrValidation)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/postgres"
	"github.com/jhoicas/caja-api/pkg/config"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// repositories persistencia elegida por STORE_DRIVER.
type repositories struct {
	users       repository.UserRepository
	customers   repository.CustomerRepository
	movements   repository.AccountMovementRepository
	commissions repository.CommissionRepository
	sales       repository.SaleRepository
	withdrawals repository.WithdrawalRepository
	business    repository.BusinessConfigRepository
	ledgerTx    ledger.TxRunner
	close       func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("usando store en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &repositories{
			users:       memory.NewUserRepository(s),
			customers:   memory.NewCustomerRepository(s),
			movements:   memory.NewAccountMovementRepository(s),
			commissions: memory.NewCommissionRepository(s),
			sales:       memory.NewSaleRepository(s),
			withdrawals: memory.NewWithdrawalRepository(s),
			business:    memory.NewBusinessConfigRepository(s),
			ledgerTx:    memory.NewLedgerTxRunner(s),
			close:       func() {},
		}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrar esquema: %w", err)
			}
			log.Info().Msg("esquema aplicado")
		}
		return &repositories{
			users:       postgres.NewUserRepository(pool),
			customers:   postgres.NewCustomerRepository(pool),
			movements:   postgres.NewAccountMovementRepository(pool),
			commissions: postgres.NewCommissionRepository(pool),
			sales:       postgres.NewSaleRepository(pool),
			withdrawals: postgres.NewWithdrawalRepository(pool),
			business:    postgres.NewBusinessConfigRepository(pool),
			ledgerTx:    postgres.NewLedgerTxRunner(pool),
			close:       pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("driver de store desconocido %q", cfg.Store.Driver)
}

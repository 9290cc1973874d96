package pgsql

import (
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:        newPgxTxManager(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		OrderNumberRepo:  newPgxOrderNumberRepository(dbPool),
		PartyRepo:        newPgxPartyRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		BankRepo:         newPgxBankRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager        TransactionManager
	OrderRepo        OrderRepositoryFacade
	OrderNumberRepo  OrderNumberRepository
	PartyRepo        PartyRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	BankRepo         BankRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	UserRepo         UserRepositoryFacade
}

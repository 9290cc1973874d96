package services

import (
	"github.com/SscSPs/tour_orders_app/internal/core/ports/publishers"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher publishers.OrderEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Orders resolve rates through the exchange rate service, so it goes first
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Order = NewOrderService(repos, container.ExchangeRate,
		WithOrderEventPublisher(publisher),
		WithPublishTimeout(cfg.KafkaPublishTimeout))
	container.Directory = NewDirectoryService(repos.PartyRepo, repos.SupplierRepo)
	container.Bank = NewBankService(repos.BankRepo)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)

	return container
}

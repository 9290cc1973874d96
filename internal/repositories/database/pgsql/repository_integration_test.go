package pgsql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/SscSPs/tour_orders_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/tour_orders_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
	now       time.Time
}

func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	_, err = database.RunMigrations(dsn, "file://../../../../migrations")
	suite.Require().NoError(err)

	pool, err := database.NewPgxPool(ctx, dsn, true)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = pgsql.NewRepositoryProvider(pool)
}

func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	_, err := suite.pool.Exec(context.Background(), `
		TRUNCATE TABLE payments, orders, passengers, extra_services, hotel_stays, flight_segments,
			tours, suppliers, parties, exchange_rates, users, order_sequences, banks CASCADE`)
	suite.Require().NoError(err)
	suite.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *RepositoryIntegrationTestSuite) newOrder(ctx context.Context, number string) domain.Order {
	audit := domain.NewAuditFields("user-a", suite.now)

	party := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        domain.PartyKindPerson,
		Email:       "nino@example.com",
		Person:      &domain.PersonDetails{FirstName: "Nino", LastName: "Beridze"},
		AuditFields: audit,
	}
	suite.Require().NoError(suite.repos.PartyRepo.SaveParty(ctx, party))

	supplier := domain.Supplier{SupplierID: uuid.NewString(), Name: "Caucasus Travel", AuditFields: audit}
	suite.Require().NoError(suite.repos.SupplierRepo.SaveSupplier(ctx, supplier))

	rate := decimal.RequireFromString("2.7")
	tourID := uuid.NewString()
	tour := domain.Tour{
		TourID:         tourID,
		Name:           "Batumi Weekend",
		StartDate:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
		PassengerCount: 2,
		SupplierID:     supplier.SupplierID,
		FlightSegments: []domain.FlightSegment{{
			FlightSegmentID: uuid.NewString(),
			From:            "TBS",
			To:              "BUS",
			FlightDate:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Price:           domain.NewPriceLine(decimal.NewFromInt(250), domain.USD, &rate, suite.now),
		}},
		HotelStays: []domain.HotelStay{{
			HotelStayID: uuid.NewString(),
			HotelName:   "Sea View",
			CheckIn:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
			Price:       domain.NewPriceLine(decimal.NewFromInt(300), domain.GEL, nil, suite.now),
		}},
		ExtraServices: []domain.ExtraService{},
		Passengers: []domain.Passenger{
			{PassengerID: uuid.NewString(), FirstName: "Nino", LastName: "Beridze", IsPrimary: true},
			{PassengerID: uuid.NewString(), FirstName: "Giorgi", LastName: "Beridze"},
		},
	}

	orderID := uuid.NewString()
	return domain.Order{
		OrderID:         orderID,
		OrderNumber:     number,
		Status:          domain.OrderStatusOpen,
		PartyID:         party.PartyID,
		TourID:          tourID,
		Tour:            &tour,
		Source:          "walk-in",
		SellPriceInBase: decimal.NewFromInt(1500),
		CreatedByID:     uuid.NewString(),
		CreatedByEmail:  "a@agency.ge",
		Payments: []domain.Payment{{
			PaymentID: uuid.NewString(),
			OrderID:   orderID,
			Price:     domain.NewPriceLine(decimal.NewFromInt(500), domain.GEL, nil, suite.now),
			PaidDate:  suite.now,
			CreatedAt: suite.now,
			CreatedBy: "user-a",
		}},
		Version:     1,
		AuditFields: audit,
	}
}

func (suite *RepositoryIntegrationTestSuite) TestSaveOrder_FindOrderByID_LoadsFullGraph() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0001")

	err := suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	})
	suite.Require().NoError(err)

	found, err := suite.repos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	suite.Require().NoError(err)

	suite.Equal(order.OrderNumber, found.OrderNumber)
	suite.Require().NotNil(found.Party)
	suite.Equal("Nino Beridze", found.Party.DisplayName())
	suite.Require().NotNil(found.Tour)
	suite.Require().NotNil(found.Tour.Supplier)
	suite.Equal("Caucasus Travel", found.Tour.Supplier.Name)
	suite.Len(found.Tour.FlightSegments, 1)
	suite.Len(found.Tour.HotelStays, 1)
	suite.Len(found.Tour.Passengers, 2)
	suite.True(found.Tour.Passengers[0].IsPrimary)
	suite.Len(found.Payments, 1)

	inBase, ok := found.Tour.FlightSegments[0].Price.PriceInBase()
	suite.True(ok)
	suite.True(inBase.Equal(decimal.NewFromInt(675)), "got %s", inBase)
}

func (suite *RepositoryIntegrationTestSuite) TestTxManager_RollsBackOnError() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0002")
	boom := errors.New("boom")

	err := suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		if err := suite.repos.OrderRepo.SaveOrder(ctx, order); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	_, err = suite.repos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestUpdateOrderHeader_VersionMismatchIsConflict() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0003")
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	}))

	order.Version = 2
	order.Source = "web"
	suite.Require().NoError(suite.repos.OrderRepo.UpdateOrderHeader(ctx, order, 1))

	order.Version = 3
	err := suite.repos.OrderRepo.UpdateOrderHeader(ctx, order, 1)
	suite.ErrorIs(err, apperrors.ErrConflict)

	found, err := suite.repos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), found.Version)
	suite.Equal("web", found.Source)
}

func (suite *RepositoryIntegrationTestSuite) TestReplaceTour_RebuildsChildren() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0004")
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	}))

	tour := *order.Tour
	tour.Name = "Batumi Long Weekend"
	tour.FlightSegments = nil
	tour.Passengers = tour.Passengers[:1]
	tour.ExtraServices = []domain.ExtraService{{
		ExtraServiceID: uuid.NewString(),
		Description:    "Transfer",
		Price:          domain.NewPriceLine(decimal.NewFromInt(40), domain.GEL, nil, suite.now),
	}}

	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.ReplaceTour(ctx, tour)
	}))

	found, err := suite.repos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	suite.Require().NoError(err)
	suite.Equal("Batumi Long Weekend", found.Tour.Name)
	suite.Empty(found.Tour.FlightSegments)
	suite.Len(found.Tour.HotelStays, 1)
	suite.Len(found.Tour.ExtraServices, 1)
	suite.Len(found.Tour.Passengers, 1)
}

func (suite *RepositoryIntegrationTestSuite) TestDeleteOrder_CascadesAndFreesParty() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0005")
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	}))

	deleted, err := suite.repos.PartyRepo.DeletePartyIfUnreferenced(ctx, order.PartyID)
	suite.Require().NoError(err)
	suite.False(deleted)

	suite.Require().NoError(suite.repos.OrderRepo.DeleteOrder(ctx, order.OrderID))

	_, err = suite.repos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	var children int
	err = suite.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM flight_segments) + (SELECT COUNT(*) FROM passengers) + (SELECT COUNT(*) FROM payments)`).Scan(&children)
	suite.Require().NoError(err)
	suite.Zero(children)

	deleted, err = suite.repos.PartyRepo.DeletePartyIfUnreferenced(ctx, order.PartyID)
	suite.Require().NoError(err)
	suite.True(deleted)
}

func (suite *RepositoryIntegrationTestSuite) TestListOrders_KeysetPagination() {
	ctx := context.Background()
	var ids []string
	for i, n := range []string{"ORD-2024-0010", "ORD-2024-0011", "ORD-2024-0012"} {
		order := suite.newOrder(ctx, n)
		order.CreatedAt = suite.now.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
			return suite.repos.OrderRepo.SaveOrder(ctx, order)
		}))
		ids = append(ids, order.OrderID)
	}

	first, err := suite.repos.OrderRepo.ListOrders(ctx, domain.OrderFilter{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(first, 2)
	suite.Equal(ids[2], first[0].OrderID)
	suite.Equal(ids[1], first[1].OrderID)
	suite.NotNil(first[0].Party)

	last := first[1]
	second, err := suite.repos.OrderRepo.ListOrders(ctx, domain.OrderFilter{
		Limit:           2,
		CursorCreatedAt: &last.CreatedAt,
		CursorOrderID:   &last.OrderID,
	})
	suite.Require().NoError(err)
	suite.Require().Len(second, 1)
	suite.Equal(ids[0], second[0].OrderID)

	prefix := "ORD-2024-001"
	closed := domain.OrderStatusClosed
	none, err := suite.repos.OrderRepo.ListOrders(ctx, domain.OrderFilter{OrderNumberPrefix: &prefix, Status: &closed})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *RepositoryIntegrationTestSuite) TestExchangeRates_UpsertAndLatestAsOf() {
	ctx := context.Background()
	save := func(rate string, day int) {
		_, err := suite.repos.ExchangeRateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
			ExchangeRateID: uuid.NewString(),
			FromCurrency:   domain.USD,
			ToCurrency:     domain.GEL,
			Rate:           decimal.RequireFromString(rate),
			DateEffective:  time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			AuditFields:    domain.NewAuditFields("user-a", suite.now),
		})
		suite.Require().NoError(err)
	}
	save("2.60", 1)
	save("2.70", 5)
	save("2.75", 5)

	latest, err := suite.repos.ExchangeRateRepo.FindLatestExchangeRate(ctx, domain.USD, domain.GEL, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.True(latest.Rate.Equal(decimal.RequireFromString("2.75")))

	early, err := suite.repos.ExchangeRateRepo.FindLatestExchangeRate(ctx, domain.USD, domain.GEL, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.True(early.Rate.Equal(decimal.RequireFromString("2.60")))

	_, err = suite.repos.ExchangeRateRepo.FindLatestExchangeRate(ctx, domain.GEL, domain.USD, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	all, err := suite.repos.ExchangeRateRepo.ListExchangeRates(ctx, domain.ExchangeRateFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *RepositoryIntegrationTestSuite) TestNextOrderSequence_PerYear() {
	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		got, err := suite.repos.OrderNumberRepo.NextOrderSequence(ctx, 2024)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
	got, err := suite.repos.OrderNumberRepo.NextOrderSequence(ctx, 2025)
	suite.Require().NoError(err)
	suite.Equal(int64(1), got)
}

func (suite *RepositoryIntegrationTestSuite) TestUsers_DuplicateEmail() {
	ctx := context.Background()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        "Boss@Agency.ge",
		Name:         "Boss",
		Role:         domain.RoleSupervisor,
		PasswordHash: "hash",
		AuditFields:  domain.NewAuditFields("system", suite.now),
	}
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(ctx, user))

	found, err := suite.repos.UserRepo.FindUserByEmail(ctx, "boss@agency.ge")
	suite.Require().NoError(err)
	suite.Equal(domain.RoleSupervisor, found.Role)

	user.UserID = uuid.NewString()
	err = suite.repos.UserRepo.SaveUser(ctx, user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RepositoryIntegrationTestSuite) TestFindMatchingParty_ByNaturalKey() {
	ctx := context.Background()
	birth := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        domain.PartyKindPerson,
		Email:       "levan@example.com",
		Person:      &domain.PersonDetails{FirstName: "Levan", LastName: "Kapanadze", BirthDate: &birth},
		AuditFields: domain.NewAuditFields("user-a", suite.now),
	}
	suite.Require().NoError(suite.repos.PartyRepo.SaveParty(ctx, party))

	lookup := party
	lookup.PartyID = ""
	lookup.Email = "other@example.com"
	found, err := suite.repos.PartyRepo.FindMatchingParty(ctx, lookup)
	suite.Require().NoError(err)
	suite.Equal(party.PartyID, found.PartyID)

	lookup.Person = &domain.PersonDetails{FirstName: "Levan", LastName: "Kapanadze"}
	_, err = suite.repos.PartyRepo.FindMatchingParty(ctx, lookup)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestIsPartyReferencedElsewhere() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0011")
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	}))

	shared, err := suite.repos.PartyRepo.IsPartyReferencedElsewhere(ctx, order.PartyID, order.OrderID)
	suite.Require().NoError(err)
	suite.False(shared)

	second := suite.newOrder(ctx, "ORD-2024-0012")
	second.PartyID = order.PartyID
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, second)
	}))

	shared, err = suite.repos.PartyRepo.IsPartyReferencedElsewhere(ctx, order.PartyID, order.OrderID)
	suite.Require().NoError(err)
	suite.True(shared)
}

func (suite *RepositoryIntegrationTestSuite) TestDeleteSupplierIfUnreferenced() {
	ctx := context.Background()
	order := suite.newOrder(ctx, "ORD-2024-0021")
	suite.Require().NoError(suite.repos.TxManager.Do(ctx, func(ctx context.Context) error {
		return suite.repos.OrderRepo.SaveOrder(ctx, order)
	}))

	deleted, err := suite.repos.SupplierRepo.DeleteSupplierIfUnreferenced(ctx, order.Tour.SupplierID)
	suite.Require().NoError(err)
	suite.False(deleted)

	spare := domain.Supplier{SupplierID: uuid.NewString(), Name: "Unused Tours", AuditFields: domain.NewAuditFields("user-a", suite.now)}
	suite.Require().NoError(suite.repos.SupplierRepo.SaveSupplier(ctx, spare))

	deleted, err = suite.repos.SupplierRepo.DeleteSupplierIfUnreferenced(ctx, spare.SupplierID)
	suite.Require().NoError(err)
	suite.True(deleted)

	_, err = suite.repos.SupplierRepo.FindSupplierByID(ctx, spare.SupplierID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestBanks_CRUD() {
	ctx := context.Background()
	swift := "BAGAGE22"
	account := "GE29NB0000000101904917"
	bank := domain.Bank{
		BankID:        uuid.NewString(),
		Name:          "Bank of Georgia",
		Swift:         &swift,
		AccountNumber: &account,
		AuditFields:   domain.NewAuditFields("user-a", suite.now),
	}
	suite.Require().NoError(suite.repos.BankRepo.SaveBank(ctx, bank))

	dup := bank
	dup.BankID = uuid.NewString()
	suite.ErrorIs(suite.repos.BankRepo.SaveBank(ctx, dup), apperrors.ErrDuplicate)

	bank.Name = "TBC Bank"
	bank.Swift = nil
	suite.Require().NoError(suite.repos.BankRepo.UpdateBank(ctx, bank))

	found, err := suite.repos.BankRepo.FindBankByID(ctx, bank.BankID)
	suite.Require().NoError(err)
	suite.Equal("TBC Bank", found.Name)
	suite.Nil(found.Swift)
	suite.Equal(account, *found.AccountNumber)

	all, err := suite.repos.BankRepo.FindBanks(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Len(all, 1)

	suite.Require().NoError(suite.repos.BankRepo.DeleteBank(ctx, bank.BankID))
	suite.ErrorIs(suite.repos.BankRepo.DeleteBank(ctx, bank.BankID), apperrors.ErrNotFound)
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderDraft is a validated order payload. Nothing in it has been persisted and only
// the tour children carry IDs.
type orderDraft struct {
	party          domain.Party
	supplier       domain.Supplier
	tour           domain.Tour
	payments       []domain.Payment
	source         string
	sellPrice      decimal.Decimal
	bankRequisites *domain.BankRequisites
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// buildDraft validates the whole payload and snapshots missing exchange rates. It runs
// before any write so a rejected payload leaves the store untouched.
func (s *orderService) buildDraft(ctx context.Context, req dto.OrderRequest, actor domain.Actor, now time.Time) (*orderDraft, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		return nil, validationf("source is required")
	}
	if req.SellPriceInBase.IsNegative() {
		return nil, validationf("sell price must not be negative")
	}

	party, err := buildParty(req.Party)
	if err != nil {
		return nil, err
	}
	supplier, err := buildSupplier(req.Tour.Supplier)
	if err != nil {
		return nil, err
	}
	tour, err := s.buildTour(ctx, req.Tour, now)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(req.Payments))
	for i, p := range req.Payments {
		payment, err := s.buildPayment(ctx, p, actor, now)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		payments = append(payments, payment)
	}

	return &orderDraft{
		party:          party,
		supplier:       supplier,
		tour:           tour,
		payments:       payments,
		source:         source,
		sellPrice:      req.SellPriceInBase,
		bankRequisites: buildBankRequisites(req.BankRequisites),
	}, nil
}

func buildParty(req dto.PartyRequest) (domain.Party, error) {
	kind, ok := domain.ParsePartyKind(req.Kind)
	if !ok {
		return domain.Party{}, validationf("unknown party kind %q", req.Kind)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return domain.Party{}, validationf("party email is required")
	}

	party := domain.Party{Kind: kind, Email: email, Phone: trimmed(req.Phone)}
	switch kind {
	case domain.PartyKindPerson:
		if req.Person == nil || req.Company != nil {
			return domain.Party{}, validationf("a PERSON party needs person details only")
		}
		first, last := strings.TrimSpace(req.Person.FirstName), strings.TrimSpace(req.Person.LastName)
		if first == "" || last == "" {
			return domain.Party{}, validationf("person first and last name are required")
		}
		var birth *time.Time
		if req.Person.BirthDate != nil {
			d := domain.TruncateToDate(*req.Person.BirthDate)
			birth = &d
		}
		party.Person = &domain.PersonDetails{FirstName: first, LastName: last, BirthDate: birth}
	case domain.PartyKindCompany:
		if req.Company == nil || req.Person != nil {
			return domain.Party{}, validationf("a COMPANY party needs company details only")
		}
		name := strings.TrimSpace(req.Company.CompanyName)
		if name == "" {
			return domain.Party{}, validationf("company name is required")
		}
		party.Company = &domain.CompanyDetails{
			CompanyName:        name,
			RegistrationNumber: trimmed(req.Company.RegistrationNumber),
			ContactPerson:      trimmed(req.Company.ContactPerson),
		}
	}
	return party, nil
}

func buildSupplier(req dto.SupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, validationf("supplier name is required")
	}
	return domain.Supplier{
		Name:         name,
		ContactEmail: trimmed(req.ContactEmail),
		Phone:        trimmed(req.Phone),
	}, nil
}

func (s *orderService) buildTour(ctx context.Context, req dto.TourRequest, now time.Time) (domain.Tour, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Tour{}, validationf("tour name is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return domain.Tour{}, validationf("tour end date is before its start date")
	}
	if req.PassengerCount < 0 {
		return domain.Tour{}, validationf("passenger count must not be negative")
	}

	tour := domain.Tour{
		TourID:         uuid.NewString(),
		Name:           name,
		StartDate:      domain.TruncateToDate(req.StartDate),
		EndDate:        domain.TruncateToDate(req.EndDate),
		PassengerCount: req.PassengerCount,
		FlightSegments: make([]domain.FlightSegment, 0, len(req.FlightSegments)),
		HotelStays:     make([]domain.HotelStay, 0, len(req.HotelStays)),
		ExtraServices:  make([]domain.ExtraService, 0, len(req.ExtraServices)),
		Passengers:     make([]domain.Passenger, 0, len(req.Passengers)),
	}

	for i, f := range req.FlightSegments {
		if strings.TrimSpace(f.From) == "" || strings.TrimSpace(f.To) == "" {
			return domain.Tour{}, validationf("flight %d: from and to are required", i+1)
		}
		price, err := s.buildPrice(ctx, f.Price, now)
		if err != nil {
			return domain.Tour{}, fmt.Errorf("flight %d: %w", i+1, err)
		}
		tour.FlightSegments = append(tour.FlightSegments, domain.FlightSegment{
			FlightSegmentID: uuid.NewString(),
			From:            strings.TrimSpace(f.From),
			To:              strings.TrimSpace(f.To),
			FlightDate:      f.FlightDate.UTC(),
			PNR:             trimmed(f.PNR),
			Price:           price,
		})
	}

	for i, h := range req.HotelStays {
		if strings.TrimSpace(h.HotelName) == "" {
			return domain.Tour{}, validationf("hotel %d: hotel name is required", i+1)
		}
		if h.CheckOut.Before(h.CheckIn) {
			return domain.Tour{}, validationf("hotel %d: check-out is before check-in", i+1)
		}
		price, err := s.buildPrice(ctx, h.Price, now)
		if err != nil {
			return domain.Tour{}, fmt.Errorf("hotel %d: %w", i+1, err)
		}
		tour.HotelStays = append(tour.HotelStays, domain.HotelStay{
			HotelStayID:        uuid.NewString(),
			HotelName:          strings.TrimSpace(h.HotelName),
			CheckIn:            domain.TruncateToDate(h.CheckIn),
			CheckOut:           domain.TruncateToDate(h.CheckOut),
			ConfirmationNumber: trimmed(h.ConfirmationNumber),
			Price:              price,
		})
	}

	for i, e := range req.ExtraServices {
		if strings.TrimSpace(e.Description) == "" {
			return domain.Tour{}, validationf("extra service %d: description is required", i+1)
		}
		price, err := s.buildPrice(ctx, e.Price, now)
		if err != nil {
			return domain.Tour{}, fmt.Errorf("extra service %d: %w", i+1, err)
		}
		tour.ExtraServices = append(tour.ExtraServices, domain.ExtraService{
			ExtraServiceID: uuid.NewString(),
			Description:    strings.TrimSpace(e.Description),
			Price:          price,
		})
	}

	for i, p := range req.Passengers {
		first, last := strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName)
		if first == "" || last == "" {
			return domain.Tour{}, validationf("passenger %d: first and last name are required", i+1)
		}
		var birth *time.Time
		if p.BirthDate != nil {
			d := domain.TruncateToDate(*p.BirthDate)
			birth = &d
		}
		tour.Passengers = append(tour.Passengers, domain.Passenger{
			PassengerID:    uuid.NewString(),
			FirstName:      first,
			LastName:       last,
			BirthDate:      birth,
			DocumentNumber: trimmed(p.DocumentNumber),
			IsPrimary:      p.IsPrimary,
		})
	}

	attachTour(&tour)
	return tour, nil
}

// attachTour points every child at the tour.
func attachTour(t *domain.Tour) {
	for i := range t.FlightSegments {
		t.FlightSegments[i].TourID = t.TourID
	}
	for i := range t.HotelStays {
		t.HotelStays[i].TourID = t.TourID
	}
	for i := range t.ExtraServices {
		t.ExtraServices[i].TourID = t.TourID
	}
	for i := range t.Passengers {
		t.Passengers[i].TourID = t.TourID
	}
}

// buildPrice validates a submitted price. A submitted rate is kept as the snapshot; a
// missing one is resolved now at the line's effective date, which defaults to fallbackDate.
func (s *orderService) buildPrice(ctx context.Context, req dto.PriceRequest, fallbackDate time.Time) (domain.PriceLine, error) {
	currency, ok := domain.ParseCurrency(req.Currency)
	if !ok {
		return domain.PriceLine{}, validationf("unsupported currency %q", req.Currency)
	}
	if req.Amount.IsNegative() {
		return domain.PriceLine{}, validationf("amount must not be negative")
	}
	effective := fallbackDate
	if req.EffectiveDate != nil {
		effective = *req.EffectiveDate
	}

	rate := req.RateToBase
	if rate != nil && !rate.IsPositive() {
		return domain.PriceLine{}, validationf("rate to %s must be positive", domain.BaseCurrency)
	}
	if rate == nil && currency != domain.BaseCurrency {
		resolved, err := s.rates.ResolveRate(ctx, currency, domain.BaseCurrency, effective)
		if err != nil {
			return domain.PriceLine{}, err
		}
		rate = &resolved
	}
	return domain.NewPriceLine(req.Amount, currency, rate, effective), nil
}

func (s *orderService) buildPayment(ctx context.Context, req dto.PaymentRequest, actor domain.Actor, now time.Time) (domain.Payment, error) {
	if req.PaidDate.IsZero() {
		return domain.Payment{}, validationf("paid date is required")
	}
	price, err := s.buildPrice(ctx, req.Price, req.PaidDate)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		PaymentID: uuid.NewString(),
		Price:     price,
		BankName:  trimmed(req.BankName),
		PaidDate:  domain.TruncateToDate(req.PaidDate),
		Reference: trimmed(req.Reference),
		CreatedAt: now,
		CreatedBy: actor.UserID,
	}, nil
}

func buildBankRequisites(req *dto.BankRequisitesRequest) *domain.BankRequisites {
	if req == nil || strings.TrimSpace(req.BankName) == "" {
		return nil
	}
	return &domain.BankRequisites{
		BankName:              strings.TrimSpace(req.BankName),
		AccountHolderFullName: trimmed(req.AccountHolderFullName),
		IBAN:                  trimmed(req.IBAN),
		AccountNumber:         trimmed(req.AccountNumber),
		SWIFT:                 trimmed(req.SWIFT),
		Comment:               trimmed(req.Comment),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// paymentsFor stamps payments with the owning order.
func paymentsFor(orderID string, payments []domain.Payment) []domain.Payment {
	out := make([]domain.Payment, len(payments))
	for i, p := range payments {
		p.OrderID = orderID
		out[i] = p
	}
	return out
}

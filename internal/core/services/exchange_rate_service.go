package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/policy"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateService resolves and manages exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// appliedRate is the stored record chosen for a conversion. record is nil for same-currency pairs.
type appliedRate struct {
	record   *domain.ExchangeRate
	inverted bool
}

// lookup finds the newest from→to record effective on or before date and falls back to
// the newest to→from record.
func (s *exchangeRateService) lookup(ctx context.Context, from, to domain.Currency, date time.Time) (appliedRate, error) {
	if from == to {
		return appliedRate{}, nil
	}
	day := domain.TruncateToDate(date)

	direct, err := s.rateRepo.FindLatestExchangeRate(ctx, from, to, day)
	if err == nil {
		return appliedRate{record: direct}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return appliedRate{}, fmt.Errorf("failed to look up %s/%s rate: %w", from, to, err)
	}

	inverse, err := s.rateRepo.FindLatestExchangeRate(ctx, to, from, day)
	if err == nil {
		if !inverse.Rate.IsPositive() {
			return appliedRate{}, fmt.Errorf("%w: stored %s/%s rate %s is not positive", apperrors.ErrRateResolution, to, from, inverse.Rate)
		}
		return appliedRate{record: inverse, inverted: true}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return appliedRate{}, fmt.Errorf("failed to look up %s/%s rate: %w", to, from, err)
	}

	return appliedRate{}, fmt.Errorf("%w: no rate found for %s to %s on %s",
		apperrors.ErrRateResolution, from, to, day.Format(time.DateOnly))
}

func (a appliedRate) multiplier() decimal.Decimal {
	one := decimal.NewFromInt(1)
	switch {
	case a.record == nil:
		return one
	case a.inverted:
		return one.Div(a.record.Rate)
	default:
		return a.record.Rate
	}
}

// ResolveRate returns the multiplier converting 1 unit of from into to on date.
func (s *exchangeRateService) ResolveRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error) {
	applied, err := s.lookup(ctx, from, to, date)
	if err != nil {
		return decimal.Zero, err
	}
	return applied.multiplier(), nil
}

// Convert expresses amount of from in to. An inverse record divides instead of
// multiplying by a rounded reciprocal.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, date time.Time) (decimal.Decimal, error) {
	applied, err := s.lookup(ctx, from, to, date)
	if err != nil {
		return decimal.Zero, err
	}
	switch {
	case applied.record == nil:
		return amount, nil
	case applied.inverted:
		return amount.Div(applied.record.Rate), nil
	default:
		return amount.Mul(applied.record.Rate), nil
	}
}

// GetEffectiveRate reports the rate applied to a pair on date and the record it came from.
func (s *exchangeRateService) GetEffectiveRate(ctx context.Context, actor domain.Actor, from, to domain.Currency, date time.Time) (*domain.EffectiveRate, error) {
	if err := policy.Authorize(actor, policy.OpViewExchangeRates, policy.Target{}); err != nil {
		return nil, err
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency pair %s/%s", apperrors.ErrValidation, from, to)
	}

	applied, err := s.lookup(ctx, from, to, date)
	if err != nil {
		return nil, err
	}
	day := domain.TruncateToDate(date)
	result := &domain.EffectiveRate{
		FromCurrency:  from,
		ToCurrency:    to,
		Rate:          applied.multiplier(),
		RequestedDate: day,
		RecordDate:    day,
		Inverted:      applied.inverted,
	}
	if applied.record != nil {
		result.RecordDate = applied.record.DateEffective
	}
	return result, nil
}

// GetExchangeRateByID retrieves a stored rate record.
func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, actor domain.Actor, rateID string) (*domain.ExchangeRate, error) {
	if err := policy.Authorize(actor, policy.OpViewExchangeRates, policy.Target{}); err != nil {
		return nil, err
	}
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		s.LogError(ctx, err, "Failed to get exchange rate", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates returns stored rates, newest first.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context, actor domain.Actor, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	if err := policy.Authorize(actor, policy.OpViewExchangeRates, policy.Target{}); err != nil {
		return nil, err
	}

	filter := domain.ExchangeRateFilter{
		AsOf:   params.AsOf,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.FromCurrency != nil {
		c, ok := domain.ParseCurrency(*params.FromCurrency)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *params.FromCurrency)
		}
		filter.FromCurrency = &c
	}
	if params.ToCurrency != nil {
		c, ok := domain.ParseCurrency(*params.ToCurrency)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *params.ToCurrency)
		}
		filter.ToCurrency = &c
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// CreateExchangeRate stores a rate. A record for the same pair and date has its value replaced.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, actor domain.Actor, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if err := policy.Authorize(actor, policy.OpManageExchangeRates, policy.Target{}); err != nil {
		return nil, err
	}

	from, okFrom := domain.ParseCurrency(req.FromCurrency)
	to, okTo := domain.ParseCurrency(req.ToCurrency)
	if !okFrom || !okTo {
		return nil, fmt.Errorf("%w: unsupported currency pair %s/%s", apperrors.ErrValidation, req.FromCurrency, req.ToCurrency)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		FromCurrency:   from,
		ToCurrency:     to,
		Rate:           req.Rate,
		DateEffective:  domain.TruncateToDate(req.DateEffective),
		AuditFields:    domain.NewAuditFields(actor.UserID, s.Now()),
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate stored",
		slog.String("rate_id", saved.ExchangeRateID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("rate", saved.Rate.String()))
	return saved, nil
}

// DeleteExchangeRate removes a stored rate record.
func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, actor domain.Actor, rateID string) error {
	if err := policy.Authorize(actor, policy.OpManageExchangeRates, policy.Target{}); err != nil {
		return err
	}
	if err := s.rateRepo.DeleteExchangeRate(ctx, rateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("exchange rate not found")
		}
		s.LogError(ctx, err, "Failed to delete exchange rate", slog.String("rate_id", rateID))
		return fmt.Errorf("failed to delete exchange rate: %w", err)
	}
	return nil
}

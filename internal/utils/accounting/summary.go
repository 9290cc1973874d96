package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateLookup resolves the rate converting 1 unit of from into to on date.
type RateLookup interface {
	ResolveRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error)
}

// LineInBase returns the base-currency value of a price line. Lines that carry a snapshot
// rate use it; the rest are resolved through lookup at the line's effective date.
func LineInBase(ctx context.Context, line domain.PriceLine, lookup RateLookup) (decimal.Decimal, error) {
	if v, ok := line.PriceInBase(); ok {
		return v, nil
	}
	if lookup == nil {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s on %s", apperrors.ErrRateResolution, line.Currency, line.EffectiveDate.Format(time.DateOnly))
	}
	rate, err := lookup.ResolveRate(ctx, line.Currency, domain.BaseCurrency, line.EffectiveDate)
	if err != nil {
		return decimal.Zero, err
	}
	return line.Amount.Mul(rate), nil
}

// SumInBase adds up the base-currency value of lines.
func SumInBase(ctx context.Context, lines []domain.PriceLine, lookup RateLookup) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		v, err := LineInBase(ctx, line, lookup)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// DerivePaymentStatus classifies how much of sellPrice has been paid.
func DerivePaymentStatus(totalPaid, sellPrice decimal.Decimal) domain.PaymentStatus {
	switch {
	case totalPaid.LessThanOrEqual(decimal.Zero):
		return domain.PaymentStatusNotPaid
	case totalPaid.GreaterThanOrEqual(sellPrice):
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusPartiallyPaid
	}
}

// Summarize derives the financial figures of an order. It reads only the order and the
// rates returned by lookup; nothing is cached.
func Summarize(ctx context.Context, order domain.Order, lookup RateLookup) (domain.FinancialSummary, error) {
	var expenseLines []domain.PriceLine
	if order.Tour != nil {
		expenseLines = order.Tour.ExpenseLines()
	}

	expense, err := SumInBase(ctx, expenseLines, lookup)
	if err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("failed to total expenses of order %s: %w", order.OrderID, err)
	}
	paid, err := SumInBase(ctx, order.PaymentLines(), lookup)
	if err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("failed to total payments of order %s: %w", order.OrderID, err)
	}

	sell := order.SellPriceInBase
	return domain.FinancialSummary{
		OrderID:                 order.OrderID,
		Currency:                domain.BaseCurrency,
		SellPriceInBase:         sell,
		TotalExpenseInBase:      expense,
		TotalPaidInBase:         paid,
		ProfitInBase:            sell.Sub(expense),
		CustomerRemainingInBase: sell.Sub(paid),
		CashFlowInBase:          paid.Sub(expense),
		PaymentStatus:           DerivePaymentStatus(paid, sell),
	}, nil
}

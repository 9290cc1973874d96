package domain

import "github.com/shopspring/decimal"

// PaymentStatus describes how much of the sell price the customer has paid.
type PaymentStatus string

const (
	PaymentStatusNotPaid       PaymentStatus = "NOT_PAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

// FinancialSummary is a point-in-time derivation of an order's figures in the base currency.
type FinancialSummary struct {
	OrderID                 string          `json:"orderID"`
	Currency                Currency        `json:"currency"`
	SellPriceInBase         decimal.Decimal `json:"sellPriceInBase"`
	TotalExpenseInBase      decimal.Decimal `json:"totalExpenseInBase"`
	TotalPaidInBase         decimal.Decimal `json:"totalPaidInBase"`
	ProfitInBase            decimal.Decimal `json:"profitInBase"`
	CustomerRemainingInBase decimal.Decimal `json:"customerRemainingInBase"`
	CashFlowInBase          decimal.Decimal `json:"cashFlowInBase"`
	PaymentStatus           PaymentStatus   `json:"paymentStatus"`
}

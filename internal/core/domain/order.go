package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "OPEN"
	OrderStatusClosed OrderStatus = "CLOSED"
)

// ParseOrderStatus accepts the status case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusOpen:
		return OrderStatusOpen, true
	case OrderStatusClosed:
		return OrderStatusClosed, true
	default:
		return "", false
	}
}

// Payment is an installment received from the customer.
type Payment struct {
	PaymentID string    `json:"paymentID"`
	OrderID   string    `json:"orderID"`
	Price     PriceLine `json:"price"`
	BankName  *string   `json:"bankName,omitempty"`
	PaidDate  time.Time `json:"paidDate"`
	Reference *string   `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// BankRequisites are the customer's bank details used for refunds and invoices.
type BankRequisites struct {
	BankName              string  `json:"bankName"`
	AccountHolderFullName *string `json:"accountHolderFullName,omitempty"`
	IBAN                  *string `json:"iban,omitempty"`
	AccountNumber         *string `json:"accountNumber,omitempty"`
	SWIFT                 *string `json:"swift,omitempty"`
	Comment               *string `json:"comment,omitempty"`
}

// AccountingComment is the single free-text note an accountant keeps on an order.
type AccountingComment struct {
	Text           string    `json:"text"`
	UpdatedAt      time.Time `json:"updatedAt"`
	UpdatedByID    string    `json:"updatedByID"`
	UpdatedByEmail string    `json:"updatedByEmail"`
}

// Order is the root aggregate. It owns its Tour and Payments and references a Party.
type Order struct {
	OrderID         string             `json:"orderID"`
	OrderNumber     string             `json:"orderNumber"`
	Status          OrderStatus        `json:"status"`
	PartyID         string             `json:"partyID"`
	Party           *Party             `json:"party,omitempty"`
	TourID          string             `json:"tourID"`
	Tour            *Tour              `json:"tour,omitempty"`
	Source          string             `json:"source"`
	SellPriceInBase decimal.Decimal    `json:"sellPriceInBase"`
	CreatedByID     string             `json:"createdByID"`
	CreatedByEmail  string             `json:"createdByEmail"`
	Comment         *AccountingComment `json:"accountingComment,omitempty"`
	BankRequisites  *BankRequisites    `json:"bankRequisites,omitempty"`
	Payments        []Payment          `json:"payments"`
	Version         int64              `json:"version"`
	AuditFields
}

// IsOwnedBy reports whether userID created the order.
func (o Order) IsOwnedBy(userID string) bool {
	return userID != "" && o.CreatedByID == userID
}

// IsOpen reports whether the order can still be edited by its creator.
func (o Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// PaymentLines returns the price line of every payment.
func (o Order) PaymentLines() []PriceLine {
	lines := make([]PriceLine, len(o.Payments))
	for i, p := range o.Payments {
		lines[i] = p.Price
	}
	return lines
}

// FindPayment returns the index of the payment with the given id, or -1.
func (o Order) FindPayment(paymentID string) int {
	for i, p := range o.Payments {
		if p.PaymentID == paymentID {
			return i
		}
	}
	return -1
}

// OrderFilter narrows order listings. A nil field is not filtered on.
type OrderFilter struct {
	Status            *OrderStatus
	PartyID           *string
	CreatedByID       *string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	OrderNumberPrefix *string
	Limit             int

	// Keyset cursor: orders strictly older than (CursorCreatedAt, CursorOrderID).
	CursorCreatedAt *time.Time
	CursorOrderID   *string
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table.
type Order struct {
	OrderID         string          `db:"order_id"`
	OrderNumber     string          `db:"order_number"`
	Status          string          `db:"status"`
	PartyID         string          `db:"party_id"`
	TourID          string          `db:"tour_id"`
	Source          string          `db:"source"`
	SellPriceInBase decimal.Decimal `db:"sell_price_in_base"`
	CreatedByID     string          `db:"created_by_id"`
	CreatedByEmail  string          `db:"created_by_email"`

	AccountingComment               *string    `db:"accounting_comment"`
	AccountingCommentUpdatedAt      *time.Time `db:"accounting_comment_updated_at"`
	AccountingCommentUpdatedByID    *string    `db:"accounting_comment_updated_by_id"`
	AccountingCommentUpdatedByEmail *string    `db:"accounting_comment_updated_by_email"`

	BankName              *string `db:"bank_name"`
	AccountHolderFullName *string `db:"account_holder_full_name"`
	IBAN                  *string `db:"iban"`
	AccountNumber         *string `db:"account_number"`
	SWIFT                 *string `db:"swift"`
	BankComment           *string `db:"bank_comment"`

	Version int64 `db:"version"`
	AuditFields
}

// Tour is a row of the tours table.
type Tour struct {
	TourID         string    `db:"tour_id"`
	Name           string    `db:"name"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	PassengerCount int       `db:"passenger_count"`
	SupplierID     string    `db:"supplier_id"`
}

type FlightSegment struct {
	FlightSegmentID string    `db:"flight_segment_id"`
	TourID          string    `db:"tour_id"`
	Position        int       `db:"position"`
	FromLocation    string    `db:"from_location"`
	ToLocation      string    `db:"to_location"`
	FlightDate      time.Time `db:"flight_date"`
	PNR             *string   `db:"pnr"`
	PriceColumns
}

type HotelStay struct {
	HotelStayID        string    `db:"hotel_stay_id"`
	TourID             string    `db:"tour_id"`
	Position           int       `db:"position"`
	HotelName          string    `db:"hotel_name"`
	CheckIn            time.Time `db:"check_in"`
	CheckOut           time.Time `db:"check_out"`
	ConfirmationNumber *string   `db:"confirmation_number"`
	PriceColumns
}

type ExtraService struct {
	ExtraServiceID string `db:"extra_service_id"`
	TourID         string `db:"tour_id"`
	Position       int    `db:"position"`
	Description    string `db:"description"`
	PriceColumns
}

type Passenger struct {
	PassengerID    string     `db:"passenger_id"`
	TourID         string     `db:"tour_id"`
	Position       int        `db:"position"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	BirthDate      *time.Time `db:"birth_date"`
	DocumentNumber *string    `db:"document_number"`
	IsPrimary      bool       `db:"is_primary"`
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID string    `db:"payment_id"`
	OrderID   string    `db:"order_id"`
	BankName  *string   `db:"bank_name"`
	PaidDate  time.Time `db:"paid_date"`
	Reference *string   `db:"reference"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
	PriceColumns
}

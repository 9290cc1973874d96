package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRequest is a priced amount as submitted by the client. RateToBase is the
// snapshot rate agreed when the line was booked; leave it empty to resolve it from
// stored exchange rates at EffectiveDate.
type PriceRequest struct {
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"100.00"`
	Currency      string           `json:"currency" binding:"required,currency" example:"USD"`
	RateToBase    *decimal.Decimal `json:"rateToBase,omitempty" swaggertype:"string" example:"2.70"`
	EffectiveDate *time.Time       `json:"effectiveDate,omitempty"`
}

// PersonRequest carries the PERSON payload of a party.
type PersonRequest struct {
	FirstName string     `json:"firstName" binding:"required,max=100"`
	LastName  string     `json:"lastName" binding:"required,max=100"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

// CompanyRequest carries the COMPANY payload of a party.
type CompanyRequest struct {
	CompanyName        string  `json:"companyName" binding:"required,max=200"`
	RegistrationNumber *string `json:"registrationNumber,omitempty" binding:"omitempty,max=50"`
	ContactPerson      *string `json:"contactPerson,omitempty" binding:"omitempty,max=200"`
}

// PartyRequest is the customer of an order. Exactly one of Person or Company must match Kind.
type PartyRequest struct {
	Kind    string          `json:"kind" binding:"required" example:"PERSON"`
	Email   string          `json:"email" binding:"required,email"`
	Phone   *string         `json:"phone,omitempty" binding:"omitempty,max=50"`
	Person  *PersonRequest  `json:"person,omitempty"`
	Company *CompanyRequest `json:"company,omitempty"`
}

// SupplierRequest identifies the tour supplier by name and contact email.
type SupplierRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" binding:"omitempty,max=50"`
}

type FlightSegmentRequest struct {
	From       string       `json:"from" binding:"required,max=100"`
	To         string       `json:"to" binding:"required,max=100"`
	FlightDate time.Time    `json:"flightDate" binding:"required"`
	PNR        *string      `json:"pnr,omitempty" binding:"omitempty,max=20"`
	Price      PriceRequest `json:"price"`
}

type HotelStayRequest struct {
	HotelName          string       `json:"hotelName" binding:"required,max=200"`
	CheckIn            time.Time    `json:"checkIn" binding:"required"`
	CheckOut           time.Time    `json:"checkOut" binding:"required"`
	ConfirmationNumber *string      `json:"confirmationNumber,omitempty" binding:"omitempty,max=50"`
	Price              PriceRequest `json:"price"`
}

type ExtraServiceRequest struct {
	Description string       `json:"description" binding:"required,max=500"`
	Price       PriceRequest `json:"price"`
}

type PassengerRequest struct {
	FirstName      string     `json:"firstName" binding:"required,max=100"`
	LastName       string     `json:"lastName" binding:"required,max=100"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	DocumentNumber *string    `json:"documentNumber,omitempty" binding:"omitempty,max=50"`
	IsPrimary      bool       `json:"isPrimary"`
}

// TourRequest is the complete desired state of the tour.
type TourRequest struct {
	Name           string                 `json:"name" binding:"required,max=200"`
	StartDate      time.Time              `json:"startDate" binding:"required"`
	EndDate        time.Time              `json:"endDate" binding:"required"`
	PassengerCount int                    `json:"passengerCount" binding:"gte=0"`
	Supplier       SupplierRequest        `json:"supplier"`
	FlightSegments []FlightSegmentRequest `json:"flightSegments" binding:"dive"`
	HotelStays     []HotelStayRequest     `json:"hotelStays" binding:"dive"`
	ExtraServices  []ExtraServiceRequest  `json:"extraServices" binding:"dive"`
	Passengers     []PassengerRequest     `json:"passengers" binding:"dive"`
}

// PaymentRequest records a customer installment.
type PaymentRequest struct {
	Price     PriceRequest `json:"price"`
	BankName  *string      `json:"bankName,omitempty" binding:"omitempty,max=200"`
	PaidDate  time.Time    `json:"paidDate" binding:"required"`
	Reference *string      `json:"reference,omitempty" binding:"omitempty,max=200"`
}

type BankRequisitesRequest struct {
	BankName              string  `json:"bankName" binding:"required,max=200"`
	AccountHolderFullName *string `json:"accountHolderFullName,omitempty" binding:"omitempty,max=200"`
	IBAN                  *string `json:"iban,omitempty" binding:"omitempty,max=34"`
	AccountNumber         *string `json:"accountNumber,omitempty" binding:"omitempty,max=50"`
	SWIFT                 *string `json:"swift,omitempty" binding:"omitempty,max=11"`
	Comment               *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

// OrderRequest is the full payload used by both create and edit.
type OrderRequest struct {
	Party           PartyRequest           `json:"party"`
	Tour            TourRequest            `json:"tour"`
	Source          string                 `json:"source" binding:"required,max=100" example:"instagram"`
	SellPriceInBase decimal.Decimal        `json:"sellPriceInBase" swaggertype:"string" example:"1000.00"`
	Payments        []PaymentRequest       `json:"payments" binding:"dive"`
	BankRequisites  *BankRequisitesRequest `json:"bankRequisites,omitempty"`
}

// EditOrderRequest replaces the whole order. ExpectedVersion, when set, must equal the
// stored version or the edit is rejected with a conflict.
type EditOrderRequest struct {
	OrderRequest
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// ChangeStatusRequest moves an order between OPEN and CLOSED.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED"`
}

// UpdateAccountingCommentRequest replaces the accounting comment of an order.
type UpdateAccountingCommentRequest struct {
	Comment string `json:"comment" binding:"max=4000"`
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	Status            *string    `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	PartyID           *string    `form:"partyID" binding:"omitempty,uuid"`
	CreatedByID       *string    `form:"createdByID" binding:"omitempty,uuid"`
	CreatedFrom       *time.Time `form:"createdFrom" time_format:"2006-01-02" time_utc:"1"`
	CreatedTo         *time.Time `form:"createdTo" time_format:"2006-01-02" time_utc:"1"`
	OrderNumberPrefix *string    `form:"orderNumber"`
	Limit             int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken         *string    `form:"nextToken"`
}

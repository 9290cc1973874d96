package dto

import (
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type PriceLineResponse struct {
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string"`
	Currency      string           `json:"currency"`
	RateToBase    *decimal.Decimal `json:"rateToBase,omitempty" swaggertype:"string"`
	PriceInBase   *decimal.Decimal `json:"priceInBase,omitempty" swaggertype:"string"`
	EffectiveDate time.Time        `json:"effectiveDate"`
}

type PersonResponse struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

type CompanyResponse struct {
	CompanyName        string  `json:"companyName"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	ContactPerson      *string `json:"contactPerson,omitempty"`
}

type PartyResponse struct {
	PartyID     string           `json:"partyID"`
	Kind        string           `json:"kind"`
	DisplayName string           `json:"displayName"`
	Email       string           `json:"email"`
	Phone       *string          `json:"phone,omitempty"`
	Person      *PersonResponse  `json:"person,omitempty"`
	Company     *CompanyResponse `json:"company,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type SupplierResponse struct {
	SupplierID   string    `json:"supplierID"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type FlightSegmentResponse struct {
	FlightSegmentID string            `json:"flightSegmentID"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	FlightDate      time.Time         `json:"flightDate"`
	PNR             *string           `json:"pnr,omitempty"`
	Price           PriceLineResponse `json:"price"`
}

type HotelStayResponse struct {
	HotelStayID        string            `json:"hotelStayID"`
	HotelName          string            `json:"hotelName"`
	CheckIn            time.Time         `json:"checkIn"`
	CheckOut           time.Time         `json:"checkOut"`
	ConfirmationNumber *string           `json:"confirmationNumber,omitempty"`
	Price              PriceLineResponse `json:"price"`
}

type ExtraServiceResponse struct {
	ExtraServiceID string            `json:"extraServiceID"`
	Description    string            `json:"description"`
	Price          PriceLineResponse `json:"price"`
}

type PassengerResponse struct {
	PassengerID    string     `json:"passengerID"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	DocumentNumber *string    `json:"documentNumber,omitempty"`
	IsPrimary      bool       `json:"isPrimary"`
}

type TourResponse struct {
	TourID         string                  `json:"tourID"`
	Name           string                  `json:"name"`
	StartDate      time.Time               `json:"startDate"`
	EndDate        time.Time               `json:"endDate"`
	PassengerCount int                     `json:"passengerCount"`
	Supplier       *SupplierResponse       `json:"supplier,omitempty"`
	FlightSegments []FlightSegmentResponse `json:"flightSegments"`
	HotelStays     []HotelStayResponse     `json:"hotelStays"`
	ExtraServices  []ExtraServiceResponse  `json:"extraServices"`
	Passengers     []PassengerResponse     `json:"passengers"`
}

type PaymentResponse struct {
	PaymentID string            `json:"paymentID"`
	Price     PriceLineResponse `json:"price"`
	BankName  *string           `json:"bankName,omitempty"`
	PaidDate  time.Time         `json:"paidDate"`
	Reference *string           `json:"reference,omitempty"`
}

type AccountingCommentResponse struct {
	Text           string    `json:"text"`
	UpdatedAt      time.Time `json:"updatedAt"`
	UpdatedByID    string    `json:"updatedByID"`
	UpdatedByEmail string    `json:"updatedByEmail"`
}

type BankRequisitesResponse struct {
	BankName              string  `json:"bankName"`
	AccountHolderFullName *string `json:"accountHolderFullName,omitempty"`
	IBAN                  *string `json:"iban,omitempty"`
	AccountNumber         *string `json:"accountNumber,omitempty"`
	SWIFT                 *string `json:"swift,omitempty"`
	Comment               *string `json:"comment,omitempty"`
}

// OrderResponse is the full order graph.
type OrderResponse struct {
	OrderID           string                     `json:"orderID"`
	OrderNumber       string                     `json:"orderNumber"`
	Status            string                     `json:"status"`
	Source            string                     `json:"source"`
	SellPriceInBase   decimal.Decimal            `json:"sellPriceInBase" swaggertype:"string"`
	Party             *PartyResponse             `json:"party,omitempty"`
	Tour              *TourResponse              `json:"tour,omitempty"`
	Payments          []PaymentResponse          `json:"payments"`
	AccountingComment *AccountingCommentResponse `json:"accountingComment,omitempty"`
	BankRequisites    *BankRequisitesResponse    `json:"bankRequisites,omitempty"`
	CreatedByID       string                     `json:"createdByID"`
	CreatedByEmail    string                     `json:"createdByEmail"`
	Version           int64                      `json:"version"`
	CreatedAt         time.Time                  `json:"createdAt"`
	LastUpdatedAt     time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy     string                     `json:"lastUpdatedBy"`
}

// OrderListItemResponse is the row shape used in order listings.
type OrderListItemResponse struct {
	OrderID         string          `json:"orderID"`
	OrderNumber     string          `json:"orderNumber"`
	Status          string          `json:"status"`
	PartyID         string          `json:"partyID"`
	PartyName       string          `json:"partyName"`
	Source          string          `json:"source"`
	SellPriceInBase decimal.Decimal `json:"sellPriceInBase" swaggertype:"string"`
	CreatedByEmail  string          `json:"createdByEmail"`
	CreatedAt       time.Time       `json:"createdAt"`
	Version         int64           `json:"version"`
}

// ListOrdersResponse wraps a page of orders.
type ListOrdersResponse struct {
	Orders    []OrderListItemResponse `json:"orders"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// FinancialSummaryResponse reports the derived figures of one order in the base currency.
type FinancialSummaryResponse struct {
	OrderID                 string          `json:"orderID"`
	Currency                string          `json:"currency"`
	SellPriceInBase         decimal.Decimal `json:"sellPriceInBase" swaggertype:"string"`
	TotalExpenseInBase      decimal.Decimal `json:"totalExpenseInBase" swaggertype:"string"`
	TotalPaidInBase         decimal.Decimal `json:"totalPaidInBase" swaggertype:"string"`
	ProfitInBase            decimal.Decimal `json:"profitInBase" swaggertype:"string"`
	CustomerRemainingInBase decimal.Decimal `json:"customerRemainingInBase" swaggertype:"string"`
	CashFlowInBase          decimal.Decimal `json:"cashFlowInBase" swaggertype:"string"`
	PaymentStatus           string          `json:"paymentStatus"`
}

func ToPriceLineResponse(p domain.PriceLine) PriceLineResponse {
	resp := PriceLineResponse{
		Amount:        p.Amount,
		Currency:      string(p.Currency),
		RateToBase:    p.RateToBase,
		EffectiveDate: p.EffectiveDate,
	}
	if inBase, ok := p.PriceInBase(); ok {
		resp.PriceInBase = &inBase
	}
	return resp
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	resp := PartyResponse{
		PartyID:     p.PartyID,
		Kind:        string(p.Kind),
		DisplayName: p.DisplayName(),
		Email:       p.Email,
		Phone:       p.Phone,
		CreatedAt:   p.CreatedAt,
	}
	if p.Person != nil {
		resp.Person = &PersonResponse{
			FirstName: p.Person.FirstName,
			LastName:  p.Person.LastName,
			BirthDate: p.Person.BirthDate,
		}
	}
	if p.Company != nil {
		resp.Company = &CompanyResponse{
			CompanyName:        p.Company.CompanyName,
			RegistrationNumber: p.Company.RegistrationNumber,
			ContactPerson:      p.Company.ContactPerson,
		}
	}
	return resp
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.SupplierID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		CreatedAt:    s.CreatedAt,
	}
}

// ToTourResponse converts a domain.Tour and its children to TourResponse DTO
func ToTourResponse(t *domain.Tour) TourResponse {
	resp := TourResponse{
		TourID:         t.TourID,
		Name:           t.Name,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		PassengerCount: t.PassengerCount,
		FlightSegments: make([]FlightSegmentResponse, len(t.FlightSegments)),
		HotelStays:     make([]HotelStayResponse, len(t.HotelStays)),
		ExtraServices:  make([]ExtraServiceResponse, len(t.ExtraServices)),
		Passengers:     make([]PassengerResponse, len(t.Passengers)),
	}
	if t.Supplier != nil {
		s := ToSupplierResponse(t.Supplier)
		resp.Supplier = &s
	}
	for i, f := range t.FlightSegments {
		resp.FlightSegments[i] = FlightSegmentResponse{
			FlightSegmentID: f.FlightSegmentID,
			From:            f.From,
			To:              f.To,
			FlightDate:      f.FlightDate,
			PNR:             f.PNR,
			Price:           ToPriceLineResponse(f.Price),
		}
	}
	for i, h := range t.HotelStays {
		resp.HotelStays[i] = HotelStayResponse{
			HotelStayID:        h.HotelStayID,
			HotelName:          h.HotelName,
			CheckIn:            h.CheckIn,
			CheckOut:           h.CheckOut,
			ConfirmationNumber: h.ConfirmationNumber,
			Price:              ToPriceLineResponse(h.Price),
		}
	}
	for i, e := range t.ExtraServices {
		resp.ExtraServices[i] = ExtraServiceResponse{
			ExtraServiceID: e.ExtraServiceID,
			Description:    e.Description,
			Price:          ToPriceLineResponse(e.Price),
		}
	}
	for i, p := range t.Passengers {
		resp.Passengers[i] = PassengerResponse{
			PassengerID:    p.PassengerID,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			BirthDate:      p.BirthDate,
			DocumentNumber: p.DocumentNumber,
			IsPrimary:      p.IsPrimary,
		}
	}
	return resp
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = PaymentResponse{
			PaymentID: p.PaymentID,
			Price:     ToPriceLineResponse(p.Price),
			BankName:  p.BankName,
			PaidDate:  p.PaidDate,
			Reference: p.Reference,
		}
	}
	return responses
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:         o.OrderID,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		Source:          o.Source,
		SellPriceInBase: o.SellPriceInBase,
		Payments:        ToPaymentResponses(o.Payments),
		CreatedByID:     o.CreatedByID,
		CreatedByEmail:  o.CreatedByEmail,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		LastUpdatedAt:   o.LastUpdatedAt,
		LastUpdatedBy:   o.LastUpdatedBy,
	}
	if o.Party != nil {
		p := ToPartyResponse(o.Party)
		resp.Party = &p
	}
	if o.Tour != nil {
		t := ToTourResponse(o.Tour)
		resp.Tour = &t
	}
	if o.Comment != nil {
		resp.AccountingComment = &AccountingCommentResponse{
			Text:           o.Comment.Text,
			UpdatedAt:      o.Comment.UpdatedAt,
			UpdatedByID:    o.Comment.UpdatedByID,
			UpdatedByEmail: o.Comment.UpdatedByEmail,
		}
	}
	if o.BankRequisites != nil {
		b := BankRequisitesResponse(*o.BankRequisites)
		resp.BankRequisites = &b
	}
	return resp
}

// ToListOrdersResponse converts a page of orders to ListOrdersResponse DTO
func ToListOrdersResponse(orders []domain.Order, nextToken *string) ListOrdersResponse {
	items := make([]OrderListItemResponse, len(orders))
	for i, o := range orders {
		partyName := ""
		if o.Party != nil {
			partyName = o.Party.DisplayName()
		}
		items[i] = OrderListItemResponse{
			OrderID:         o.OrderID,
			OrderNumber:     o.OrderNumber,
			Status:          string(o.Status),
			PartyID:         o.PartyID,
			PartyName:       partyName,
			Source:          o.Source,
			SellPriceInBase: o.SellPriceInBase,
			CreatedByEmail:  o.CreatedByEmail,
			CreatedAt:       o.CreatedAt,
			Version:         o.Version,
		}
	}
	return ListOrdersResponse{Orders: items, NextToken: nextToken}
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		OrderID:                 s.OrderID,
		Currency:                string(s.Currency),
		SellPriceInBase:         s.SellPriceInBase,
		TotalExpenseInBase:      s.TotalExpenseInBase,
		TotalPaidInBase:         s.TotalPaidInBase,
		ProfitInBase:            s.ProfitInBase,
		CustomerRemainingInBase: s.CustomerRemainingInBase,
		CashFlowInBase:          s.CashFlowInBase,
		PaymentStatus:           string(s.PaymentStatus),
	}
}

package mapping

import (
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/models"
)

// ToModelOrder converts the order header to its row.
func ToModelOrder(d domain.Order) models.Order {
	m := models.Order{
		OrderID:         d.OrderID,
		OrderNumber:     d.OrderNumber,
		Status:          string(d.Status),
		PartyID:         d.PartyID,
		TourID:          d.TourID,
		Source:          d.Source,
		SellPriceInBase: d.SellPriceInBase,
		CreatedByID:     d.CreatedByID,
		CreatedByEmail:  d.CreatedByEmail,
		Version:         d.Version,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if c := d.Comment; c != nil {
		text, at, byID, byEmail := c.Text, c.UpdatedAt, c.UpdatedByID, c.UpdatedByEmail
		m.AccountingComment = &text
		m.AccountingCommentUpdatedAt = &at
		m.AccountingCommentUpdatedByID = &byID
		m.AccountingCommentUpdatedByEmail = &byEmail
	}
	if b := d.BankRequisites; b != nil {
		name := b.BankName
		m.BankName = &name
		m.AccountHolderFullName = b.AccountHolderFullName
		m.IBAN = b.IBAN
		m.AccountNumber = b.AccountNumber
		m.SWIFT = b.SWIFT
		m.BankComment = b.Comment
	}
	return m
}

// ToDomainOrder converts an order row to the header of the aggregate. Party, tour and
// payments are attached by the caller.
func ToDomainOrder(m models.Order) domain.Order {
	d := domain.Order{
		OrderID:         m.OrderID,
		OrderNumber:     m.OrderNumber,
		Status:          domain.OrderStatus(m.Status),
		PartyID:         m.PartyID,
		TourID:          m.TourID,
		Source:          m.Source,
		SellPriceInBase: m.SellPriceInBase,
		CreatedByID:     m.CreatedByID,
		CreatedByEmail:  m.CreatedByEmail,
		Version:         m.Version,
		Payments:        []domain.Payment{},
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.AccountingComment != nil {
		c := &domain.AccountingComment{
			Text:           *m.AccountingComment,
			UpdatedByID:    deref(m.AccountingCommentUpdatedByID),
			UpdatedByEmail: deref(m.AccountingCommentUpdatedByEmail),
		}
		if m.AccountingCommentUpdatedAt != nil {
			c.UpdatedAt = *m.AccountingCommentUpdatedAt
		}
		d.Comment = c
	}
	if m.BankName != nil {
		d.BankRequisites = &domain.BankRequisites{
			BankName:              *m.BankName,
			AccountHolderFullName: m.AccountHolderFullName,
			IBAN:                  m.IBAN,
			AccountNumber:         m.AccountNumber,
			SWIFT:                 m.SWIFT,
			Comment:               m.BankComment,
		}
	}
	return d
}

// ToModelTour converts the tour scalars to their row.
func ToModelTour(d domain.Tour) models.Tour {
	return models.Tour{
		TourID:         d.TourID,
		Name:           d.Name,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		PassengerCount: d.PassengerCount,
		SupplierID:     d.SupplierID,
	}
}

// ToDomainTour converts a tour row; collections start empty.
func ToDomainTour(m models.Tour) domain.Tour {
	return domain.Tour{
		TourID:         m.TourID,
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		PassengerCount: m.PassengerCount,
		SupplierID:     m.SupplierID,
		FlightSegments: []domain.FlightSegment{},
		HotelStays:     []domain.HotelStay{},
		ExtraServices:  []domain.ExtraService{},
		Passengers:     []domain.Passenger{},
	}
}

func ToModelFlightSegment(d domain.FlightSegment, position int) models.FlightSegment {
	return models.FlightSegment{
		FlightSegmentID: d.FlightSegmentID,
		TourID:          d.TourID,
		Position:        position,
		FromLocation:    d.From,
		ToLocation:      d.To,
		FlightDate:      d.FlightDate,
		PNR:             d.PNR,
		PriceColumns:    ToModelPrice(d.Price),
	}
}

func ToDomainFlightSegment(m models.FlightSegment) domain.FlightSegment {
	return domain.FlightSegment{
		FlightSegmentID: m.FlightSegmentID,
		TourID:          m.TourID,
		From:            m.FromLocation,
		To:              m.ToLocation,
		FlightDate:      m.FlightDate,
		PNR:             m.PNR,
		Price:           ToDomainPrice(m.PriceColumns),
	}
}

func ToModelHotelStay(d domain.HotelStay, position int) models.HotelStay {
	return models.HotelStay{
		HotelStayID:        d.HotelStayID,
		TourID:             d.TourID,
		Position:           position,
		HotelName:          d.HotelName,
		CheckIn:            d.CheckIn,
		CheckOut:           d.CheckOut,
		ConfirmationNumber: d.ConfirmationNumber,
		PriceColumns:       ToModelPrice(d.Price),
	}
}

func ToDomainHotelStay(m models.HotelStay) domain.HotelStay {
	return domain.HotelStay{
		HotelStayID:        m.HotelStayID,
		TourID:             m.TourID,
		HotelName:          m.HotelName,
		CheckIn:            m.CheckIn,
		CheckOut:           m.CheckOut,
		ConfirmationNumber: m.ConfirmationNumber,
		Price:              ToDomainPrice(m.PriceColumns),
	}
}

func ToModelExtraService(d domain.ExtraService, position int) models.ExtraService {
	return models.ExtraService{
		ExtraServiceID: d.ExtraServiceID,
		TourID:         d.TourID,
		Position:       position,
		Description:    d.Description,
		PriceColumns:   ToModelPrice(d.Price),
	}
}

func ToDomainExtraService(m models.ExtraService) domain.ExtraService {
	return domain.ExtraService{
		ExtraServiceID: m.ExtraServiceID,
		TourID:         m.TourID,
		Description:    m.Description,
		Price:          ToDomainPrice(m.PriceColumns),
	}
}

func ToModelPassenger(d domain.Passenger, position int) models.Passenger {
	return models.Passenger{
		PassengerID:    d.PassengerID,
		TourID:         d.TourID,
		Position:       position,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		BirthDate:      d.BirthDate,
		DocumentNumber: d.DocumentNumber,
		IsPrimary:      d.IsPrimary,
	}
}

func ToDomainPassenger(m models.Passenger) domain.Passenger {
	return domain.Passenger{
		PassengerID:    m.PassengerID,
		TourID:         m.TourID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		BirthDate:      m.BirthDate,
		DocumentNumber: m.DocumentNumber,
		IsPrimary:      m.IsPrimary,
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:    d.PaymentID,
		OrderID:      d.OrderID,
		BankName:     d.BankName,
		PaidDate:     d.PaidDate,
		Reference:    d.Reference,
		CreatedAt:    d.CreatedAt,
		CreatedBy:    d.CreatedBy,
		PriceColumns: ToModelPrice(d.Price),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		OrderID:   m.OrderID,
		Price:     ToDomainPrice(m.PriceColumns),
		BankName:  m.BankName,
		PaidDate:  m.PaidDate,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

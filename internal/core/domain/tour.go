package domain

import "time"

// Tour is owned by exactly one order. Its line items and passengers are rebuilt
// wholesale whenever the order is edited.
type Tour struct {
	TourID         string    `json:"tourID"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	PassengerCount int       `json:"passengerCount"`
	SupplierID     string    `json:"supplierID"`
	Supplier       *Supplier `json:"supplier,omitempty"`

	FlightSegments []FlightSegment `json:"flightSegments"`
	HotelStays     []HotelStay     `json:"hotelStays"`
	ExtraServices  []ExtraService  `json:"extraServices"`
	Passengers     []Passenger     `json:"passengers"`
}

// FlightSegment is an air ticket leg.
type FlightSegment struct {
	FlightSegmentID string    `json:"flightSegmentID"`
	TourID          string    `json:"tourID"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	FlightDate      time.Time `json:"flightDate"`
	PNR             *string   `json:"pnr,omitempty"`
	Price           PriceLine `json:"price"`
}

// HotelStay is a hotel booking.
type HotelStay struct {
	HotelStayID        string    `json:"hotelStayID"`
	TourID             string    `json:"tourID"`
	HotelName          string    `json:"hotelName"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	ConfirmationNumber *string   `json:"confirmationNumber,omitempty"`
	Price              PriceLine `json:"price"`
}

// ExtraService is any other purchased service (transfer, insurance, excursion).
type ExtraService struct {
	ExtraServiceID string    `json:"extraServiceID"`
	TourID         string    `json:"tourID"`
	Description    string    `json:"description"`
	Price          PriceLine `json:"price"`
}

// Passenger travels on the tour.
type Passenger struct {
	PassengerID    string     `json:"passengerID"`
	TourID         string     `json:"tourID"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	DocumentNumber *string    `json:"documentNumber,omitempty"`
	IsPrimary      bool       `json:"isPrimary"`
}

// ExpenseLines returns every priced line item of the tour.
func (t Tour) ExpenseLines() []PriceLine {
	lines := make([]PriceLine, 0, len(t.FlightSegments)+len(t.HotelStays)+len(t.ExtraServices))
	for _, f := range t.FlightSegments {
		lines = append(lines, f.Price)
	}
	for _, h := range t.HotelStays {
		lines = append(lines, h.Price)
	}
	for _, e := range t.ExtraServices {
		lines = append(lines, e.Price)
	}
	return lines
}

// ReplaceDetails copies the scalar fields of src into t, keeping t's identity.
func (t *Tour) ReplaceDetails(src Tour) {
	t.Name = src.Name
	t.StartDate = src.StartDate
	t.EndDate = src.EndDate
	t.PassengerCount = src.PassengerCount
}

// ReconcileChildren plans the rebuild of an owned collection on edit. Children carry no
// stable identity across edits, so every existing child is deleted and every desired one inserted.
func ReconcileChildren[T any](existing, desired []T) (toDelete, toInsert []T) {
	toDelete = append([]T(nil), existing...)
	toInsert = append([]T(nil), desired...)
	return toDelete, toInsert
}

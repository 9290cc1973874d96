package models

import "time"

// Party is the single-table row for both customer variants. Columns of the other
// variant stay NULL.
type Party struct {
	PartyID            string     `db:"party_id"`
	Kind               string     `db:"kind"`
	Email              string     `db:"email"`
	Phone              *string    `db:"phone"`
	FirstName          *string    `db:"first_name"`
	LastName           *string    `db:"last_name"`
	BirthDate          *time.Time `db:"birth_date"`
	CompanyName        *string    `db:"company_name"`
	RegistrationNumber *string    `db:"registration_number"`
	ContactPerson      *string    `db:"contact_person"`
	AuditFields
}

// Supplier is a row of the suppliers table.
type Supplier struct {
	SupplierID   string  `db:"supplier_id"`
	Name         string  `db:"name"`
	ContactEmail *string `db:"contact_email"`
	Phone        *string `db:"phone"`
	AuditFields
}

// Bank is a row of the banks table.
type Bank struct {
	BankID        string  `db:"bank_id"`
	Name          string  `db:"name"`
	Swift         *string `db:"swift"`
	AccountNumber *string `db:"account_number"`
	AuditFields
}

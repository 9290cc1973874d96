package mapping

import (
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/models"
)

// ToModelParty flattens the tagged variant into the single parties row.
func ToModelParty(d domain.Party) models.Party {
	m := models.Party{
		PartyID:     d.PartyID,
		Kind:        string(d.Kind),
		Email:       d.Email,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Person != nil {
		first, last := d.Person.FirstName, d.Person.LastName
		m.FirstName = &first
		m.LastName = &last
		m.BirthDate = d.Person.BirthDate
	}
	if d.Company != nil {
		name := d.Company.CompanyName
		m.CompanyName = &name
		m.RegistrationNumber = d.Company.RegistrationNumber
		m.ContactPerson = d.Company.ContactPerson
	}
	return m
}

// ToDomainParty rebuilds the variant matching the row's kind.
func ToDomainParty(m models.Party) domain.Party {
	d := domain.Party{
		PartyID:     m.PartyID,
		Kind:        domain.PartyKind(m.Kind),
		Email:       m.Email,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	switch d.Kind {
	case domain.PartyKindPerson:
		d.Person = &domain.PersonDetails{
			FirstName: deref(m.FirstName),
			LastName:  deref(m.LastName),
			BirthDate: m.BirthDate,
		}
	case domain.PartyKindCompany:
		d.Company = &domain.CompanyDetails{
			CompanyName:        deref(m.CompanyName),
			RegistrationNumber: m.RegistrationNumber,
			ContactPerson:      m.ContactPerson,
		}
	}
	return d
}

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:   d.SupplierID,
		Name:         d.Name,
		ContactEmail: d.ContactEmail,
		Phone:        d.Phone,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:   m.SupplierID,
		Name:         m.Name,
		ContactEmail: m.ContactEmail,
		Phone:        m.Phone,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:        d.BankID,
		Name:          d.Name,
		Swift:         d.Swift,
		AccountNumber: d.AccountNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:        m.BankID,
		Name:          m.Name,
		Swift:         m.Swift,
		AccountNumber: m.AccountNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

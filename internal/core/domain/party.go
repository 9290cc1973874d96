package domain

import (
	"strings"
	"time"
)

// PartyKind discriminates the Party variant.
type PartyKind string

const (
	PartyKindPerson  PartyKind = "PERSON"
	PartyKindCompany PartyKind = "COMPANY"
)

// ParsePartyKind accepts the kind case-insensitively.
func ParsePartyKind(s string) (PartyKind, bool) {
	switch PartyKind(strings.ToUpper(strings.TrimSpace(s))) {
	case PartyKindPerson:
		return PartyKindPerson, true
	case PartyKindCompany:
		return PartyKindCompany, true
	default:
		return "", false
	}
}

// PersonDetails is the payload of a PERSON party.
type PersonDetails struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

// CompanyDetails is the payload of a COMPANY party.
type CompanyDetails struct {
	CompanyName        string  `json:"companyName"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	ContactPerson      *string `json:"contactPerson,omitempty"`
}

// Party is the customer of an order. Exactly one of Person or Company is set,
// matching Kind.
type Party struct {
	PartyID string          `json:"partyID"`
	Kind    PartyKind       `json:"kind"`
	Email   string          `json:"email"`
	Phone   *string         `json:"phone,omitempty"`
	Person  *PersonDetails  `json:"person,omitempty"`
	Company *CompanyDetails `json:"company,omitempty"`
	AuditFields
}

// IsPerson reports whether the party is a PERSON.
func (p Party) IsPerson() bool { return p.Kind == PartyKindPerson && p.Person != nil }

// IsCompany reports whether the party is a COMPANY.
func (p Party) IsCompany() bool { return p.Kind == PartyKindCompany && p.Company != nil }

// DisplayName is used in listings and logs.
func (p Party) DisplayName() string {
	switch p.Kind {
	case PartyKindPerson:
		if p.Person != nil {
			return strings.TrimSpace(p.Person.FirstName + " " + p.Person.LastName)
		}
	case PartyKindCompany:
		if p.Company != nil {
			return p.Company.CompanyName
		}
	}
	return p.Email
}

// SameIdentity reports whether other denotes the same customer by natural key:
// first name, last name and birth date for persons, registration number for companies.
func (p Party) SameIdentity(other Party) bool {
	if p.Kind != other.Kind {
		return false
	}
	switch p.Kind {
	case PartyKindPerson:
		if p.Person == nil || other.Person == nil {
			return false
		}
		return p.Person.FirstName == other.Person.FirstName &&
			p.Person.LastName == other.Person.LastName &&
			sameDate(p.Person.BirthDate, other.Person.BirthDate)
	case PartyKindCompany:
		if p.Company == nil || other.Company == nil {
			return false
		}
		a, b := p.Company.RegistrationNumber, other.Company.RegistrationNumber
		return a != nil && b != nil && *a != "" && *a == *b
	}
	return false
}

// ApplyDetails copies contact and variant fields from src, keeping identity and audit data.
func (p *Party) ApplyDetails(src Party) {
	p.Email = src.Email
	p.Phone = src.Phone
	p.Person = src.Person
	p.Company = src.Company
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return TruncateToDate(*a).Equal(TruncateToDate(*b))
}

package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParty_SameIdentity(t *testing.T) {
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	birthLater := time.Date(1990, 5, 1, 18, 0, 0, 0, time.UTC)
	otherBirth := time.Date(1991, 5, 1, 0, 0, 0, 0, time.UTC)

	person := func(first, last string, b *time.Time) domain.Party {
		return domain.Party{
			Kind:   domain.PartyKindPerson,
			Person: &domain.PersonDetails{FirstName: first, LastName: last, BirthDate: b},
		}
	}
	company := func(name string, reg *string) domain.Party {
		return domain.Party{
			Kind:    domain.PartyKindCompany,
			Company: &domain.CompanyDetails{CompanyName: name, RegistrationNumber: reg},
		}
	}

	tests := []struct {
		name string
		a, b domain.Party
		want bool
	}{
		{name: "same person", a: person("Nino", "Beridze", &birth), b: person("Nino", "Beridze", &birthLater), want: true},
		{name: "both birth dates missing", a: person("Nino", "Beridze", nil), b: person("Nino", "Beridze", nil), want: true},
		{name: "one birth date missing", a: person("Nino", "Beridze", &birth), b: person("Nino", "Beridze", nil), want: false},
		{name: "different birth date", a: person("Nino", "Beridze", &birth), b: person("Nino", "Beridze", &otherBirth), want: false},
		{name: "different last name", a: person("Nino", "Beridze", nil), b: person("Nino", "Kapanadze", nil), want: false},
		{name: "same registration number", a: company("Acme", stringPtr("4051")), b: company("ACME LLC", stringPtr("4051")), want: true},
		{name: "company without registration never matches", a: company("Acme", nil), b: company("Acme", nil), want: false},
		{name: "empty registration never matches", a: company("Acme", stringPtr("")), b: company("Acme", stringPtr("")), want: false},
		{name: "different variants", a: person("Acme", "", nil), b: company("Acme", stringPtr("1")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SameIdentity(tt.b))
		})
	}
}

func TestParty_ApplyDetailsKeepsIdentity(t *testing.T) {
	existing := domain.Party{
		PartyID: "party-1",
		Kind:    domain.PartyKindPerson,
		Email:   "old@example.com",
		Person:  &domain.PersonDetails{FirstName: "Nino", LastName: "Beridze"},
	}
	existing.ApplyDetails(domain.Party{
		PartyID: "ignored",
		Kind:    domain.PartyKindPerson,
		Email:   "new@example.com",
		Phone:   stringPtr("+995555000000"),
		Person:  &domain.PersonDetails{FirstName: "Nino", LastName: "Beridze-Smith"},
	})

	assert.Equal(t, "party-1", existing.PartyID)
	assert.Equal(t, "new@example.com", existing.Email)
	assert.Equal(t, "Beridze-Smith", existing.Person.LastName)
	assert.Equal(t, "Nino Beridze-Smith", existing.DisplayName())
}

func TestSupplier_SameIdentity(t *testing.T) {
	a := domain.Supplier{Name: "Caucasus Travel", ContactEmail: stringPtr("ops@ct.ge")}
	assert.True(t, a.SameIdentity(domain.Supplier{Name: "Caucasus Travel", ContactEmail: stringPtr("ops@ct.ge")}))
	assert.False(t, a.SameIdentity(domain.Supplier{Name: "Caucasus Travel"}))
	assert.True(t, domain.Supplier{Name: "X"}.SameIdentity(domain.Supplier{Name: "X"}))
}

func TestOrder_Helpers(t *testing.T) {
	o := domain.Order{
		CreatedByID: "u1",
		Status:      domain.OrderStatusOpen,
		Payments:    []domain.Payment{{PaymentID: "p1"}, {PaymentID: "p2"}},
	}
	assert.True(t, o.IsOwnedBy("u1"))
	assert.False(t, o.IsOwnedBy(""))
	assert.True(t, o.IsOpen())
	assert.Equal(t, 1, o.FindPayment("p2"))
	assert.Equal(t, -1, o.FindPayment("missing"))
	assert.Len(t, o.PaymentLines(), 2)

	status, ok := domain.ParseOrderStatus("closed")
	assert.True(t, ok)
	assert.Equal(t, domain.OrderStatusClosed, status)
}

func stringPtr(s string) *string {
	return &s
}

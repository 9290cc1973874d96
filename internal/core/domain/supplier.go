package domain

// Supplier sells the tour to the agency. Orders reference suppliers through their tours.
type Supplier struct {
	SupplierID   string  `json:"supplierID"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	AuditFields
}

// SameIdentity matches suppliers by name and contact email.
func (s Supplier) SameIdentity(other Supplier) bool {
	if s.Name != other.Name {
		return false
	}
	if s.ContactEmail == nil || other.ContactEmail == nil {
		return s.ContactEmail == nil && other.ContactEmail == nil
	}
	return *s.ContactEmail == *other.ContactEmail
}

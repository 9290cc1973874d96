package domain

// Bank is an account the agency receives payments into. Payments name it by BankName.
type Bank struct {
	BankID        string  `json:"bankID"`
	Name          string  `json:"name"`
	Swift         *string `json:"swift,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	AuditFields
}

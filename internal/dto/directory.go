package dto

import (
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// ListDirectoryParams defines query parameters for listing parties and suppliers.
type ListDirectoryParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	out := make([]PartyResponse, len(parties))
	for i := range parties {
		out[i] = ToPartyResponse(&parties[i])
	}
	return ListPartiesResponse{Parties: out}
}

func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: out}
}

// BankRequest creates or replaces a bank. Swift and account number are optional.
type BankRequest struct {
	Name          string  `json:"name" binding:"required,max=200" example:"Bank of Georgia"`
	Swift         *string `json:"swift,omitempty" binding:"omitempty,min=8,max=11,alphanum" example:"BAGAGE22"`
	AccountNumber *string `json:"accountNumber,omitempty" binding:"omitempty,max=64" example:"GE29NB0000000101904917"`
}

type BankResponse struct {
	BankID        string    `json:"bankID"`
	Name          string    `json:"name"`
	Swift         *string   `json:"swift,omitempty"`
	AccountNumber *string   `json:"accountNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

type ListBanksResponse struct {
	Banks []BankResponse `json:"banks"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:        b.BankID,
		Name:          b.Name,
		Swift:         b.Swift,
		AccountNumber: b.AccountNumber,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

func ToListBanksResponse(banks []domain.Bank) ListBanksResponse {
	out := make([]BankResponse, len(banks))
	for i := range banks {
		out[i] = ToBankResponse(&banks[i])
	}
	return ListBanksResponse{Banks: out}
}

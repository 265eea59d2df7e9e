package dto

import (
	"time"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// CreateClientRequest alta manual de un cliente.
type CreateClientRequest struct {
	FullName         string `json:"full_name"`
	NationalID       string `json:"national_id"`
	PersonType       string `json:"person_type"` // vacío = Física
	Representative   string `json:"representative"`
	Phone            string `json:"phone"`
	TaxIDType        string `json:"tax_id_type"`
	AccountExecutive string `json:"account_executive"`
	IsTrademarked    bool   `json:"is_trademarked"`
	PaymentPending   bool   `json:"payment_pending"`
	TaxRegime        string `json:"tax_regime"`
}

// UpdateClientRequest actualización parcial (nil = sin cambio).
// ID, cédula y fecha de creación no son modificables por esta vía.
type UpdateClientRequest struct {
	FullName         *string `json:"full_name"`
	PersonType       *string `json:"person_type"`
	Representative   *string `json:"representative"`
	Phone            *string `json:"phone"`
	TaxIDType        *string `json:"tax_id_type"`
	AccountExecutive *string `json:"account_executive"`
	IsTrademarked    *bool   `json:"is_trademarked"`
	PaymentPending   *bool   `json:"payment_pending"`
	TaxRegime        *string `json:"tax_regime"`
}

// ClientResponse representación de salida de un cliente.
type ClientResponse struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	NationalID       string    `json:"national_id"`
	PersonType       string    `json:"person_type"`
	Representative   string    `json:"representative"`
	Phone            string    `json:"phone"`
	TaxIDType        string    `json:"tax_id_type"`
	AccountExecutive string    `json:"account_executive"`
	IsTrademarked    bool      `json:"is_trademarked"`
	PaymentPending   bool      `json:"payment_pending"`
	TaxRegime        string    `json:"tax_regime"`
	CreatedAt        time.Time `json:"created_at"`
}

// ClientListResponse listado paginado.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ToClientResponse convierte la entidad a su representación de salida.
func ToClientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		NationalID:       c.NationalID,
		PersonType:       c.PersonType,
		Representative:   c.Representative,
		Phone:            c.Phone,
		TaxIDType:        c.TaxIDType,
		AccountExecutive: c.AccountExecutive,
		IsTrademarked:    c.IsTrademarked,
		PaymentPending:   c.PaymentPending,
		TaxRegime:        c.TaxRegime,
		CreatedAt:        c.CreatedAt,
	}
}

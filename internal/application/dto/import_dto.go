package dto

import "github.com/shopspring/decimal"

// ImportResponse resultado de una importación, pensado para mostrarse
// directo al usuario: banderola de éxito/fracaso, contadores, bloque de
// estadísticas, lista de duplicados y lista de errores.
type ImportResponse struct {
	Succeeded        bool     `json:"succeeded"`
	Message          string   `json:"message"` // informe multi-sección legible
	TotalCount       int      `json:"total_count"`
	NewCount         int      `json:"new_count"`
	DuplicateCount   int      `json:"duplicate_count"`
	UpdatedCount     int      `json:"updated_count"`
	ValidationErrors []string `json:"validation_errors"`
	DuplicateLog     []string `json:"duplicate_log"`
}

// FieldStatDTO cobertura de un campo opcional.
type FieldStatDTO struct {
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// StatsResponse estadísticas del padrón completo.
type StatsResponse struct {
	Total int `json:"total"`

	Phone            FieldStatDTO `json:"phone"`
	Representative   FieldStatDTO `json:"representative"`
	TaxIDType        FieldStatDTO `json:"tax_id_type"`
	AccountExecutive FieldStatDTO `json:"account_executive"`
	TaxRegime        FieldStatDTO `json:"tax_regime"`

	Fisica   int `json:"fisica"`
	Juridica int `json:"juridica"`

	Trademarked    int `json:"trademarked"`
	PaymentPending int `json:"payment_pending"`

	DistinctPhones  int `json:"distinct_phones"`
	DuplicatePhones int `json:"duplicate_phones"`
}

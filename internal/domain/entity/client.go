package entity

import "time"

// Tipos de persona reconocidos por el registro.
const (
	PersonTypeFisica   = "Física"   // persona natural
	PersonTypeJuridica = "Jurídica" // persona jurídica
)

// Tipos de identificación tributaria aceptados (vacío = sin definir).
const (
	TaxIDTypeCI = "CI"
	TaxIDTypeFC = "FC"
)

// Client representa un cliente del registro. La cédula (NationalID) es la
// llave primaria de coincidencia al importar; el ID numérico lo asigna el
// sistema de forma creciente y nunca se reutiliza.
type Client struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	NationalID       string    `json:"national_id"` // cédula física o jurídica
	PersonType       string    `json:"person_type"` // Física | Jurídica
	Representative   string    `json:"representative"`
	Phone            string    `json:"phone"`       // vacío o exactamente 8 dígitos
	TaxIDType        string    `json:"tax_id_type"` // CI | FC | vacío
	AccountExecutive string    `json:"account_executive"`
	IsTrademarked    bool      `json:"is_trademarked"`
	PaymentPending   bool      `json:"payment_pending"`
	TaxRegime        string    `json:"tax_regime"`
	CreatedAt        time.Time `json:"created_at"`
}

// ValidPersonType indica si s es uno de los dos tipos de persona permitidos.
func ValidPersonType(s string) bool {
	return s == PersonTypeFisica || s == PersonTypeJuridica
}

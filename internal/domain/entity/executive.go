package entity

import "time"

// Executive representa un ejecutivo de cuenta. Los clientes guardan el nombre
// del ejecutivo como texto libre; la resolución nombre → entidad ocurre fuera
// del motor de importación.
type Executive struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"` // active, inactive
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// CreateExecutiveRequest alta de un ejecutivo de cuenta.
type CreateExecutiveRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ExecutiveResponse representación de salida de un ejecutivo.
type ExecutiveResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExecutiveListResponse listado paginado.
type ExecutiveListResponse struct {
	Items []ExecutiveResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ToExecutiveResponse convierte la entidad a su representación de salida.
func ToExecutiveResponse(e *entity.Executive) ExecutiveResponse {
	return ExecutiveResponse{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

package repository

import "github.com/tu-usuario/clientes-pro/internal/domain/entity"

// ExecutiveRepository define el puerto de persistencia para ejecutivos de
// cuenta. La resolución nombre libre → ejecutivo ocurre fuera del motor de
// importación; aquí solo vive el catálogo.
type ExecutiveRepository interface {
	Create(exec *entity.Executive) error
	GetByID(id string) (*entity.Executive, error)
	GetByName(name string) (*entity.Executive, error)
	List(limit, offset int) ([]*entity.Executive, error)
	Update(exec *entity.Executive) error
	Delete(id string) error
}

package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clientes-pro/internal/domain"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

var _ repository.ExecutiveRepository = (*ExecutiveRepo)(nil)

// ExecutiveRepo catálogo de ejecutivos en memoria, para desarrollo y tests.
type ExecutiveRepo struct {
	mu    sync.RWMutex
	execs map[string]entity.Executive // por ID
}

// NewExecutiveRepository construye el repositorio vacío.
func NewExecutiveRepository() *ExecutiveRepo {
	return &ExecutiveRepo{execs: make(map[string]entity.Executive)}
}

// Create persiste un nuevo ejecutivo. Nombre duplicado = ErrDuplicate.
func (r *ExecutiveRepo) Create(exec *entity.Executive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.execs {
		if e.Name == exec.Name {
			return domain.ErrDuplicate
		}
	}
	r.execs[exec.ID] = *exec
	return nil
}

// GetByID obtiene un ejecutivo por ID (nil si no existe).
func (r *ExecutiveRepo) GetByID(id string) (*entity.Executive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.execs[id]; ok {
		out := e
		return &out, nil
	}
	return nil, nil
}

// GetByName obtiene un ejecutivo por nombre exacto (nil si no existe).
func (r *ExecutiveRepo) GetByName(name string) (*entity.Executive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.execs {
		if e.Name == name {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

// List lista ejecutivos ordenados por nombre.
func (r *ExecutiveRepo) List(limit, offset int) ([]*entity.Executive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Executive, 0, len(r.execs))
	for _, e := range r.execs {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), nil
}

// Update reemplaza el ejecutivo con el mismo ID.
func (r *ExecutiveRepo) Update(exec *entity.Executive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.execs[exec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.execs[exec.ID] = *exec
	return nil
}

// Delete elimina un ejecutivo por ID.
func (r *ExecutiveRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.execs, id)
	return nil
}

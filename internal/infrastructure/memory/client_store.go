package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

var (
	_ repository.ClientStore    = (*ClientStore)(nil)
	_ repository.ClientTxRunner = (*ClientStore)(nil)
)

// ClientStore slot de padrón en memoria, para desarrollo sin base de datos
// y para tests. Implementa también ClientTxRunner: el mutex serializa la
// secuencia leer-fusionar-escribir igual que el advisory lock en PostgreSQL.
type ClientStore struct {
	mu      sync.Mutex // exclusión del ciclo leer-fusionar-escribir
	data    sync.RWMutex
	clients []entity.Client
}

// NewClientStore construye un slot vacío.
func NewClientStore() *ClientStore {
	return &ClientStore{}
}

// ReadAll devuelve una copia de la lista del slot.
func (s *ClientStore) ReadAll(ctx context.Context) ([]entity.Client, error) {
	s.data.RLock()
	defer s.data.RUnlock()
	out := make([]entity.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

// WriteAll reemplaza la lista del slot por una copia de clients.
func (s *ClientStore) WriteAll(ctx context.Context, clients []entity.Client) error {
	s.data.Lock()
	defer s.data.Unlock()
	s.clients = make([]entity.Client, len(clients))
	copy(s.clients, clients)
	return nil
}

// RunClients ejecuta fn con exclusión mutua sobre el slot.
func (s *ClientStore) RunClients(ctx context.Context, fn func(store repository.ClientStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

var _ repository.ClientStore = (*ClientStore)(nil)

// ClientStore implementación del slot de padrón sobre PostgreSQL: una fila
// jsonb por slot, leída y reescrita completa (usable con pool o tx).
type ClientStore struct {
	q    Querier
	slot string
}

// NewClientStore construye el adaptador para el slot dado. Pasar pool o tx (Querier).
func NewClientStore(q Querier, slot string) *ClientStore {
	return &ClientStore{q: q, slot: slot}
}

// ReadAll lee la lista completa del slot. Slot inexistente = lista vacía.
func (s *ClientStore) ReadAll(ctx context.Context) ([]entity.Client, error) {
	var payload []byte
	err := s.q.QueryRow(ctx,
		`SELECT payload FROM client_registry WHERE slot = $1`, s.slot,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer slot %q: %w", s.slot, err)
	}
	var clients []entity.Client
	if err := json.Unmarshal(payload, &clients); err != nil {
		return nil, fmt.Errorf("decodificar slot %q: %w", s.slot, err)
	}
	return clients, nil
}

// WriteAll reemplaza la lista completa del slot (upsert de la fila única).
func (s *ClientStore) WriteAll(ctx context.Context, clients []entity.Client) error {
	if clients == nil {
		clients = []entity.Client{}
	}
	payload, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("codificar slot %q: %w", s.slot, err)
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO client_registry (slot, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.slot, string(payload),
	)
	if err != nil {
		return fmt.Errorf("escribir slot %q: %w", s.slot, err)
	}
	return nil
}

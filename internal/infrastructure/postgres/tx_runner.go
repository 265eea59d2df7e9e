package postgres

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

var _ repository.ClientTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL que
// además toma un advisory lock por slot, serializando la secuencia
// leer-fusionar-escribir del padrón entre procesos concurrentes.
type TxRunner struct {
	pool *pgxpool.Pool
	slot string
}

// NewTxRunner construye el runner con el pool para el slot dado.
func NewTxRunner(pool *pgxpool.Pool, slot string) *TxRunner {
	return &TxRunner{pool: pool, slot: slot}
}

// RunClients inicia una transacción, adquiere el advisory lock del slot,
// ejecuta fn con un ClientStore atado a la tx y hace Commit o Rollback.
// El lock se libera solo al cerrar la transacción (pg_advisory_xact_lock).
func (r *TxRunner) RunClients(ctx context.Context, fn func(store repository.ClientStore) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, slotLockKey(r.slot)); err != nil {
		return fmt.Errorf("advisory lock slot %q: %w", r.slot, err)
	}

	if err := fn(NewClientStore(tx, r.slot)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// slotLockKey deriva la llave entera de advisory lock del nombre del slot.
func slotLockKey(slot string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("client_registry/" + slot))
	return int64(h.Sum64())
}

package repository

import (
	"context"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// ClientStore define el puerto de persistencia del padrón de clientes (DIP).
// Es deliberadamente estrecho: un único slot nombrado que se lee y escribe
// completo, sin actualizaciones parciales ni caché implícito. La
// reconciliación es una función pura; quien la invoca persiste el resultado.
type ClientStore interface {
	// ReadAll devuelve la lista completa de clientes del slot (vacía si el
	// slot todavía no existe).
	ReadAll(ctx context.Context) ([]entity.Client, error)

	// WriteAll reemplaza la lista completa del slot de forma atómica.
	WriteAll(ctx context.Context, clients []entity.Client) error
}

// ClientTxRunner ejecuta fn contra un ClientStore con exclusión mutua sobre
// la secuencia leer-fusionar-escribir. Dos importaciones concurrentes contra
// el mismo slot se serializan; sin esta guarda, la reescritura al por mayor
// de la segunda descartaría en silencio los ids nuevos de la primera.
type ClientTxRunner interface {
	RunClients(ctx context.Context, fn func(store ClientStore) error) error
}

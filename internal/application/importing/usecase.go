package importing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
	"github.com/tu-usuario/clientes-pro/pkg/logger"
)

// UseCase orquesta el ciclo completo de importación:
//
//	Lectura → Normalización → Validación → Reconciliación → Persistencia → Estadísticas
//
// El trabajo es síncrono de punta a punta dentro de una invocación; quien
// llama (el handler HTTP) ya corre en su propia goroutine. La secuencia
// leer-fusionar-escribir va dentro del ClientTxRunner, que la serializa
// contra otras importaciones del mismo slot.
type UseCase struct {
	tx        repository.ClientTxRunner
	workbooks WorkbookReader
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de importación.
func NewUseCase(tx repository.ClientTxRunner, workbooks WorkbookReader, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, workbooks: workbooks, log: log}
}

// ImportJSON importa un blob de texto (cascada de estrategias del
// normalizador). Un fallo de formato devuelve el resultado fallido junto con
// el FormatError para que el handler decida el código de estado.
func (uc *UseCase) ImportJSON(ctx context.Context, data []byte) (*dto.ImportResponse, error) {
	res, err := importer.NormalizeJSON(data)
	if err != nil {
		return failedOutcome(err), err
	}
	return uc.run(ctx, res)
}

// ImportWorkbook importa un libro XLSX, opcionalmente protegido con
// contraseña. La contraseña es opaca para este subsistema.
func (uc *UseCase) ImportWorkbook(ctx context.Context, r io.Reader, password string) (*dto.ImportResponse, error) {
	rows, err := uc.workbooks.ReadRows(r, password)
	if err != nil {
		return failedOutcome(err), err
	}
	return uc.run(ctx, importer.NormalizeRows(rows))
}

// run es el núcleo común: valida, reconcilia bajo exclusión, persiste la
// lista fusionada completa de forma atómica y resume el resultado.
func (uc *UseCase) run(ctx context.Context, nr *importer.NormalizeResult) (*dto.ImportResponse, error) {
	runID := uuid.New().String()
	log := uc.log.With().Str("import_run", runID).Logger()

	// Los teléfonos descartados son diagnóstico, nunca error de validación.
	for _, d := range nr.Diagnostics {
		log.Debug().Str("detalle", d).Msg("diagnóstico de normalización")
	}

	valid, validationErrs := importer.ValidateBatch(nr.Clients)

	var rec importer.ReconcileResult
	err := uc.tx.RunClients(ctx, func(store repository.ClientStore) error {
		existing, err := store.ReadAll(ctx)
		if err != nil {
			return err
		}
		rec = importer.Reconcile(existing, valid, time.Now())
		return store.WriteAll(ctx, rec.Merged)
	})
	if err != nil {
		// Fallo de almacenamiento: fatal, la fusión en memoria se descarta.
		log.Error().Err(err).Msg("importación abortada por error de almacenamiento")
		return failedOutcome(err), err
	}

	stats := importer.Summarize(rec.Merged)
	out := &dto.ImportResponse{
		Succeeded:        true,
		TotalCount:       len(nr.Clients),
		NewCount:         rec.NewCount,
		DuplicateCount:   rec.DuplicateCount,
		UpdatedCount:     rec.UpdatedCount,
		ValidationErrors: validationErrs,
		DuplicateLog:     rec.DuplicateLog,
	}
	out.Message = buildMessage(out, stats)

	log.Info().
		Str("estrategia", nr.Strategy).
		Int("total", out.TotalCount).
		Int("nuevos", out.NewCount).
		Int("duplicados", out.DuplicateCount).
		Int("actualizados", out.UpdatedCount).
		Int("invalidos", len(validationErrs)).
		Msg("importación completada")
	return out, nil
}

// failedOutcome arma el resultado de una importación fatal (formato o
// almacenamiento): nunca un error crudo hacia el usuario, siempre mensaje
// legible más contadores en cero.
func failedOutcome(err error) *dto.ImportResponse {
	var fe *importer.FormatError
	msg := "La importación falló: " + err.Error()
	if errors.As(err, &fe) {
		msg = fmt.Sprintf("La importación falló: %s.", fe.Reason)
	}
	return &dto.ImportResponse{Succeeded: false, Message: msg}
}

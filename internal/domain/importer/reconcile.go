package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// ReconcileResult es el resultado de fusionar un lote entrante contra el
// conjunto existente: la lista fusionada completa (nueva, los argumentos no
// se mutan) más los contadores y la bitácora de duplicados.
type ReconcileResult struct {
	Merged         []entity.Client
	NewCount       int
	DuplicateCount int
	UpdatedCount   int
	DuplicateLog   []string
}

// Reconcile fusiona los registros entrantes (ya validados) contra el
// conjunto existente. Función pura: el que llama decide persistir Merged.
//
// Coincidencia por registro entrante, en este orden:
//  1. cédula entrante no vacía → registro existente con la misma cédula no
//     vacía (igualdad exacta);
//  2. cédula entrante vacía → registro existente con el mismo nombre sin
//     distinguir mayúsculas.
//
// Sin coincidencia → registro nuevo con id = máximo corriente + 1 (el máximo
// se recalcula contra la lista según crece, ignorando ids que traiga la
// entrada, así no hay colisiones dentro de una misma pasada).
// Con coincidencia → duplicado: fusión campo a campo sobre el existente
// (primer-no-vacío gana, el existente gana los empates; los booleanos se
// combinan con OR lógico) y, si algo cambió, se reemplaza en su lugar y
// cuenta como actualizado.
func Reconcile(existing, incoming []entity.Client, now time.Time) ReconcileResult {
	res := ReconcileResult{Merged: make([]entity.Client, len(existing))}
	copy(res.Merged, existing)

	maxID := int64(0)
	for _, c := range res.Merged {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	for _, in := range incoming {
		idx := matchIndex(res.Merged, in)
		if idx < 0 {
			maxID++
			in.ID = maxID
			if in.CreatedAt.IsZero() {
				in.CreatedAt = now
			}
			res.Merged = append(res.Merged, in)
			res.NewCount++
			continue
		}

		res.DuplicateCount++
		res.DuplicateLog = append(res.DuplicateLog,
			fmt.Sprintf("duplicado: %s (cédula %s)", in.FullName, in.NationalID))

		merged := mergeFields(res.Merged[idx], in)
		if merged != res.Merged[idx] {
			res.Merged[idx] = merged
			res.UpdatedCount++
		}
	}
	return res
}

// matchIndex busca la posición del registro existente que coincide con el
// entrante, o -1 si no hay coincidencia.
func matchIndex(merged []entity.Client, in entity.Client) int {
	if in.NationalID != "" {
		for i, c := range merged {
			if c.NationalID != "" && c.NationalID == in.NationalID {
				return i
			}
		}
		return -1
	}
	for i, c := range merged {
		if strings.EqualFold(c.FullName, in.FullName) {
			return i
		}
	}
	return -1
}

// mergeFields aplica la política de fusión campo a campo sobre el registro
// existente. ID, nombre, cédula, tipo de persona y fecha de creación del
// existente se conservan siempre.
func mergeFields(existing, in entity.Client) entity.Client {
	merged := existing
	merged.Phone = firstNonEmpty(existing.Phone, in.Phone)
	merged.Representative = firstNonEmpty(existing.Representative, in.Representative)
	merged.TaxIDType = firstNonEmpty(existing.TaxIDType, in.TaxIDType)
	merged.AccountExecutive = firstNonEmpty(existing.AccountExecutive, in.AccountExecutive)
	merged.TaxRegime = firstNonEmpty(existing.TaxRegime, in.TaxRegime)
	merged.IsTrademarked = existing.IsTrademarked || in.IsTrademarked
	merged.PaymentPending = existing.PaymentPending || in.PaymentPending
	return merged
}

func firstNonEmpty(existing, incoming string) string {
	if existing != "" {
		return existing
	}
	return incoming
}

package importing

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

// buildMessage arma el informe multi-sección que ve el usuario: banderola,
// contadores, bloque de estadísticas del padrón, duplicados y errores.
func buildMessage(out *dto.ImportResponse, stats importer.Stats) string {
	var b strings.Builder

	b.WriteString("Importación completada.\n\n")
	fmt.Fprintf(&b, "Registros procesados: %d\n", out.TotalCount)
	fmt.Fprintf(&b, "Nuevos: %d | Duplicados: %d | Actualizados: %d\n",
		out.NewCount, out.DuplicateCount, out.UpdatedCount)

	b.WriteString("\n--- Padrón resultante ---\n")
	fmt.Fprintf(&b, "Total de clientes: %d (Física: %d, Jurídica: %d)\n",
		stats.Total, stats.Fisica, stats.Juridica)
	writeFieldLine(&b, "Teléfono", stats.Phone)
	writeFieldLine(&b, "Representante", stats.Representative)
	writeFieldLine(&b, "Tipo de cédula", stats.TaxIDType)
	writeFieldLine(&b, "Ejecutivo", stats.AccountExecutive)
	writeFieldLine(&b, "Tipo de régimen", stats.TaxRegime)
	fmt.Fprintf(&b, "Con marca: %d | Pago pendiente: %d\n", stats.Trademarked, stats.PaymentPending)
	fmt.Fprintf(&b, "Teléfonos distintos: %d (repetidos: %d)\n", stats.DistinctPhones, stats.DuplicatePhones)

	if len(out.DuplicateLog) > 0 {
		b.WriteString("\n--- Duplicados ---\n")
		for _, line := range out.DuplicateLog {
			b.WriteString(line + "\n")
		}
	}
	if len(out.ValidationErrors) > 0 {
		b.WriteString("\n--- Errores ---\n")
		for _, line := range out.ValidationErrors {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func writeFieldLine(b *strings.Builder, label string, fs importer.FieldStat) {
	fmt.Fprintf(b, "%s: %d (%s%%)\n", label, fs.Count, fs.Percent.StringFixed(1))
}

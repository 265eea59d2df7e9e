package importer

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// Validate verifica las reglas estructurales de un candidato. pos es la
// posición 1-based del registro en la entrada y encabeza cada mensaje.
// Lista vacía = registro válido. El teléfono no se valida aquí: el
// normalizador ya lo redujo a 8 dígitos o vacío antes de llegar.
func Validate(c entity.Client, pos int) []string {
	var errs []string
	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, fmt.Sprintf("registro %d: el nombre es obligatorio", pos))
	}
	if strings.TrimSpace(c.NationalID) == "" {
		errs = append(errs, fmt.Sprintf("registro %d: la cédula es obligatoria", pos))
	}
	if !entity.ValidPersonType(c.PersonType) {
		errs = append(errs, fmt.Sprintf("registro %d: tipo de persona %q inválido (debe ser %s o %s)",
			pos, c.PersonType, entity.PersonTypeFisica, entity.PersonTypeJuridica))
	}
	return errs
}

// ValidateBatch particiona los candidatos en válidos e inválidos. Nunca
// aborta el lote: los registros con errores se excluyen y se reportan, el
// resto sigue hacia la reconciliación.
func ValidateBatch(candidates []entity.Client) (valid []entity.Client, errs []string) {
	for i, c := range candidates {
		if recordErrs := Validate(c, i+1); len(recordErrs) > 0 {
			errs = append(errs, recordErrs...)
			continue
		}
		valid = append(valid, c)
	}
	return valid, errs
}

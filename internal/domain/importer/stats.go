package importer

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// FieldStat cobertura de un campo opcional: cuántos registros lo traen y qué
// porcentaje del total representa (redondeado a 1 decimal).
type FieldStat struct {
	Count   int
	Percent decimal.Decimal
}

// Stats estadísticas de completitud y categóricas sobre el conjunto final.
type Stats struct {
	Total int

	Phone            FieldStat
	Representative   FieldStat
	TaxIDType        FieldStat
	AccountExecutive FieldStat
	TaxRegime        FieldStat

	Fisica   int
	Juridica int

	Trademarked    int
	PaymentPending int

	// DistinctPhones cuenta los teléfonos no vacíos distintos;
	// DuplicatePhones es el complemento (registros con teléfono repetido).
	DistinctPhones  int
	DuplicatePhones int
}

// Summarize calcula las estadísticas sobre la lista de registros. Función
// pura, sin efectos: se ejecuta después de persistir la fusión y alimenta el
// resumen que ve el usuario.
func Summarize(records []entity.Client) Stats {
	s := Stats{Total: len(records)}
	phones := make(map[string]int)

	var withPhone, withRep, withTaxType, withExec, withRegime int
	for _, c := range records {
		if c.Phone != "" {
			withPhone++
			phones[c.Phone]++
		}
		if c.Representative != "" {
			withRep++
		}
		if c.TaxIDType != "" {
			withTaxType++
		}
		if c.AccountExecutive != "" {
			withExec++
		}
		if c.TaxRegime != "" {
			withRegime++
		}
		switch c.PersonType {
		case entity.PersonTypeJuridica:
			s.Juridica++
		default:
			s.Fisica++
		}
		if c.IsTrademarked {
			s.Trademarked++
		}
		if c.PaymentPending {
			s.PaymentPending++
		}
	}

	s.Phone = fieldStat(withPhone, s.Total)
	s.Representative = fieldStat(withRep, s.Total)
	s.TaxIDType = fieldStat(withTaxType, s.Total)
	s.AccountExecutive = fieldStat(withExec, s.Total)
	s.TaxRegime = fieldStat(withRegime, s.Total)

	s.DistinctPhones = len(phones)
	s.DuplicatePhones = withPhone - len(phones)
	return s
}

func fieldStat(count, total int) FieldStat {
	fs := FieldStat{Count: count, Percent: decimal.Zero}
	if total > 0 {
		fs.Percent = decimal.NewFromInt(int64(count * 100)).
			Div(decimal.NewFromInt(int64(total))).
			Round(1)
	}
	return fs
}

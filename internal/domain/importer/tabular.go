package importer

import (
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// ExpectedColumns es el ancho fijo de la plantilla tabular:
// Nombre | Cédula | Física/Jurídica | Representante | Teléfono |
// Tipo Cédula | Ejecutivo | Marca | Pendiente de Pago | Tipo de Régimen.
const ExpectedColumns = 10

// Índices posicionales de la plantilla.
const (
	colFullName = iota
	colNationalID
	colPersonType
	colRepresentative
	colPhone
	colTaxIDType
	colAccountExecutive
	colIsTrademarked
	colPaymentPending
	colTaxRegime
)

// NormalizeRows convierte la cuadrícula de un libro tabular en candidatos
// canónicos. La primera fila es siempre el encabezado y se omite. Una celda
// faltante o ilegible produce el valor cero del campo, nunca un fallo de la
// fila: los problemas por fila los decide después el validador.
func NormalizeRows(rows [][]string) *NormalizeResult {
	res := &NormalizeResult{Strategy: "tabular"}
	if len(rows) <= 1 {
		return res
	}
	cell := func(row []string, idx int) string {
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	for _, row := range rows[1:] {
		res.Clients = append(res.Clients, entity.Client{
			FullName:         cell(row, colFullName),
			NationalID:       cell(row, colNationalID),
			PersonType:       cell(row, colPersonType),
			Representative:   cell(row, colRepresentative),
			Phone:            cell(row, colPhone),
			TaxIDType:        cell(row, colTaxIDType),
			AccountExecutive: cell(row, colAccountExecutive),
			IsTrademarked:    ParseBoolWord(cell(row, colIsTrademarked)),
			PaymentPending:   ParseBoolWord(cell(row, colPaymentPending)),
			TaxRegime:        cell(row, colTaxRegime),
		})
	}
	canonicalize(res)
	return res
}

package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

func TestSummarize(t *testing.T) {
	padron := []entity.Client{
		{ID: 1, FullName: "Ana", PersonType: entity.PersonTypeFisica,
			Phone: "88887777", Representative: "", TaxRegime: "Simplificado", IsTrademarked: true},
		{ID: 2, FullName: "Luis", PersonType: entity.PersonTypeFisica,
			Phone: "88887777", AccountExecutive: "Laura Pérez"},
		{ID: 3, FullName: "Acme S.A.", PersonType: entity.PersonTypeJuridica,
			Phone: "22223333", Representative: "María Solís", PaymentPending: true},
	}

	s := importer.Summarize(padron)
	assert.Equal(t, 3, s.Total)

	assert.Equal(t, 3, s.Phone.Count)
	assert.Equal(t, "100.0", s.Phone.Percent.StringFixed(1))
	assert.Equal(t, 1, s.Representative.Count)
	assert.Equal(t, "33.3", s.Representative.Percent.StringFixed(1),
		"los porcentajes se redondean a un decimal")
	assert.Equal(t, 1, s.TaxRegime.Count)
	assert.Equal(t, 1, s.AccountExecutive.Count)
	assert.Equal(t, 0, s.TaxIDType.Count)
	assert.Equal(t, "0.0", s.TaxIDType.Percent.StringFixed(1))

	assert.Equal(t, 2, s.Fisica)
	assert.Equal(t, 1, s.Juridica)
	assert.Equal(t, 1, s.Trademarked)
	assert.Equal(t, 1, s.PaymentPending)

	assert.Equal(t, 2, s.DistinctPhones)
	assert.Equal(t, 1, s.DuplicatePhones, "dos registros comparten el 88887777")
}

func TestSummarize_PadronVacio(t *testing.T) {
	s := importer.Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Phone.Count)
	assert.Equal(t, "0.0", s.Phone.Percent.StringFixed(1), "sin registros no se divide entre cero")
	assert.Zero(t, s.DistinctPhones)
	assert.Zero(t, s.DuplicatePhones)
}

func TestSummarize_SinTelefonos(t *testing.T) {
	s := importer.Summarize([]entity.Client{
		{ID: 1, FullName: "Ana", PersonType: entity.PersonTypeFisica},
	})
	assert.Equal(t, 1, s.Total)
	assert.Zero(t, s.Phone.Count)
	assert.Zero(t, s.DuplicatePhones)
}

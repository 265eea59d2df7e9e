package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

func candidatoValido() entity.Client {
	return entity.Client{
		FullName:   "Ana Rojas",
		NationalID: "104560789",
		PersonType: entity.PersonTypeFisica,
	}
}

func TestValidate_RegistroValido(t *testing.T) {
	assert.Empty(t, importer.Validate(candidatoValido(), 1))
}

func TestValidate_NombreObligatorio(t *testing.T) {
	c := candidatoValido()
	c.FullName = "   "

	errs := importer.Validate(c, 3)
	require.Len(t, errs, 1)
	assert.Equal(t, "registro 3: el nombre es obligatorio", errs[0])
}

func TestValidate_CedulaObligatoria(t *testing.T) {
	c := candidatoValido()
	c.NationalID = ""

	errs := importer.Validate(c, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "la cédula es obligatoria")
}

func TestValidate_TipoDePersona(t *testing.T) {
	c := candidatoValido()
	c.PersonType = "Cooperativa"

	errs := importer.Validate(c, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `tipo de persona "Cooperativa" inválido`)
}

func TestValidate_ErroresAcumulados(t *testing.T) {
	errs := importer.Validate(entity.Client{PersonType: "x"}, 5)
	assert.Len(t, errs, 3, "cada regla incumplida aporta su propio mensaje")
	for _, e := range errs {
		assert.Contains(t, e, "registro 5")
	}
}

// TestValidateBatch_ValidezParcial: los registros inválidos se excluyen y se
// reportan; los válidos del mismo lote siguen adelante.
func TestValidateBatch_ValidezParcial(t *testing.T) {
	lote := []entity.Client{
		candidatoValido(),
		{FullName: "Sin Cédula", PersonType: entity.PersonTypeFisica},
		{FullName: "Acme S.A.", NationalID: "3101123456", PersonType: entity.PersonTypeJuridica},
	}

	valid, errs := importer.ValidateBatch(lote)
	require.Len(t, valid, 2)
	assert.Equal(t, "Ana Rojas", valid[0].FullName)
	assert.Equal(t, "Acme S.A.", valid[1].FullName)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "registro 2", "la posición reportada es la del lote original, 1-based")
}

func TestValidateBatch_LoteVacio(t *testing.T) {
	valid, errs := importer.ValidateBatch(nil)
	assert.Empty(t, valid)
	assert.Empty(t, errs)
}

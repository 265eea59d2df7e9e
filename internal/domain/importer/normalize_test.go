package importer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cascada de estrategias JSON: arreglo → objeto suelto → envoltorio.
// Una estrategia posterior solo se intenta si la anterior falla; si ninguna
// decodifica, FormatError sin resultado parcial.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeJSON_ArregloCanonico(t *testing.T) {
	data := []byte(`[
		{"full_name": "Ana Rojas", "national_id": "104560789", "phone": "8888-7777"},
		{"full_name": "Acme S.A.", "national_id": "3101123456", "person_type": "Jurídica"}
	]`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "arreglo", res.Strategy)
	require.Len(t, res.Clients, 2)

	assert.Equal(t, "Ana Rojas", res.Clients[0].FullName)
	assert.Equal(t, "88887777", res.Clients[0].Phone, "el guion del teléfono debe limpiarse")
	assert.Equal(t, entity.PersonTypeFisica, res.Clients[0].PersonType, "tipo de persona en blanco debe quedar en Física")
	assert.Equal(t, entity.PersonTypeJuridica, res.Clients[1].PersonType)
}

func TestNormalizeJSON_ObjetoSuelto(t *testing.T) {
	data := []byte(`{"full_name": "Luis Mora", "national_id": "204450333"}`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "objeto", res.Strategy)
	require.Len(t, res.Clients, 1, "un registro suelto se envuelve en lista de uno")
	assert.Equal(t, "Luis Mora", res.Clients[0].FullName)
}

func TestNormalizeJSON_EnvoltorioLlaveGenerica(t *testing.T) {
	data := []byte(`{"data": [{"full_name": "Luis Mora", "national_id": "204450333"}]}`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "envoltorio", res.Strategy,
		"el envoltorio no debe aceptarse como objeto suelto vacío")
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "204450333", res.Clients[0].NationalID)
}

// TestNormalizeJSON_EnvoltorioLegado verifica el remapeo de encabezados
// legados en español, sin distinguir tildes ni mayúsculas.
func TestNormalizeJSON_EnvoltorioLegado(t *testing.T) {
	data := []byte(`{"clientes": [{
		"NOMBRE": "Comercial Tica S.A.",
		"CÉDULA": "3101987654",
		"FÍSICA/JURÍDICA": "Jurídica",
		"TELÉFONO": "2222-3333",
		"REPRESENTANTE": "María Solís",
		"EJECUTIVO": "Laura Pérez",
		"MARCA": "Sí",
		"PENDIENTE DE PAGO?": "no",
		"TIPO DE RÉGIMEN": "Tradicional"
	}]}`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	require.Len(t, res.Clients, 1)

	c := res.Clients[0]
	assert.Equal(t, "Comercial Tica S.A.", c.FullName)
	assert.Equal(t, "3101987654", c.NationalID)
	assert.Equal(t, entity.PersonTypeJuridica, c.PersonType)
	assert.Equal(t, "22223333", c.Phone)
	assert.Equal(t, "María Solís", c.Representative)
	assert.Equal(t, "Laura Pérez", c.AccountExecutive)
	assert.True(t, c.IsTrademarked, `"Sí" debe interpretarse como true`)
	assert.False(t, c.PaymentPending, `"no" debe interpretarse como false`)
	assert.Equal(t, "Tradicional", c.TaxRegime)
}

func TestNormalizeJSON_CedulaNumericaSinArtefactos(t *testing.T) {
	data := []byte(`{"data": [{"NOMBRE": "Ana", "CEDULA": 104560789, "TELEFONO": 88887777}]}`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "104560789", res.Clients[0].NationalID,
		"una cédula numérica no debe quedar en notación científica")
	assert.Equal(t, "88887777", res.Clients[0].Phone)
}

func TestNormalizeJSON_IdsDeEntradaSeIgnoran(t *testing.T) {
	data := []byte(`[{"id": 99, "full_name": "Ana", "national_id": "1"}]`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	assert.Zero(t, res.Clients[0].ID, "el id lo asigna la reconciliación, nunca la entrada")
}

func TestNormalizeJSON_TelefonoInvalidoEsDiagnosticoNoError(t *testing.T) {
	data := []byte(`[{"full_name": "Ana", "national_id": "1", "phone": "123"}]`)

	res, err := importer.NormalizeJSON(data)
	require.NoError(t, err)
	assert.Empty(t, res.Clients[0].Phone, "un teléfono que no forma 8 dígitos se descarta a vacío")
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "registro 1")
	assert.Contains(t, res.Diagnostics[0], `"123"`)
}

func TestNormalizeJSON_NingunaEstrategia(t *testing.T) {
	casos := map[string]string{
		"json invalido":    `{{{`,
		"texto plano":      `"hola"`,
		"envoltorio ajeno": `{"otros": []}`,
		"numero suelto":    `42`,
	}
	for nombre, data := range casos {
		t.Run(nombre, func(t *testing.T) {
			res, err := importer.NormalizeJSON([]byte(data))
			require.Error(t, err)
			assert.Nil(t, res, "un fallo de formato no deja resultado parcial")

			var fe *importer.FormatError
			assert.True(t, errors.As(err, &fe), "el error terminal debe ser FormatError")
		})
	}
}

// ── Palabras booleanas ────────────────────────────────────────────────────────

func TestParseBoolWord(t *testing.T) {
	afirmativos := []string{"si", "Sí", "SI", "sÍ", "true", "TRUE", "1", "yes", " sí "}
	for _, s := range afirmativos {
		assert.True(t, importer.ParseBoolWord(s), "%q debe ser true", s)
	}
	negativos := []string{"", "no", "false", "0", "2", "verdadero", "x"}
	for _, s := range negativos {
		assert.False(t, importer.ParseBoolWord(s), "%q debe ser false", s)
	}
}

// ── Teléfonos ─────────────────────────────────────────────────────────────────

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in        string
		want      string
		discarded bool
	}{
		{"88887777", "88887777", false},
		{"8888-7777", "88887777", false},
		{"8888-7777 ext", "88887777", false},
		{"(506) 88-88-77-77", "", true}, // 10 dígitos: se descarta
		{"123", "", true},
		{"", "", false},
		{"sin numero", "", false},
	}
	for _, tt := range tests {
		got, discarded := importer.NormalizePhone(tt.in)
		assert.Equal(t, tt.want, got, "entrada %q", tt.in)
		assert.Equal(t, tt.discarded, discarded, "entrada %q", tt.in)
	}
}

package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

func hojaEjemplo() [][]string {
	return [][]string{
		{"Nombre", "Cédula", "Física/Jurídica", "Representante", "Teléfono",
			"Tipo Cédula", "Ejecutivo", "Marca", "Pendiente de pago?", "Tipo de régimen"},
		{"Ana Rojas", "104560789", "Física", "", "8888-7777", "CI", "Laura Pérez", "sí", "no", "Simplificado"},
		{"Acme S.A.", "3101123456", "Jurídica", "María Solís", "2222-3333", "FC", "", "NO", "Sí", "Tradicional"},
	}
}

func TestNormalizeRows_MapeoPosicional(t *testing.T) {
	res := importer.NormalizeRows(hojaEjemplo())
	require.Len(t, res.Clients, 2, "la fila de encabezados no cuenta como registro")

	ana := res.Clients[0]
	assert.Equal(t, "Ana Rojas", ana.FullName)
	assert.Equal(t, "104560789", ana.NationalID)
	assert.Equal(t, entity.PersonTypeFisica, ana.PersonType)
	assert.Equal(t, "88887777", ana.Phone)
	assert.Equal(t, entity.TaxIDTypeCI, ana.TaxIDType)
	assert.True(t, ana.IsTrademarked)
	assert.False(t, ana.PaymentPending)

	acme := res.Clients[1]
	assert.Equal(t, "María Solís", acme.Representative)
	assert.False(t, acme.IsTrademarked)
	assert.True(t, acme.PaymentPending)
	assert.Equal(t, "Tradicional", acme.TaxRegime)
}

func TestNormalizeRows_FilasCortas(t *testing.T) {
	rows := [][]string{
		{"Nombre", "Cédula"},
		{"Luis Mora", "204450333"}, // solo 2 de 10 columnas
	}

	res := importer.NormalizeRows(rows)
	require.Len(t, res.Clients, 1)

	c := res.Clients[0]
	assert.Equal(t, "Luis Mora", c.FullName)
	assert.Equal(t, "204450333", c.NationalID)
	assert.Empty(t, c.Phone, "una celda ausente equivale al valor cero")
	assert.Equal(t, entity.PersonTypeFisica, c.PersonType,
		"tipo de persona ausente debe quedar en Física")
	assert.False(t, c.PaymentPending)
}

func TestNormalizeRows_SoloEncabezados(t *testing.T) {
	res := importer.NormalizeRows(hojaEjemplo()[:1])
	assert.Empty(t, res.Clients)
}

func TestNormalizeRows_HojaVacia(t *testing.T) {
	res := importer.NormalizeRows(nil)
	assert.Empty(t, res.Clients)
}

func TestNormalizeRows_TelefonoDescartadoConDiagnostico(t *testing.T) {
	rows := [][]string{
		{"Nombre"},
		{"Ana", "1", "", "", "506123"},
	}

	res := importer.NormalizeRows(rows)
	assert.Empty(t, res.Clients[0].Phone)
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "registro 1")
}

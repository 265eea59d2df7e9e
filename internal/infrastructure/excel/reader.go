package excel

import (
	"io"
	"strconv"
	"strings"

	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
	"github.com/xuri/excelize/v2"
)

// Reader decodifica libros XLSX (opcionalmente protegidos con contraseña) a
// la cuadrícula de celdas que consume el normalizador tabular. La primera
// hoja es la plantilla; el encabezado lo omite el normalizador, no el reader.
type Reader struct{}

// NewReader construye el lector de libros.
func NewReader() *Reader {
	return &Reader{}
}

// ReadRows abre el libro y devuelve todas las filas de la primera hoja como
// texto. Las celdas de fórmula entregan el resultado evaluado en caché (si
// no hay caché, cadena vacía); las numéricas enteras se rinden sin artefactos
// decimales ni exponenciales. No poder abrir o descifrar el libro es fatal
// para la fuente completa (FormatError).
func (Reader) ReadRows(r io.Reader, password string) ([][]string, error) {
	f, err := excelize.OpenReader(r, excelize.Options{Password: password})
	if err != nil {
		return nil, importer.NewFormatError("no se pudo abrir el libro (¿contraseña incorrecta?)", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, importer.NewFormatError("el libro no tiene hojas", nil)
	}

	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, importer.NewFormatError("no se pudo recorrer la hoja", err)
	}
	defer iter.Close()

	var rows [][]string
	for iter.Next() {
		cells, err := iter.Columns()
		if err != nil {
			// Fila ilegible: campos en cero, lo resuelve el validador.
			rows = append(rows, nil)
			continue
		}
		for i, c := range cells {
			cells[i] = cleanCell(c)
		}
		rows = append(rows, cells)
	}
	if err := iter.Error(); err != nil {
		return nil, importer.NewFormatError("error leyendo filas", err)
	}
	return rows, nil
}

// cleanCell recorta espacios y normaliza números enteros que llegan con
// decimales o notación científica ("88887777.0", "8.8887777E7").
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsAny(s, ".eE") {
		return s
	}
	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if fv == float64(int64(fv)) {
		return strconv.FormatInt(int64(fv), 10)
	}
	return strconv.FormatFloat(fv, 'f', -1, 64)
}

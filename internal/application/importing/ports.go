package importing

import "io"

// WorkbookReader define el puerto de salida para decodificar libros
// tabulares. La implementación (excelize) vive en infrastructure; aquí solo
// se conoce el contrato: filas de texto de la primera hoja, encabezado
// incluido, o error fatal si el libro no abre o la contraseña no sirve.
type WorkbookReader interface {
	ReadRows(r io.Reader, password string) ([][]string, error)
}

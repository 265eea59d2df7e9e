package importer

import "fmt"

// FormatError indica que ninguna de las formas de entrada aceptadas pudo
// decodificarse, o que el archivo tabular no pudo abrirse/descifrarse.
// Es fatal para la importación completa: no se reconcilia ningún registro.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("formato no reconocido: %s: %v", e.Reason, e.Err)
	}
	return "formato no reconocido: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError construye un FormatError con la razón dada.
func NewFormatError(reason string, err error) *FormatError {
	return &FormatError{Reason: reason, Err: err}
}

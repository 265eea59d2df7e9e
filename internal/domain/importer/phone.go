package importer

import "strings"

// NormalizePhone limpia un teléfono crudo: descarta todo lo que no sea dígito
// ASCII y acepta el resultado solo si quedan exactamente 8 dígitos.
//
// Devuelve el teléfono limpio ("" si se descartó) y discarded=true cuando el
// valor traía dígitos pero no formó un número válido. El descarte es
// silencioso por diseño: se reporta como diagnóstico, nunca como error de
// validación (comportamiento observado del sistema original, mantenido).
func NormalizePhone(raw string) (clean string, discarded bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", false
	}
	if len(digits) != 8 {
		return "", true
	}
	return digits, false
}

// ParseBoolWord interpreta literales afirmativos en celdas y campos legados.
// {"si","sí","true","1","yes"} sin distinguir mayúsculas → true; el resto → false.
func ParseBoolWord(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "si", "sí", "true", "1", "yes":
		return true
	}
	return false
}

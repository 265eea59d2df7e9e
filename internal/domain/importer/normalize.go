package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeResult es la salida del normalizador: candidatos sin validar
// (ID = 0) más los diagnósticos no fatales acumulados durante la limpieza.
type NormalizeResult struct {
	Clients     []entity.Client
	Diagnostics []string
	Strategy    string // estrategia de decodificación que tuvo éxito
}

// jsonStrategy es un intento de interpretación etiquetado. La cascada se
// modela como lista ordenada de estrategias, no como control de flujo por
// pánico/recover: se evalúan en orden hasta que una decodifica.
type jsonStrategy struct {
	name string
	fn   func(data []byte) ([]entity.Client, error)
}

// NormalizeJSON convierte un blob de texto en candidatos canónicos probando,
// en este orden fijo:
//
//  1. arreglo de registros al nivel superior;
//  2. un único registro suelto (se envuelve en lista de uno);
//  3. objeto envoltorio con el arreglo real bajo "data" o "clientes",
//     aceptando tanto nombres de campo canónicos como encabezados legados
//     en español (NOMBRE, CEDULA, FISICA/JURIDICA, ...).
//
// Si ninguna estrategia decodifica se devuelve FormatError sin resultado
// parcial. Los fallos intermedios nunca se propagan.
func NormalizeJSON(data []byte) (*NormalizeResult, error) {
	strategies := []jsonStrategy{
		{name: "arreglo", fn: decodeArray},
		{name: "objeto", fn: decodeSingle},
		{name: "envoltorio", fn: decodeWrapped},
	}
	var lastErr error
	for _, s := range strategies {
		clients, err := s.fn(data)
		if err != nil {
			lastErr = err
			continue
		}
		res := &NormalizeResult{Clients: clients, Strategy: s.name}
		canonicalize(res)
		return res, nil
	}
	return nil, NewFormatError("ninguna de las formas de entrada aceptadas decodificó", lastErr)
}

// decodeArray intento 1: arreglo de registros canónicos al nivel superior.
func decodeArray(data []byte) ([]entity.Client, error) {
	var clients []entity.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// decodeSingle intento 2: un único registro sin arreglo. Se decodifica en
// modo estricto: un objeto envoltorio ({"data": ...}) trae llaves ajenas al
// registro y debe caer a la estrategia 3, no aceptarse como registro vacío.
func decodeSingle(data []byte) ([]entity.Client, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var c entity.Client
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return []entity.Client{c}, nil
}

// Llaves reconocidas del objeto envoltorio, en orden de búsqueda:
// primero la genérica, luego la alternativa del dominio.
var wrapperKeys = []string{"data", "clientes"}

// decodeWrapped intento 3: objeto envoltorio con el arreglo real anidado.
// Las filas anidadas se decodifican como mapas genéricos y se remapean campo
// por campo, de modo que sirven tanto la convención canónica como la legada.
func decodeWrapped(data []byte) ([]entity.Client, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range wrapperKeys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var rows []map[string]any
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("llave %q: %w", key, err)
		}
		clients := make([]entity.Client, 0, len(rows))
		for _, row := range rows {
			clients = append(clients, remapRow(row))
		}
		return clients, nil
	}
	return nil, fmt.Errorf("el envoltorio no contiene ninguna llave reconocida %v", wrapperKeys)
}

// Alias de campo: nombre canónico y encabezado legado en español, ambos
// guardados ya plegados (sin tildes, en mayúsculas).
var fieldAliases = map[string][]string{
	"full_name":         {"FULL_NAME", "NOMBRE"},
	"national_id":       {"NATIONAL_ID", "CEDULA"},
	"person_type":       {"PERSON_TYPE", "FISICA/JURIDICA"},
	"representative":    {"REPRESENTATIVE", "REPRESENTANTE"},
	"phone":             {"PHONE", "TELEFONO"},
	"tax_id_type":       {"TAX_ID_TYPE", "TIPO CEDULA"},
	"account_executive": {"ACCOUNT_EXECUTIVE", "EJECUTIVO"},
	"is_trademarked":    {"IS_TRADEMARKED", "MARCA"},
	"payment_pending":   {"PAYMENT_PENDING", "PENDIENTE DE PAGO?"},
	"tax_regime":        {"TAX_REGIME", "TIPO DE REGIMEN"},
}

// remapRow construye un candidato desde un mapa de llaves arbitrarias,
// resolviendo cada campo canónico por sus alias.
func remapRow(row map[string]any) entity.Client {
	folded := make(map[string]any, len(row))
	for k, v := range row {
		folded[foldKey(k)] = v
	}
	lookup := func(field string) (any, bool) {
		for _, alias := range fieldAliases[field] {
			if v, ok := folded[alias]; ok {
				return v, true
			}
		}
		return nil, false
	}
	str := func(field string) string {
		v, ok := lookup(field)
		if !ok {
			return ""
		}
		return stringValue(v)
	}
	boolean := func(field string) bool {
		v, ok := lookup(field)
		if !ok {
			return false
		}
		return boolValue(v)
	}
	return entity.Client{
		FullName:         str("full_name"),
		NationalID:       str("national_id"),
		PersonType:       str("person_type"),
		Representative:   str("representative"),
		Phone:            str("phone"),
		TaxIDType:        str("tax_id_type"),
		AccountExecutive: str("account_executive"),
		IsTrademarked:    boolean("is_trademarked"),
		PaymentPending:   boolean("payment_pending"),
		TaxRegime:        str("tax_regime"),
	}
}

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone,
// de modo que "TELÉFONO", "Teléfono" y "telefono" pleguen a la misma llave.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldKey(k string) string {
	plain, _, err := transform.String(foldTransformer, k)
	if err != nil {
		plain = k
	}
	return strings.ToUpper(strings.TrimSpace(plain))
}

// stringValue interpreta un valor JSON genérico como texto. Los números
// enteros se rinden sin decimales ni notación exponencial (una cédula o un
// teléfono numérico no deben quedar como "1.02345678e+08").
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func boolValue(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return ParseBoolWord(t)
	case float64:
		return t == 1
	default:
		return false
	}
}

// canonicalize deja cada candidato en la forma que espera el validador:
// ID en cero (lo asigna la reconciliación, aunque la entrada traiga ids
// propios), teléfono reducido a 8 dígitos o vacío, y tipo de persona con
// valor por defecto Física cuando viene en blanco.
func canonicalize(res *NormalizeResult) {
	for i := range res.Clients {
		c := &res.Clients[i]
		c.ID = 0
		c.FullName = strings.TrimSpace(c.FullName)
		c.NationalID = strings.TrimSpace(c.NationalID)
		c.Representative = strings.TrimSpace(c.Representative)
		c.AccountExecutive = strings.TrimSpace(c.AccountExecutive)
		c.TaxIDType = strings.TrimSpace(c.TaxIDType)
		c.TaxRegime = strings.TrimSpace(c.TaxRegime)
		c.PersonType = strings.TrimSpace(c.PersonType)
		if c.PersonType == "" {
			c.PersonType = entity.PersonTypeFisica
		}
		clean, discarded := NormalizePhone(c.Phone)
		if discarded {
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("registro %d: teléfono %q descartado (no tiene 8 dígitos)", i+1, c.Phone))
		}
		c.Phone = clean
	}
}

package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/application/importing"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
)

// ImportHandler maneja la importación masiva de clientes.
type ImportHandler struct {
	uc *importing.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importing.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import POST /api/clients/import
//
// Acepta multipart (campo "file" más "password" opcional para libros
// protegidos) o un cuerpo JSON crudo. Los .xlsx van por el lector tabular;
// cualquier otra cosa se trata como blob de texto. La respuesta es siempre
// el ImportResponse completo: banderola, contadores, duplicados y errores.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Sin multipart: el cuerpo es el blob de texto.
		out, err := h.uc.ImportJSON(c.Context(), c.Body())
		return respond(c, out, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo subido"})
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		out, err := h.uc.ImportWorkbook(c.Context(), f, c.FormValue("password"))
		return respond(c, out, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo subido"})
	}
	out, err := h.uc.ImportJSON(c.Context(), data)
	return respond(c, out, err)
}

// respond mapea el resultado a código de estado: 200 si la importación
// corrió (aun con registros inválidos), 422 si el formato no se reconoció,
// 500 si falló el almacenamiento. El cuerpo es siempre el ImportResponse.
func respond(c *fiber.Ctx, out *dto.ImportResponse, err error) error {
	if err == nil {
		return c.JSON(out)
	}
	var fe *importer.FormatError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(out)
}

package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/domain"
)

// validate instancia compartida (cachea metadatos de structs y es segura para uso concurrente).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reporta el nombre del campo tal como lo envía el cliente (json o query).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// errorStatus mapea errores de dominio a (status HTTP, código).
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrReasonTooShort):
		return fiber.StatusBadRequest, "REASON_TOO_SHORT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrVersionConflict):
		return fiber.StatusConflict, "VERSION_CONFLICT"
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con el sobre de error. Los 500 no exponen el detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		RequestLog(c).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		msg = "error interno del servidor"
	}
	return fail(c, status, code, msg)
}

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: msg})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.SuccessResponse{Success: true, Data: data})
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: data})
}

func deleted(c *fiber.Ctx, what string) error {
	return c.JSON(dto.SuccessResponse{Success: true, Message: what + " eliminado"})
}

// bindBody decodifica el cuerpo JSON y lo valida con las etiquetas validate.
// Devuelve false si ya respondió con error.
func bindBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	return checkStruct(c, out)
}

// bindQuery decodifica y valida los parámetros de consulta.
func bindQuery(c *fiber.Ctx, out any) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	return checkStruct(c, out)
}

func checkStruct(c *fiber.Ctx, out any) (bool, error) {
	err := validate.Struct(out)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return false, fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	fe := verrs[0]
	if fe.Field() == "reason" && (fe.Tag() == "min" || fe.Tag() == "required") {
		return false, fail(c, fiber.StatusBadRequest, "REASON_TOO_SHORT", domain.ErrReasonTooShort.Error())
	}
	return false, fail(c, fiber.StatusBadRequest, "VALIDATION", describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	case "min", "max", "gt", "gte", "lte":
		return fmt.Sprintf("%s no cumple %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s debe tener formato YYYY-MM-DD", fe.Field())
	default:
		return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, c.Params("id"))
	}
	return id, nil
}

// queryID lee un filtro opcional de ID (nil si no viene).
func queryID(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, key)
	}
	return &id, nil
}

// page lee limit/offset con límites del listado.
func page(c *fiber.Ctx) (dto.PageRequest, bool, error) {
	var p dto.PageRequest
	okay, err := bindQuery(c, &p)
	return p, okay, err
}

// actor identidad del usuario autenticado y su IP, para la auditoría.
func actor(c *fiber.Ctx) mutation.Actor {
	return mutation.Actor{UserID: GetUserID(c), IP: c.IP()}
}

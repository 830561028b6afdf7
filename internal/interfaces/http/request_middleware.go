package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/pkg/logger"
)

const (
	// RequestIDHeader cabecera de trazabilidad de peticiones.
	RequestIDHeader = "X-Request-ID"

	LocalRequestID = "request_id"
	localLogger    = "logger"
)

// RequestID reutiliza el X-Request-ID entrante o genera uno nuevo y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalRequestID, rid)
		c.Set(RequestIDHeader, rid)
		return c.Next()
	}
}

// RequestLogger registra método, ruta, estado, latencia, request id y usuario de cada petición.
// Deja en Locals un sublogger con el request id para los handlers.
func RequestLogger(log *logger.Logger) fiber.Handler {
	base := log.Component("http").Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid, _ := c.Locals(LocalRequestID).(string)
		reqLog := base.With().Str("request_id", rid).Logger()
		c.Locals(localLogger, &reqLog)

		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de Fiber fije el status antes de registrar.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

// RequestLog logger de la petición en curso (nop si no pasó por RequestLogger).
func RequestLog(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

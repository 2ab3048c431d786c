package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/logger"
)

// ErrorHandler é o estágio central de tradução de erros: handlers e
// middlewares só anexam erros com c.Error; aqui eles viram o envelope
// único da API. Erros da camada de persistência passam pela tabela de
// mapeamento antes.
func ErrorHandler(dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		cause := c.Errors.Last().Err

		var app *httperr.AppError
		if !errors.As(cause, &app) {
			app = httperr.FromStore(cause, "resource not found")
		}

		log := logger.Get()
		evt := log.Warn()
		if app.Status >= 500 {
			evt = log.Error()
		}
		evt.Err(cause).
			Int("status", app.Status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(ContextRequestID)).
			Msg("request failed")

		details := ""
		if dev {
			details = cause.Error()
		}

		c.JSON(app.Status, httperr.NewEnvelope(app, details))
	}
}

// Abort registra o erro e interrompe a chain; a resposta em si sai no
// ErrorHandler.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ostech-br/os-manager/internal/validation"
)

// Sanitize reescreve o body JSON antes do binding: trim em toda string
// e remoção de blocos <script>. Roda antes da validação de schema e da
// persistência.
func Sanitize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil ||
			!strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil || len(raw) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			// Body inválido: devolve como estava e deixa o binding
			// reportar o erro.
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		clean, err := json.Marshal(validation.CleanBody(doc))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))

		c.Next()
	}
}

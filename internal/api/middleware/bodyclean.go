package middleware

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/pkg/logger"
)

var (
	danglingValueComma = regexp.MustCompile(`:\s*,`)
	danglingValueBrace = regexp.MustCompile(`:\s*}`)
	trailingComma      = regexp.MustCompile(`,(\s*[}\]])`)
)

// CleanJSONBody repairs the malformed JSON some legacy clients send:
// missing values after a colon and trailing commas. The repaired body
// replaces the request body before any handler reads it.
func CleanJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"message": "Unsupported Media Type: Se esperaba application/json.",
			})
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "No se pudo leer el cuerpo de la solicitud.",
			})
			return
		}

		cleaned := danglingValueComma.ReplaceAll(raw, []byte(": null,"))
		cleaned = danglingValueBrace.ReplaceAll(cleaned, []byte(": null}"))
		cleaned = trailingComma.ReplaceAll(cleaned, []byte("$1"))
		if !bytes.Equal(cleaned, raw) {
			logger.Sugar().Debugf("JSON limpiado: %s", cleaned)
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
		c.Request.ContentLength = int64(len(cleaned))
		c.Next()
	}
}

package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/validation"
	"github.com/motorlot/motorlot/pkg/logger"
)

// Envelope statuses shared by every endpoint: success for 2xx payloads,
// fail for client-correctable conditions, error for store failures.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// responder centralizes error shaping. detail of store failures is only
// exposed in dev mode.
type responder struct {
	devMode bool
}

func (r responder) fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"status":  statusFail,
		"message": message,
	})
}

func (r responder) storeError(c *gin.Context, message string, err error) {
	logger.Sugar().Errorf("%s: %v", message, err)
	body := gin.H{
		"status":  statusError,
		"message": message,
	}
	if r.devMode {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// readSearchParams reads, validates and decodes a search body into ordered
// params. A missing or empty body is an empty filter set. On failure the
// 400 response is already written and ok is false.
func (r responder) readSearchParams(c *gin.Context, v *validation.Validator) (*query.Params, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		r.fail(c, http.StatusBadRequest, "No se pudo leer el cuerpo de la solicitud.")
		return nil, false
	}

	if err := v.ValidateSearchBody(raw); err != nil {
		ve := validation.GetValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  statusFail,
			"message": "Cuerpo de búsqueda no válido.",
			"details": ve.Errors,
		})
		return nil, false
	}

	params, err := query.ParseParams(raw)
	if err != nil {
		r.fail(c, http.StatusBadRequest, "JSON malformado. Por favor, verifique la sintaxis.")
		return nil, false
	}
	return params, true
}

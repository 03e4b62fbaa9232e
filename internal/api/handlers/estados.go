package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/estado"
	"github.com/motorlot/motorlot/internal/core/validation"
)

type EstadoHandler struct {
	responder
	service   *estado.Service
	validator *validation.Validator
}

func NewEstadoHandler(service *estado.Service, validator *validation.Validator, devMode bool) *EstadoHandler {
	return &EstadoHandler{
		responder: responder{devMode: devMode},
		service:   service,
		validator: validator,
	}
}

func (h *EstadoHandler) Search(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		h.storeError(c, "Error interno del servidor al buscar estados.", err)
		return
	}

	if result.Filtered && len(result.Rows) == 0 {
		h.fail(c, http.StatusNotFound, "No se encontraron estados con los criterios especificados.")
		return
	}

	body := gin.H{
		"status":              statusSuccess,
		"count":               len(result.Rows),
		"data":                result.Rows,
		"limited":             result.Norm.MaxResults > 0,
		"max_results_applied": maxResultsApplied(result.Norm),
		"fields_selected":     result.Norm.FieldsSelected(),
	}
	if result.Filtered {
		body["available_fields"] = catalog.AvailableFields("estados")
	} else {
		body["message"] = "Todos los estados"
	}
	c.JSON(http.StatusOK, body)
}

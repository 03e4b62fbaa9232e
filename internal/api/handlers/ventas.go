package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/validation"
	"github.com/motorlot/motorlot/internal/core/venta"
)

type VentaHandler struct {
	responder
	service   *venta.Service
	validator *validation.Validator
}

func NewVentaHandler(service *venta.Service, validator *validation.Validator, devMode bool) *VentaHandler {
	return &VentaHandler{
		responder: responder{devMode: devMode},
		service:   service,
		validator: validator,
	}
}

func (h *VentaHandler) Search(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		h.storeError(c, "Error interno del servidor al buscar las ventas.", err)
		return
	}

	if result.Filtered && len(result.Rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":          statusFail,
			"message":         "No se encontraron ventas con los criterios de búsqueda proporcionados.",
			"photos_included": result.PhotosIncluded,
		})
		return
	}

	body := gin.H{
		"status":              statusSuccess,
		"count":               len(result.Rows),
		"data":                result.Rows,
		"limited":             result.Norm.MaxResults > 0,
		"max_results_applied": maxResultsApplied(result.Norm),
		"fields_selected":     result.Norm.FieldsSelected(),
		"photos_included":     result.PhotosIncluded,
	}
	if result.Filtered {
		body["available_fields"] = catalog.AvailableFields("ventas")
	} else {
		body["message"] = "Todas las ventas (sin filtros aplicados)"
	}
	if result.PhotosIncluded {
		body["photos_note"] = "Imágenes incluidas con estructura simple"
	}
	c.JSON(http.StatusOK, body)
}

func (h *VentaHandler) List(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), query.NewParams())
	if err != nil {
		h.storeError(c, "Error interno del servidor al obtener las ventas.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"count":  len(result.Rows),
		"data":   result.Rows,
	})
}

func (h *VentaHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "ID no válido")
		return
	}

	row, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}
	if row == nil {
		h.fail(c, http.StatusNotFound, "Venta no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data":   row,
	})
}

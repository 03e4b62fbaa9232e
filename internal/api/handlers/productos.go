package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/producto"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/validation"
)

type ProductoHandler struct {
	responder
	service   *producto.Service
	validator *validation.Validator
}

func NewProductoHandler(service *producto.Service, validator *validation.Validator, devMode bool) *ProductoHandler {
	return &ProductoHandler{
		responder: responder{devMode: devMode},
		service:   service,
		validator: validator,
	}
}

func (h *ProductoHandler) Search(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		h.storeError(c, "Error interno del servidor al buscar productos.", err)
		return
	}

	if result.Filtered && len(result.Rows) == 0 {
		h.fail(c, http.StatusNotFound, "No se encontraron productos con los criterios especificados.")
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
		body["available_fields"] = catalog.AvailableFields("producto")
	} else {
		body["message"] = "Todos los productos"
	}
	c.JSON(http.StatusOK, body)
}

func (h *ProductoHandler) Disponibles(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.Disponibles(c.Request.Context(), params)
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              statusSuccess,
		"count":               len(result.Rows),
		"data":                result.Rows,
		"message":             "Productos disponibles para venta",
		"limited":             result.Norm.MaxResults > 0,
		"max_results_applied": maxResultsApplied(result.Norm),
		"fields_selected":     result.Norm.FieldsSelected(),
		"available_fields":    catalog.AvailableFields("producto"),
	})
}

func (h *ProductoHandler) Vendidos(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.Vendidos(c.Request.Context(), params)
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              statusSuccess,
		"count":               len(result.Rows),
		"data":                result.Rows,
		"message":             "Productos vendidos",
		"limited":             result.Norm.MaxResults > 0,
		"max_results_applied": maxResultsApplied(result.Norm),
		"fields_selected":     result.Norm.FieldsSelected(),
		"available_fields":    catalog.AvailableFields("producto"),
	})
}

func (h *ProductoHandler) EstadoVenta(c *gin.Context) {
	params, ok := h.readSearchParams(c, h.validator)
	if !ok {
		return
	}

	result, err := h.service.EstadoVenta(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, producto.ErrNoCriteria) {
			h.fail(c, http.StatusBadRequest, "Se requiere al menos un parámetro de búsqueda.")
			return
		}
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	if len(result.Rows) == 0 {
		h.fail(c, http.StatusNotFound, "No se encontraron productos con los criterios especificados.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              statusSuccess,
		"count":               len(result.Rows),
		"data":                result.Rows,
		"message":             "Estado de venta de productos",
		"limited":             result.Norm.MaxResults > 0,
		"max_results_applied": maxResultsApplied(result.Norm),
	})
}

func (h *ProductoHandler) Estadisticas(c *gin.Context) {
	stats, err := h.service.Estadisticas(c.Request.Context())
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"data":    stats,
		"message": "Estadísticas de productos",
	})
}

func (h *ProductoHandler) List(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), query.NewParams())
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"count":  len(result.Rows),
		"data":   result.Rows,
	})
}

func (h *ProductoHandler) GetByID(c *gin.Context) {
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
		h.fail(c, http.StatusNotFound, "Producto no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data":   row,
	})
}

// maxResultsApplied echoes the applied cap, null when unlimited.
func maxResultsApplied(n query.Normalized) any {
	if n.MaxResults > 0 {
		return n.MaxResults
	}
	return nil
}

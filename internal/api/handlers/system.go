package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/export"
	"github.com/motorlot/motorlot/internal/core/system"
)

type SystemHandler struct {
	responder
	service   *system.Service
	exportDir string
}

func NewSystemHandler(service *system.Service, exportDir string, devMode bool) *SystemHandler {
	return &SystemHandler{
		responder: responder{devMode: devMode},
		service:   service,
		exportDir: exportDir,
	}
}

func (h *SystemHandler) Tables(c *gin.Context) {
	tables, err := h.service.Tables(c.Request.Context())
	if err != nil {
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"count":  len(tables),
		"data": gin.H{
			"tables": tables,
		},
	})
}

type tableStructureRequest struct {
	TableName string `json:"tableName"`
}

func (h *SystemHandler) TableStructure(c *gin.Context) {
	var req tableStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "El nombre de la tabla es requerido")
		return
	}
	if req.TableName == "" {
		h.fail(c, http.StatusBadRequest, "El nombre de la tabla es requerido")
		return
	}

	columns, err := h.service.TableStructure(c.Request.Context(), req.TableName)
	if err != nil {
		if errors.Is(err, system.ErrInvalidTableName) {
			h.fail(c, http.StatusBadRequest, "Nombre de tabla no válido")
			return
		}
		if errors.Is(err, system.ErrTableNotFound) {
			h.fail(c, http.StatusNotFound, "La tabla '"+req.TableName+"' no existe")
			return
		}
		h.storeError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      statusSuccess,
		"tableName":   req.TableName,
		"fieldsCount": len(columns),
		"data": gin.H{
			"structure": columns,
		},
	})
}

// CatalogStats exposes catalog sizes and operators, useful for API clients
// discovering the filter surface.
func (h *SystemHandler) CatalogStats(c *gin.Context) {
	perEntity, operators := catalog.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data": gin.H{
			"tablas":                 perEntity,
			"operadores_disponibles": operators,
			"total_tablas":           len(perEntity),
		},
	})
}

// DownloadCSV serves the most recently generated vehicle catalog.
func (h *SystemHandler) DownloadCSV(c *gin.Context) {
	path := filepath.Join(h.exportDir, export.FileName)
	if _, err := os.Stat(path); err != nil {
		h.fail(c, http.StatusNotFound, "El archivo CSV aún no ha sido generado.")
		return
	}
	c.FileAttachment(path, export.FileName)
}

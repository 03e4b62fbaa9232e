package producto

import (
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

// SearchResult carries the rows plus the normalized request that produced
// them, so handlers can shape the envelope (projection echo, limit flags,
// filtered-vs-unfiltered status).
type SearchResult struct {
	Rows []mysql.Row
	Norm query.Normalized
	// Filtered is true when at least one recognized-shape filter survived
	// normalization. Filtered searches with zero rows are a "fail", not an
	// empty success.
	Filtered bool
}

// Estadisticas is the aggregate sales breakdown of the product table.
type Estadisticas struct {
	TotalProductos          int64  `json:"total_productos"`
	ProductosVendidos       int64  `json:"productos_vendidos"`
	ProductosDisponibles    int64  `json:"productos_disponibles"`
	ProductosCongelados     int64  `json:"productos_congelados"`
	ProductosDeshabilitados int64  `json:"productos_deshabilitados"`
	ProductosNoVenta        int64  `json:"productos_no_venta"`
	PorcentajeVendidos      string `json:"porcentaje_vendidos"`
}

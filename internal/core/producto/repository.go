package producto

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

type Repository struct {
	db       *mysql.Client
	compiler query.Compiler
}

func NewRepository(db *mysql.Client, compiler query.Compiler) *Repository {
	return &Repository{db: db, compiler: compiler}
}

// disponiblesFilters is the reduced, join-prefixed vocabulary accepted by
// the availability listing.
var disponiblesFilters = map[string]catalog.FieldSpec{
	"marca":               {Column: "p.marca", Op: catalog.LIKE},
	"modelo":              {Column: "p.modelo", Op: catalog.LIKE},
	"anio":                {Column: "p.anio", Op: catalog.EQ, Kind: catalog.Int},
	"km_maximo":           {Column: "p.km", Op: catalog.LTE, Kind: catalog.Int},
	"precio_venta_maximo": {Column: "p.precio_venta", Op: catalog.LTE, Kind: catalog.Decimal},
}

var vendidosFilters = map[string]catalog.FieldSpec{
	"marca":             {Column: "p.marca", Op: catalog.LIKE},
	"modelo":            {Column: "p.modelo", Op: catalog.LIKE},
	"anio":              {Column: "p.anio", Op: catalog.EQ, Kind: catalog.Int},
	"fecha_venta_desde": {Column: "v.fecha_vendido", Op: catalog.GTE, Kind: catalog.Date},
	"fecha_venta_hasta": {Column: "v.fecha_vendido", Op: catalog.LTE, Kind: catalog.Date},
}

var estadoVentaFilters = map[string]catalog.FieldSpec{
	"id":             {Column: "p.id", Op: catalog.EQ, Kind: catalog.Int},
	"ids":            {Column: "p.id", Op: catalog.IN, Kind: catalog.Int},
	"codigo_alterno": {Column: "p.codigo_alterno", Op: catalog.LIKE},
	"nombre":         {Column: "p.nombre", Op: catalog.LIKE},
	"marca":          {Column: "p.marca", Op: catalog.LIKE},
	"modelo":         {Column: "p.modelo", Op: catalog.LIKE},
	"placa":          {Column: "p.placa", Op: catalog.LIKE},
	"serie":          {Column: "p.serie", Op: catalog.LIKE},
}

func (r *Repository) Search(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := "SELECT " + n.SelectColumns("") + " FROM producto WHERE 1=1"
	compiled := r.compiler.Compile(base, n.Filters, catalog.FilterSpecs("producto"))

	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY " + catalog.DefaultOrder("producto") + " DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

// Disponibles lists vehicles not yet sold, enabled, unfrozen and flagged for
// sale, with the availability verdict computed in SQL.
func (r *Repository) Disponibles(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := `SELECT ` + n.SelectColumns("p") + `,
		CASE
			WHEN v.id_producto IS NOT NULL THEN 'Vendido'
			WHEN p.congelado = 1 THEN 'Congelado'
			WHEN p.item_venta = 0 THEN 'No disponible para venta'
			ELSE 'Disponible'
		END AS estado_venta
	FROM producto p
	LEFT JOIN ventas v ON p.id = v.id_producto
	WHERE v.id_producto IS NULL
		AND p.habilitado = 1
		AND p.congelado = 0
		AND p.item_venta = 1`

	compiled := r.compiler.Compile(base, n.Filters, disponiblesFilters)
	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY p.id DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

func (r *Repository) Vendidos(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := `SELECT ` + n.SelectColumns("p") + `,
		v.id AS venta_id,
		v.precio_venta AS precio_vendido,
		v.fecha_vendido AS fecha_venta,
		'Vendido' AS estado_venta
	FROM producto p
	INNER JOIN ventas v ON p.id = v.id_producto
	WHERE 1=1`

	compiled := r.compiler.Compile(base, n.Filters, vendidosFilters)
	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY v.fecha_vendido DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

// EstadoVenta reports per-vehicle sale status with the availability verdict
// and a boolean computed in SQL.
func (r *Repository) EstadoVenta(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := `SELECT p.*,
		v.id AS venta_id,
		v.precio_venta AS precio_vendido,
		v.fecha_vendido AS fecha_venta,
		CASE
			WHEN v.id_producto IS NOT NULL THEN 'Vendido'
			WHEN p.congelado = 1 THEN 'Congelado'
			WHEN p.item_venta = 0 THEN 'No disponible para venta'
			WHEN p.habilitado = 0 THEN 'Deshabilitado'
			ELSE 'Disponible'
		END AS estado_venta,
		CASE
			WHEN v.id_producto IS NOT NULL THEN false
			WHEN p.congelado = 1 OR p.item_venta = 0 OR p.habilitado = 0 THEN false
			ELSE true
		END AS disponible_para_venta
	FROM producto p
	LEFT JOIN ventas v ON p.id = v.id_producto
	WHERE 1=1`

	compiled := r.compiler.Compile(base, n.Filters, estadoVentaFilters)
	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY p.id DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (mysql.Row, error) {
	rows, err := r.db.DB.QueryContext(ctx, "SELECT * FROM producto WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scanned, err := mysql.ScanRows(rows)
	if err != nil {
		return nil, err
	}
	if len(scanned) == 0 {
		return nil, nil
	}
	return scanned[0], nil
}

func (r *Repository) Estadisticas(ctx context.Context) (*Estadisticas, error) {
	sqlText := `SELECT
		COUNT(*) AS total_productos,
		COUNT(v.id_producto) AS productos_vendidos,
		COUNT(*) - COUNT(v.id_producto) AS productos_disponibles,
		SUM(CASE WHEN p.congelado = 1 THEN 1 ELSE 0 END) AS productos_congelados,
		SUM(CASE WHEN p.habilitado = 0 THEN 1 ELSE 0 END) AS productos_deshabilitados,
		SUM(CASE WHEN p.item_venta = 0 THEN 1 ELSE 0 END) AS productos_no_venta,
		ROUND(COUNT(v.id_producto) * 100.0 / COUNT(*), 2) AS porcentaje_vendidos
	FROM producto p
	LEFT JOIN ventas v ON p.id = v.id_producto`

	// SUM and the percentage are NULL on an empty table.
	var stats Estadisticas
	var congelados, deshabilitados, noVenta sql.NullInt64
	var porcentaje sql.NullFloat64
	err := r.db.DB.QueryRowContext(ctx, sqlText).Scan(
		&stats.TotalProductos,
		&stats.ProductosVendidos,
		&stats.ProductosDisponibles,
		&congelados,
		&deshabilitados,
		&noVenta,
		&porcentaje,
	)
	if err != nil {
		return nil, err
	}
	stats.ProductosCongelados = congelados.Int64
	stats.ProductosDeshabilitados = deshabilitados.Int64
	stats.ProductosNoVenta = noVenta.Int64
	stats.PorcentajeVendidos = fmt.Sprintf("%.2f%%", porcentaje.Float64)
	return &stats, nil
}

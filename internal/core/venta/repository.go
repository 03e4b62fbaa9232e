package venta

import (
	"context"
	"strings"

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

func (r *Repository) Search(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := "SELECT " + n.SelectColumns("") + " FROM ventas WHERE 1=1"
	compiled := r.compiler.Compile(base, n.Filters, catalog.FilterSpecs("ventas"))

	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY " + catalog.DefaultOrder("ventas") + " DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (mysql.Row, error) {
	rows, err := r.db.DB.QueryContext(ctx, "SELECT * FROM ventas WHERE id = ?", id)
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

// PhotosByVenta fetches every photo for the given sale IDs in one batched
// lookup, grouped by sale, principal photo first.
func (r *Repository) PhotosByVenta(ctx context.Context, ventaIDs []int64) (map[int64][]Photo, error) {
	if len(ventaIDs) == 0 {
		return map[int64][]Photo{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ventaIDs)), ",")
	sqlText := "SELECT id_venta, nombre_archivo, principal FROM ventas_fotos" +
		" WHERE id_venta IN (" + placeholders + ")" +
		" ORDER BY id_venta, principal DESC, id ASC"

	args := make([]any, len(ventaIDs))
	for i, id := range ventaIDs {
		args[i] = id
	}

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[int64][]Photo)
	for rows.Next() {
		var ventaID int64
		var nombre []byte
		var principal []byte
		if err := rows.Scan(&ventaID, &nombre, &principal); err != nil {
			return nil, err
		}
		grouped[ventaID] = append(grouped[ventaID], Photo{
			NombreArchivo: string(nombre),
			Principal:     principalFlag(principal),
		})
	}
	return grouped, rows.Err()
}

// principalFlag interprets the BIT(1) column, which MariaDB returns as a
// one-byte blob.
func principalFlag(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	return raw[0] == 1 || raw[0] == '1'
}

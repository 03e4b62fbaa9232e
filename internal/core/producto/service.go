package producto

import (
	"context"
	"errors"

	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

// ErrNoCriteria marks requests that require at least one filter.
var ErrNoCriteria = errors.New("at least one search parameter is required")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("producto", raw)
	rows, err := s.repo.Search(ctx, n)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Rows: rows, Norm: n, Filtered: n.Filters.Len() > 0}, nil
}

func (s *Service) Disponibles(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("producto", raw)
	rows, err := s.repo.Disponibles(ctx, n)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Rows: rows, Norm: n, Filtered: n.Filters.Len() > 0}, nil
}

func (s *Service) Vendidos(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("producto", raw)
	rows, err := s.repo.Vendidos(ctx, n)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Rows: rows, Norm: n, Filtered: n.Filters.Len() > 0}, nil
}

// EstadoVenta requires explicit criteria and decorates each row with a short
// per-vehicle summary.
func (s *Service) EstadoVenta(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("producto", raw)
	if n.Filters.Len() == 0 {
		return nil, ErrNoCriteria
	}

	rows, err := s.repo.EstadoVenta(ctx, n)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		attachResumen(row)
	}
	return &SearchResult{Rows: rows, Norm: n, Filtered: true}, nil
}

func attachResumen(row mysql.Row) {
	id, _ := row.Int64("id")
	ventaID, vendido := row.Int64("venta_id")

	resumen := map[string]any{
		"producto_id": id,
		"nombre":      row["nombre"],
		"estado":      row["estado_venta"],
		"disponible":  row["disponible_para_venta"],
		"vendido":     vendido,
		"fecha_venta": row["fecha_venta"],
	}
	if vendido {
		resumen["venta_id"] = ventaID
	}
	row["resumen"] = resumen
}

func (s *Service) GetByID(ctx context.Context, id int64) (mysql.Row, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Estadisticas(ctx context.Context) (*Estadisticas, error) {
	return s.repo.Estadisticas(ctx)
}

package venta

import (
	"context"
	"strings"

	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
	"github.com/motorlot/motorlot/pkg/logger"
)

type Service struct {
	repo *Repository
	// photosOnDetail attaches photos on single-sale lookups without
	// requiring the include_photos flag.
	photosOnDetail bool
}

func NewService(repo *Repository, photosOnDetail bool) *Service {
	return &Service{repo: repo, photosOnDetail: photosOnDetail}
}

func (s *Service) Search(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("ventas", raw)
	rows, err := s.repo.Search(ctx, n)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Rows: rows, Norm: n, Filtered: n.Filters.Len() > 0}
	if n.IncludePhotos {
		s.attachPhotos(ctx, rows)
		result.PhotosIncluded = true
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (mysql.Row, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil || row == nil {
		return row, err
	}
	if s.photosOnDetail {
		s.attachPhotos(ctx, []mysql.Row{row})
	}
	return row, nil
}

// attachPhotos merges the batched photo lookup into each row under
// "imagenes". Enrichment failure degrades to an error marker on every row;
// it never fails the primary request.
func (s *Service) attachPhotos(ctx context.Context, rows []mysql.Row) {
	if len(rows) == 0 {
		return
	}

	var ids []int64
	for _, row := range rows {
		if id, ok := row.Int64("id"); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}

	grouped, err := s.repo.PhotosByVenta(ctx, ids)
	if err != nil {
		logger.Sugar().Errorf("error al buscar fotos: %v", err)
		for _, row := range rows {
			row["imagenes"] = Imagenes{Error: "No se pudieron cargar las fotos."}
		}
		return
	}

	for _, row := range rows {
		id, ok := row.Int64("id")
		if !ok {
			continue
		}
		row["imagenes"] = buildImagenes(grouped[id])
	}
}

func buildImagenes(photos []Photo) Imagenes {
	img := Imagenes{Total: len(photos)}

	var adicionales []string
	for _, p := range photos {
		if p.Principal && img.FotoPrincipal == nil {
			nombre := p.NombreArchivo
			img.FotoPrincipal = &nombre
			continue
		}
		adicionales = append(adicionales, p.NombreArchivo)
	}
	img.FotosAdicionales = strings.Join(adicionales, ", ")
	return img
}

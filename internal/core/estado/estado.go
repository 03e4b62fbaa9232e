// Package estado exposes the sale-state lookup table through the same
// catalog-driven search path as the bigger entities.
package estado

import (
	"context"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

type SearchResult struct {
	Rows     []mysql.Row
	Norm     query.Normalized
	Filtered bool
}

type Repository struct {
	db       *mysql.Client
	compiler query.Compiler
}

func NewRepository(db *mysql.Client, compiler query.Compiler) *Repository {
	return &Repository{db: db, compiler: compiler}
}

func (r *Repository) Search(ctx context.Context, n query.Normalized) ([]mysql.Row, error) {
	base := "SELECT " + n.SelectColumns("") + " FROM estados WHERE 1=1"
	compiled := r.compiler.Compile(base, n.Filters, catalog.FilterSpecs("estados"))

	limit, limitArgs := query.RenderLimit(n.MaxResults)
	sqlText := compiled.SQL + " ORDER BY " + catalog.DefaultOrder("estados") + " DESC" + limit
	args := append(compiled.Args, limitArgs...)

	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return mysql.ScanRows(rows)
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, raw *query.Params) (*SearchResult, error) {
	n := query.Normalize("estados", raw)
	rows, err := s.repo.Search(ctx, n)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Rows: rows, Norm: n, Filtered: n.Filters.Len() > 0}, nil
}

package venta

import (
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

type SearchResult struct {
	Rows []mysql.Row
	Norm query.Normalized
	// Filtered is true when at least one filter survived normalization.
	Filtered bool
	// PhotosIncluded records whether enrichment ran for this result.
	PhotosIncluded bool
}

// Photo is one row of ventas_fotos for a sale.
type Photo struct {
	NombreArchivo string
	Principal     bool
}

// Imagenes is the simplified photo attachment merged into each sale row.
type Imagenes struct {
	Total            int     `json:"total"`
	FotoPrincipal    *string `json:"foto_principal"`
	FotosAdicionales string  `json:"fotos_adicionales"`
	Error            string  `json:"error,omitempty"`
}

// Package export generates the Meta-commerce vehicle catalog CSV from the
// sales currently offered, reusing the sales photo lookup for image links.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/motorlot/motorlot/config"
	"github.com/motorlot/motorlot/internal/core/venta"
	"github.com/motorlot/motorlot/internal/storage/mysql"
	"github.com/motorlot/motorlot/pkg/logger"
)

// FileName is the catalog file served by the download endpoint.
const FileName = "vehiculos_disponibles.csv"

// estadoEnVenta is the ventas.id_estado value meaning "offered for sale".
const estadoEnVenta = 5

type vehicle struct {
	ProductoID  int64
	VentaID     int64
	Nombre      string
	Marca       string
	Modelo      string
	Anio        string
	Color       string
	Cilindrada  string
	Placa       string
	Chasis      string
	Trasmision  string
	Kilometraje string
	PrecioVenta string

	fotoPrincipal    string
	fotosAdicionales string
}

type Generator struct {
	db     *mysql.Client
	ventas *venta.Repository
	cfg    *config.ExportConfig
}

func NewGenerator(db *mysql.Client, ventas *venta.Repository, cfg *config.ExportConfig) *Generator {
	return &Generator{db: db, ventas: ventas, cfg: cfg}
}

// Generate overwrites the catalog file and returns its path and row count.
// Zero offered vehicles is not an error; no file is written in that case.
func (g *Generator) Generate(ctx context.Context) (string, int, error) {
	vehicles, err := g.fetchVehicles(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to query offered vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		logger.Sugar().Info("sin vehiculos en venta, no se genera el CSV")
		return "", 0, nil
	}

	if err := g.attachImages(ctx, vehicles); err != nil {
		// Image links degrade to empty; the catalog is still useful.
		logger.Sugar().Errorf("error al buscar imagenes para el CSV: %v", err)
	}

	outputPath := filepath.Join(g.cfg.Dir, FileName)
	if err := os.MkdirAll(g.cfg.Dir, 0o755); err != nil {
		return "", 0, err
	}
	if err := g.writeCSV(outputPath, vehicles); err != nil {
		return "", 0, err
	}
	return outputPath, len(vehicles), nil
}

func (g *Generator) fetchVehicles(ctx context.Context) ([]*vehicle, error) {
	sqlText := `SELECT
		p.id AS producto_id,
		v.id AS venta_id,
		p.nombre,
		p.marca,
		p.modelo,
		p.anio,
		p.color,
		p.cilindrada,
		p.placa,
		p.chasis,
		v.trasmision,
		v.kilometraje,
		v.precio_venta
	FROM ventas v
	INNER JOIN producto p ON v.id_producto = p.id
	WHERE v.id_estado = ?
	ORDER BY p.marca, p.modelo`

	rows, err := g.db.DB.QueryContext(ctx, sqlText, estadoEnVenta)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scanned, err := mysql.ScanRows(rows)
	if err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle, 0, len(scanned))
	for _, row := range scanned {
		productoID, _ := row.Int64("producto_id")
		ventaID, _ := row.Int64("venta_id")
		vehicles = append(vehicles, &vehicle{
			ProductoID:  productoID,
			VentaID:     ventaID,
			Nombre:      fmt.Sprint(row["nombre"]),
			Marca:       fmt.Sprint(row["marca"]),
			Modelo:      fmt.Sprint(row["modelo"]),
			Anio:        fmt.Sprint(row["anio"]),
			Color:       fmt.Sprint(row["color"]),
			Cilindrada:  fmt.Sprint(row["cilindrada"]),
			Placa:       fmt.Sprint(row["placa"]),
			Chasis:      fmt.Sprint(row["chasis"]),
			Trasmision:  fmt.Sprint(row["trasmision"]),
			Kilometraje: fmt.Sprint(row["kilometraje"]),
			PrecioVenta: fmt.Sprint(row["precio_venta"]),
		})
	}
	return vehicles, nil
}

func (g *Generator) attachImages(ctx context.Context, vehicles []*vehicle) error {
	ids := make([]int64, len(vehicles))
	for i, v := range vehicles {
		ids[i] = v.VentaID
	}

	grouped, err := g.ventas.PhotosByVenta(ctx, ids)
	if err != nil {
		return err
	}

	for _, v := range vehicles {
		var adicionales []string
		for _, photo := range grouped[v.VentaID] {
			url := g.cfg.ImageBaseURL + photo.NombreArchivo
			if photo.Principal && v.fotoPrincipal == "" {
				v.fotoPrincipal = url
			} else {
				adicionales = append(adicionales, url)
			}
		}
		v.fotosAdicionales = strings.Join(adicionales, ", ")
	}
	return nil
}

// Meta commerce catalog columns; "id" and "price" with currency are
// mandatory on their side.
var csvHeader = []string{
	"id",
	"title",
	"description",
	"availability",
	"condition",
	"price",
	"link",
	"image_link",
	"additional_image_link",
	"brand",
	"model",
	"year",
	"mileage",
	"color",
}

func (g *Generator) writeCSV(path string, vehicles []*vehicle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, v := range vehicles {
		record := []string{
			fmt.Sprint(v.ProductoID),
			v.Nombre,
			describe(v),
			"in stock",
			"used",
			v.PrecioVenta + " HNL",
			g.cfg.DetailBaseURL + fmt.Sprint(v.VentaID),
			v.fotoPrincipal,
			v.fotosAdicionales,
			v.Marca,
			v.Modelo,
			v.Anio,
			v.Kilometraje,
			v.Color,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func describe(v *vehicle) string {
	return fmt.Sprintf("%s %s %s - %s, %scc, Transmisión: %s, Placa: %s, Chasis: %s",
		v.Marca, v.Modelo, v.Anio, v.Color, v.Cilindrada, v.Trasmision, v.Placa, v.Chasis)
}

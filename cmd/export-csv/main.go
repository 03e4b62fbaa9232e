// Command export-csv regenerates the Meta-catalog CSV of vehicles currently
// offered for sale. Run it from cron or after inventory changes; the API
// serves whatever file the last run produced.
package main

import (
	"context"
	"time"

	"github.com/motorlot/motorlot/config"
	"github.com/motorlot/motorlot/internal/core/export"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/venta"
	"github.com/motorlot/motorlot/internal/storage/mysql"
	"github.com/motorlot/motorlot/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("configuration error: %v", err)
	}

	db, err := mysql.NewClient(&cfg.Database)
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ventaRepo := venta.NewRepository(db, query.Compiler{Strict: cfg.Query.StrictFilters})
	generator := export.NewGenerator(db, ventaRepo, &cfg.Export)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path, count, err := generator.Generate(ctx)
	if err != nil {
		logger.Sugar().Fatalf("CSV generation failed: %v", err)
	}
	if count == 0 {
		return
	}
	logger.Sugar().Infof("CSV generado exitosamente en %s (%d vehiculos)", path, count)
}

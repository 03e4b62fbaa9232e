package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/motorlot/motorlot/config"
	"github.com/motorlot/motorlot/internal/api"
	"github.com/motorlot/motorlot/internal/api/handlers"
	"github.com/motorlot/motorlot/internal/core/auth"
	"github.com/motorlot/motorlot/internal/core/estado"
	"github.com/motorlot/motorlot/internal/core/producto"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/system"
	"github.com/motorlot/motorlot/internal/core/validation"
	"github.com/motorlot/motorlot/internal/core/venta"
	"github.com/motorlot/motorlot/internal/storage/mysql"
	"github.com/motorlot/motorlot/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("configuration error: %v", err)
	}

	// Connect to database
	db, err := mysql.NewClient(&cfg.Database)
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	logger.Sugar().Infof("connected to MariaDB at %s:%s/%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	compiler := query.Compiler{Strict: cfg.Query.StrictFilters}

	// Initialize repositories
	productoRepo := producto.NewRepository(db, compiler)
	ventaRepo := venta.NewRepository(db, compiler)
	estadoRepo := estado.NewRepository(db, compiler)
	systemRepo := system.NewRepository(db)

	// Initialize services
	authService := auth.NewService(&cfg.Auth)
	productoService := producto.NewService(productoRepo)
	ventaService := venta.NewService(ventaRepo, cfg.Query.PhotosOnDetail)
	estadoService := estado.NewService(estadoRepo)
	systemService := system.NewService(systemRepo)
	validator := validation.NewValidator()

	// Initialize handlers
	devMode := cfg.Server.DevMode
	authHandler := handlers.NewAuthHandler(authService, devMode)
	productoHandler := handlers.NewProductoHandler(productoService, validator, devMode)
	ventaHandler := handlers.NewVentaHandler(ventaService, validator, devMode)
	estadoHandler := handlers.NewEstadoHandler(estadoService, validator, devMode)
	systemHandler := handlers.NewSystemHandler(systemService, cfg.Export.Dir, devMode)

	// Setup router
	router := api.NewRouter(
		authService,
		authHandler,
		productoHandler,
		ventaHandler,
		estadoHandler,
		systemHandler,
	)

	engine := router.Setup(cfg.Server.Mode)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Sugar().Info("shutting down server...")
		db.Close()
		logger.Sync()
		os.Exit(0)
	}()

	// Start server
	logger.Sugar().Infof("starting read-only API on port %s", cfg.Server.Port)
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		logger.Sugar().Fatalf("failed to start server: %v", err)
	}
}

package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/internal/api/handlers"
	"github.com/motorlot/motorlot/internal/api/middleware"
	"github.com/motorlot/motorlot/internal/core/auth"
)

type Router struct {
	engine          *gin.Engine
	authMiddleware  *middleware.AuthMiddleware
	authHandler     *handlers.AuthHandler
	productoHandler *handlers.ProductoHandler
	ventaHandler    *handlers.VentaHandler
	estadoHandler   *handlers.EstadoHandler
	systemHandler   *handlers.SystemHandler
}

func NewRouter(
	authService *auth.Service,
	authHandler *handlers.AuthHandler,
	productoHandler *handlers.ProductoHandler,
	ventaHandler *handlers.VentaHandler,
	estadoHandler *handlers.EstadoHandler,
	systemHandler *handlers.SystemHandler,
) *Router {
	return &Router{
		authMiddleware:  middleware.NewAuthMiddleware(authService),
		authHandler:     authHandler,
		productoHandler: productoHandler,
		ventaHandler:    ventaHandler,
		estadoHandler:   estadoHandler,
		systemHandler:   systemHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLogger())
	r.engine.Use(cors.Default())
	r.engine.Use(middleware.CleanJSONBody())

	r.setupRoutes()

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Endpoint no encontrado"})
	})
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Token exchange (authenticates via the api_key in the body)
	api.POST("/auth/token", r.authHandler.Token)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		// System / introspection
		protected.GET("/tables", r.systemHandler.Tables)
		protected.POST("/table-structure", r.systemHandler.TableStructure)
		protected.GET("/catalog-stats", r.systemHandler.CatalogStats)
		protected.GET("/download/vehiculos-csv", r.systemHandler.DownloadCSV)

		// Productos
		productos := protected.Group("/productos")
		{
			productos.GET("", r.productoHandler.List)
			productos.GET("/estadisticas-ventas", r.productoHandler.Estadisticas)
			productos.GET("/:id", r.productoHandler.GetByID)
			productos.POST("/search", r.productoHandler.Search)
			productos.POST("/disponibles", r.productoHandler.Disponibles)
			productos.POST("/vendidos", r.productoHandler.Vendidos)
			productos.POST("/estado-venta", r.productoHandler.EstadoVenta)
		}

		// Ventas
		ventas := protected.Group("/ventas")
		{
			ventas.GET("", r.ventaHandler.List)
			ventas.GET("/:id", r.ventaHandler.GetByID)
			ventas.POST("/search", r.ventaHandler.Search)
		}

		// Estados
		protected.POST("/estados/search", r.estadoHandler.Search)
	}
}
